package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"rebill/internal/rebill"
	"rebill/internal/soap"

	"github.com/rs/zerolog/log"
)

// RebillAPI is the client surface the gateway exposes. *rebill.Client implements it.
type RebillAPI interface {
	CustomerAdd(ctx context.Context, fields rebill.Fields) (*soap.Response, error)
	CustomerEdit(ctx context.Context, customerID string, fields rebill.Fields) (*soap.Response, error)
	CustomerDelete(ctx context.Context, customerID string) (*soap.Response, error)
	CustomerGet(ctx context.Context, customerID string) (*soap.Response, error)
	PaymentAdd(ctx context.Context, fields rebill.Fields) (*soap.Response, error)
	PaymentEdit(ctx context.Context, rebillID string, fields rebill.Fields) (*soap.Response, error)
	PaymentDelete(ctx context.Context, customerID, rebillID string) (*soap.Response, error)
	PaymentGet(ctx context.Context, customerID, rebillID string) (*soap.Response, error)
	Transactions(ctx context.Context, q rebill.TransactionQuery) (*soap.Response, error)
	TransactionNext(ctx context.Context, customerID, rebillID string) (*soap.Response, error)
}

var _ RebillAPI = (*rebill.Client)(nil)

type resultResp struct {
	Operation string `json:"operation"`
	Result    any    `json:"result"`
}

type errorResp struct {
	Error string      `json:"error"`
	Field string      `json:"field,omitempty"`
	Fault *soap.Fault `json:"fault,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeResult(w http.ResponseWriter, resp *soap.Response) {
	writeJSON(w, http.StatusOK, resultResp{
		Operation: resp.Operation,
		Result:    resp.Value(),
	})
}

// writeError maps local validation failures to 400 and remote failures to 502
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErr *rebill.FieldError
	if errors.As(err, &fieldErr) {
		writeJSON(w, http.StatusBadRequest, errorResp{Error: err.Error(), Field: fieldErr.Field})
		return
	}

	log.Error().Err(err).Str("path", r.URL.Path).Msg("rebill call failed")

	var fault *soap.Fault
	if errors.As(err, &fault) {
		writeJSON(w, http.StatusBadGateway, errorResp{Error: fault.String, Fault: fault})
		return
	}
	writeJSON(w, http.StatusBadGateway, errorResp{Error: "upstream error"})
}

// decodeFields reads a JSON object of field name to value
func decodeFields(r *http.Request) (rebill.Fields, error) {
	var in rebill.Fields
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return nil, err
	}
	if in == nil {
		in = rebill.Fields{}
	}
	return in, nil
}
