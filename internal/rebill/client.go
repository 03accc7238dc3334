package rebill

import (
	"context"
	"sort"

	"rebill/internal/config"
	"rebill/internal/metrics"
	"rebill/internal/soap"

	"github.com/rs/zerolog/log"
)

// Caller issues one remote operation. *soap.Session implements it.
type Caller interface {
	Call(ctx context.Context, operation string, params *soap.Params) (*soap.Response, error)
}

var _ Caller = (*soap.Session)(nil)

// Client validates and shapes rebill requests and forwards each one as a
// single remote call. Remote errors are returned unchanged.
type Client struct {
	caller Caller
}

// New establishes a session with the service described by cfg
func New(ctx context.Context, cfg config.EwayCfg) (*Client, error) {
	session, err := soap.NewSession(ctx, cfg.WSDLURL, soap.Header{
		CustomerID: cfg.CustomerID,
		Username:   cfg.Username,
		Password:   cfg.Password,
	}, soap.Options{
		Timeout:     cfg.Timeout,
		WSDLRetries: cfg.WSDLRetries,
	})
	if err != nil {
		return nil, err
	}
	return NewWithCaller(session), nil
}

// NewWithCaller wraps an existing caller
func NewWithCaller(caller Caller) *Client {
	return &Client{caller: caller}
}

// CustomerAdd creates a rebill customer
func (c *Client) CustomerAdd(ctx context.Context, fields Fields) (*soap.Response, error) {
	params, err := customerParams(fields)
	if err != nil {
		return nil, err
	}
	return c.caller.Call(ctx, OpCreateRebillCustomer, params)
}

// CustomerEdit replaces the record of an existing rebill customer
func (c *Client) CustomerEdit(ctx context.Context, customerID string, fields Fields) (*soap.Response, error) {
	params, err := customerParams(fields)
	if err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, missing(RecordCustomer, FieldRebillCustomerID)
	}

	// the identifier leads the update argument list
	update := soap.NewParams().Set(FieldRebillCustomerID, customerID)
	for _, p := range params.All() {
		update.Set(p.Name, p.Value)
	}
	return c.caller.Call(ctx, OpUpdateRebillCustomer, update)
}

// CustomerDelete removes a rebill customer
func (c *Client) CustomerDelete(ctx context.Context, customerID string) (*soap.Response, error) {
	params := soap.NewParams().Set(FieldRebillCustomerID, customerID)
	return c.caller.Call(ctx, OpDeleteRebillCustomer, params)
}

// CustomerGet fetches a rebill customer
func (c *Client) CustomerGet(ctx context.Context, customerID string) (*soap.Response, error) {
	params := soap.NewParams().Set(FieldRebillCustomerID, customerID)
	return c.caller.Call(ctx, OpQueryRebillCustomer, params)
}

// PaymentAdd creates a rebill event
func (c *Client) PaymentAdd(ctx context.Context, fields Fields) (*soap.Response, error) {
	params, err := paymentParams(fields)
	if err != nil {
		return nil, err
	}
	return c.caller.Call(ctx, OpCreateRebillEvent, params)
}

// PaymentEdit replaces an existing rebill event
func (c *Client) PaymentEdit(ctx context.Context, rebillID string, fields Fields) (*soap.Response, error) {
	params, err := paymentParams(fields)
	if err != nil {
		return nil, err
	}
	if rebillID == "" {
		return nil, missing(RecordPayment, FieldRebillID)
	}

	// RebillID follows RebillCustomerID, matching the update signature
	update := soap.NewParams()
	for _, p := range params.All() {
		update.Set(p.Name, p.Value)
		if p.Name == FieldRebillCustomerID {
			update.Set(FieldRebillID, rebillID)
		}
	}
	return c.caller.Call(ctx, OpUpdateRebillEvent, update)
}

// PaymentDelete removes a rebill event
func (c *Client) PaymentDelete(ctx context.Context, customerID, rebillID string) (*soap.Response, error) {
	return c.caller.Call(ctx, OpDeleteRebillEvent, eventKey(customerID, rebillID))
}

// PaymentGet fetches a rebill event
func (c *Client) PaymentGet(ctx context.Context, customerID, rebillID string) (*soap.Response, error) {
	return c.caller.Call(ctx, OpQueryRebillEvent, eventKey(customerID, rebillID))
}

// customerParams checks the required customer fields, then builds the full
// 17-field argument list with "" for anything not supplied.
func customerParams(fields Fields) (*soap.Params, error) {
	if name, ok := firstMissing(fields, RequiredCustomerFields); ok {
		return nil, missing(RecordCustomer, name)
	}
	logIgnored(RecordCustomer, fields, customerFieldSet)

	params := soap.NewParams()
	for _, name := range CustomerFields {
		params.Set(name, fields[name])
	}
	return params, nil
}

// paymentParams requires every payment field; nothing is defaulted
func paymentParams(fields Fields) (*soap.Params, error) {
	if name, ok := firstMissing(fields, PaymentFields); ok {
		return nil, missing(RecordPayment, name)
	}
	logIgnored(RecordPayment, fields, paymentFieldSet)

	params := soap.NewParams()
	for _, name := range PaymentFields {
		params.Set(name, fields[name])
	}
	return params, nil
}

func eventKey(customerID, rebillID string) *soap.Params {
	return soap.NewParams().
		Set(FieldRebillCustomerID, customerID).
		Set(FieldRebillID, rebillID)
}

func missing(record Record, field string) *FieldError {
	metrics.ValidationFailuresTotal.WithLabelValues(string(record), field).Inc()
	return &FieldError{Record: record, Field: field}
}

func logIgnored(record Record, fields Fields, known map[string]bool) {
	extra := unknownFields(fields, known)
	if len(extra) == 0 {
		return
	}
	sort.Strings(extra)
	log.Debug().
		Str("record", string(record)).
		Strs("fields", extra).
		Msg("ignoring unrecognised fields")
}
