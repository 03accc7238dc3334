package handlers

import (
	"net/http"

	"rebill/internal/rebill"

	"github.com/go-chi/chi/v5"
)

// Transactions forwards query keys that are present; absent keys stay nil
func Transactions(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		optional := func(key string) *string {
			if !query.Has(key) {
				return nil
			}
			v := query.Get(key)
			return &v
		}

		resp, err := api.Transactions(r.Context(), rebill.TransactionQuery{
			CustomerID: chi.URLParam(r, "customerID"),
			RebillID:   chi.URLParam(r, "rebillID"),
			StartDate:  optional(rebill.FieldStartDate),
			EndDate:    optional(rebill.FieldEndDate),
			Status:     optional(rebill.FieldStatus),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func TransactionNext(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := api.TransactionNext(r.Context(), chi.URLParam(r, "customerID"), chi.URLParam(r, "rebillID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}
