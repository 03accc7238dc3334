package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func PaymentAdd(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		resp, err := api.PaymentAdd(r.Context(), fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func PaymentEdit(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		resp, err := api.PaymentEdit(r.Context(), chi.URLParam(r, "rebillID"), fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func PaymentGet(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := api.PaymentGet(r.Context(), chi.URLParam(r, "customerID"), chi.URLParam(r, "rebillID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func PaymentDelete(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := api.PaymentDelete(r.Context(), chi.URLParam(r, "customerID"), chi.URLParam(r, "rebillID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}
