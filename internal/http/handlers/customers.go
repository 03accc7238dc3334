package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func CustomerAdd(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		resp, err := api.CustomerAdd(r.Context(), fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func CustomerEdit(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := decodeFields(r)
		if err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		resp, err := api.CustomerEdit(r.Context(), chi.URLParam(r, "customerID"), fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func CustomerGet(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := api.CustomerGet(r.Context(), chi.URLParam(r, "customerID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}

func CustomerDelete(api RebillAPI) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := api.CustomerDelete(r.Context(), chi.URLParam(r, "customerID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeResult(w, resp)
	}
}
