package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func UserAttribute(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value, err := h.service.UserAttribute(chi.URLParam(r, "login"), chi.URLParam(r, "key"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"value": value})
	}
}

func EditProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		sid, _ := SessionID(r.Context())
		if err := h.service.EditProfile(sid, chi.URLParam(r, "key"), body.Value); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
