package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func CreateCommunity(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		sid, _ := SessionID(r.Context())
		if err := h.service.CreateCommunity(sid, body.Name, body.Description); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func CommunityInfo(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		description, err := h.service.CommunityDescription(name)
		if err != nil {
			writeError(w, err)
			return
		}
		owner, err := h.service.CommunityOwner(name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"name":        name,
			"description": description,
			"owner":       owner,
		})
	}
}

func CommunityMembers(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := h.service.CommunityMembers(chi.URLParam(r, "name"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"members": orEmpty(members)})
	}
}

func JoinCommunity(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		if err := h.service.JoinCommunity(sid, chi.URLParam(r, "name")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func CommunityList(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		communities, err := h.service.CommunitiesOf(chi.URLParam(r, "login"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"communities": orEmpty(communities)})
	}
}

func SendBroadcast(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Body string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		sid, _ := SessionID(r.Context())
		if err := h.service.SendBroadcast(sid, chi.URLParam(r, "name"), body.Body); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}
