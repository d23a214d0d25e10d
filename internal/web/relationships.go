package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// targetAction adapts the common "session user acts on a login in the path"
// shape shared by friend requests, idols, crushes and enemies.
func targetAction(h *Handler, act func(sessionID, login string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		if err := act(sid, chi.URLParam(r, "login")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func AddFriend(h *Handler) http.HandlerFunc { return targetAction(h, h.service.AddFriend) }
func AddIdol(h *Handler) http.HandlerFunc   { return targetAction(h, h.service.AddIdol) }
func AddCrush(h *Handler) http.HandlerFunc  { return targetAction(h, h.service.AddCrush) }
func AddEnemy(h *Handler) http.HandlerFunc  { return targetAction(h, h.service.AddEnemy) }

func FriendList(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"friends": orEmpty(h.service.Friends(chi.URLParam(r, "login"))),
		})
	}
}

func FanList(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"fans": orEmpty(h.service.Fans(chi.URLParam(r, "login"))),
		})
	}
}

func AreFriends(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, b := r.URL.Query().Get("a"), r.URL.Query().Get("b")
		writeJSON(w, http.StatusOK, map[string]bool{"friends": h.service.AreFriends(a, b)})
	}
}

func IsFan(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fan, idol := r.URL.Query().Get("fan"), r.URL.Query().Get("idol")
		writeJSON(w, http.StatusOK, map[string]bool{"fan": h.service.IsFan(fan, idol)})
	}
}

func HasCrushOn(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		has, err := h.service.HasCrushOn(sid, chi.URLParam(r, "login"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"crush": has})
	}
}

func CrushList(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		crushes, err := h.service.Crushes(sid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string][]string{"crushes": orEmpty(crushes)})
	}
}

func SendMessage(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Body string `json:"body"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		sid, _ := SessionID(r.Context())
		if err := h.service.SendMessage(sid, chi.URLParam(r, "login"), body.Body); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

func ReadMessage(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		m, err := h.service.ReadMessage(sid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"sender": m.Sender, "body": m.Body})
	}
}

func ReadBroadcast(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		body, err := h.service.ReadBroadcast(sid)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"body": body})
	}
}

// orEmpty keeps empty lists rendering as [] rather than null.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
