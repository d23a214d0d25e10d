package web

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/flock/internal/service"
)

type key struct{}

// SessionID returns the engine session id carried by the request, when the
// cookie session held one.
func SessionID(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(key{}).(string)
	return s, ok
}

// SessionMiddleware copies the engine session id from the cookie session
// into the request context. It does not reject anything; that is the
// authenticated middleware's job.
func SessionMiddleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie := h.SessionManager.Load(r)
			sid, err := cookie.GetString(SessionKey)
			if err == nil && sid != "" {
				r = r.WithContext(context.WithValue(r.Context(), key{}, sid))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AuthenticatedMiddleware rejects requests that carry no session id.
func AuthenticatedMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionID(r.Context()); !ok {
				writeError(w, service.ErrInvalidSession)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

func SignUp(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}
		if err := h.service.CreateAccount(c.Login, c.Password, c.Name); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

func Login(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			http.Error(w, "malformed request body", http.StatusBadRequest)
			return
		}

		sid, err := h.service.Login(c.Login, c.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		cookie := h.SessionManager.Load(r)
		if err = cookie.PutString(w, SessionKey, sid); err != nil {
			log.Error().Err(err).Msg("failed to write session cookie")
			http.Error(w, "", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"session": sid})
	}
}

func Logout(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := SessionID(r.Context()); ok {
			h.service.Logout(sid)
		}
		cookie := h.SessionManager.Load(r)
		if err := cookie.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy cookie session")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func RemoveAccount(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, _ := SessionID(r.Context())
		if err := h.service.RemoveAccount(sid); err != nil {
			writeError(w, err)
			return
		}
		cookie := h.SessionManager.Load(r)
		if err := cookie.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy cookie session")
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
