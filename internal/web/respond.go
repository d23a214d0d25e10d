package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/sidereusnuntius/flock/internal/service"
	"github.com/sidereusnuntius/flock/internal/social"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// writeError maps the engine and service sentinels onto HTTP statuses. Every
// sentinel is an expected, user-facing outcome; only unrecognized errors are
// logged and hidden behind a 500.
func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrInvalidSession),
		errors.Is(err, service.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, social.ErrUserNotFound),
		errors.Is(err, social.ErrCommunityNotFound),
		errors.Is(err, social.ErrAttributeNotSet),
		errors.Is(err, social.ErrNoMessages):
		status = http.StatusNotFound
	case errors.Is(err, social.ErrBlockedByEnmity):
		status = http.StatusForbidden
	case errors.Is(err, social.ErrAlreadyFriends),
		errors.Is(err, social.ErrRequestPending),
		errors.Is(err, social.ErrAlreadyIdol),
		errors.Is(err, social.ErrAlreadyCrush),
		errors.Is(err, social.ErrAlreadyEnemy),
		errors.Is(err, social.ErrAlreadyMember),
		errors.Is(err, social.ErrDuplicateAccount),
		errors.Is(err, social.ErrDuplicateCommunity):
		status = http.StatusConflict
	case errors.Is(err, social.ErrSelfReference),
		errors.Is(err, social.ErrInvalidAttribute),
		errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		log.Error().Err(err).Msg("unexpected error")
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
