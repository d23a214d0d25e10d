package web

import (
	"github.com/alexedwards/scs"

	"github.com/sidereusnuntius/flock/internal/config"
	"github.com/sidereusnuntius/flock/internal/service"
)

const (
	LoginRoute  = "/login"
	SignUpRoute = "/signup"
)

// SessionKey is the cookie-session key under which the engine session id is
// stored.
const SessionKey = "sid"

type Handler struct {
	Config         *config.Configuration
	service        service.Service
	SessionManager *scs.Manager
}

func New(config *config.Configuration, service service.Service, manager *scs.Manager) Handler {
	return Handler{
		Config:         config,
		service:        service,
		SessionManager: manager,
	}
}
