package state

import (
	"database/sql"

	"github.com/sidereusnuntius/flock/internal/config"
)

type State struct {
	DB     *sql.DB
	Config config.Configuration
}
