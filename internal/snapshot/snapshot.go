// Package snapshot persists the full engine state to sqlite. Persistence is
// bulk and all-or-nothing: LoadAll rebuilds the directories once at startup,
// SaveAll replaces every stored row once at shutdown. Nothing here runs
// between user operations.
package snapshot

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sidereusnuntius/flock/internal/social"
)

var (
	ErrNotFound = errors.New("not found")
)

//go:generate mockgen -destination=../mocks/store.go -package=mock_snapshot github.com/sidereusnuntius/flock/internal/snapshot Store
type Store interface {
	// LoadAll reads the whole stored state and rebuilds both directories.
	// An empty database yields empty directories, not an error.
	LoadAll(ctx context.Context) (*social.Directory, *social.Communities, error)
	// SaveAll replaces the stored state with the given directories in one
	// transaction.
	SaveAll(ctx context.Context, dir *social.Directory, communities *social.Communities) error
}

type sqliteStore struct {
	db *sql.DB
}

func New(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

// HandleError takes a database error and returns a higher level error that
// hides the implementation details and can be more easily handled by the
// calling functions without doing type assertions or comparing to driver
// errors.
func (s *sqliteStore) HandleError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	default:
		return err
	}
}

func (s *sqliteStore) WithTx(ctx context.Context, f func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.HandleError(err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = s.HandleError(tx.Commit())
		}
	}()

	err = f(tx)
	return
}
