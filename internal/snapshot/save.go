package snapshot

import (
	"context"
	"database/sql"

	"github.com/sidereusnuntius/flock/internal/social"
)

// relationColumns maps the relation tag stored in the relationships table to
// the slice it came from. Tags are part of the storage format; renaming one
// needs a migration.
const (
	relFriend     = "friend"
	relRequestOut = "request_out"
	relRequestIn  = "request_in"
	relIdol       = "idol"
	relFan        = "fan"
	relCrush      = "crush"
	relEnemy      = "enemy"
)

func (s *sqliteStore) SaveAll(ctx context.Context, dir *social.Directory, communities *social.Communities) error {
	return s.WithTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{
			"community_members", "communities", "broadcast_messages",
			"private_messages", "relationships", "profile_attributes", "users",
		} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return err
			}
		}

		for pos, u := range dir.All() {
			if err := saveUser(ctx, tx, u.State(), pos); err != nil {
				return err
			}
		}
		for pos, c := range communities.All() {
			if err := saveCommunity(ctx, tx, c.State(), pos); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveUser(ctx context.Context, tx *sql.Tx, u social.UserState, position int) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO users(login, password, display_name, position) VALUES (?,?,?,?)",
		u.Login, u.Password, u.DisplayName, position)
	if err != nil {
		return err
	}

	for key, value := range u.Profile {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO profile_attributes(login, key, value) VALUES (?,?,?)",
			u.Login, key, value)
		if err != nil {
			return err
		}
	}

	sets := []struct {
		relation string
		targets  []string
	}{
		{relFriend, u.Friends},
		{relRequestOut, u.RequestsOut},
		{relRequestIn, u.RequestsIn},
		{relIdol, u.Idols},
		{relFan, u.Fans},
		{relCrush, u.Crushes},
		{relEnemy, u.Enemies},
	}
	for _, set := range sets {
		for pos, target := range set.targets {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO relationships(owner, relation, target, position) VALUES (?,?,?,?)",
				u.Login, set.relation, target, pos)
			if err != nil {
				return err
			}
		}
	}

	for pos, m := range u.Messages {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO private_messages(recipient, position, sender, body) VALUES (?,?,?,?)",
			u.Login, pos, m.Sender, m.Body)
		if err != nil {
			return err
		}
	}
	for pos, body := range u.Broadcasts {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO broadcast_messages(recipient, position, body) VALUES (?,?,?)",
			u.Login, pos, body)
		if err != nil {
			return err
		}
	}
	return nil
}

func saveCommunity(ctx context.Context, tx *sql.Tx, c social.CommunityState, position int) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO communities(name, description, owner, position) VALUES (?,?,?,?)",
		c.Name, c.Description, c.Owner, position)
	if err != nil {
		return err
	}
	for pos, login := range c.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO community_members(community, position, login) VALUES (?,?,?)",
			c.Name, pos, login)
		if err != nil {
			return err
		}
	}
	return nil
}
