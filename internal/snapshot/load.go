package snapshot

import (
	"context"
	"fmt"

	"github.com/sidereusnuntius/flock/internal/social"
)

func (s *sqliteStore) LoadAll(ctx context.Context) (*social.Directory, *social.Communities, error) {
	states, err := s.loadUsers(ctx)
	if err != nil {
		return nil, nil, s.HandleError(err)
	}

	dir := social.NewDirectory()
	for _, st := range states {
		if err = dir.Add(social.RestoreUser(st)); err != nil {
			return nil, nil, err
		}
	}

	communities, err := s.loadCommunities(ctx)
	if err != nil {
		return nil, nil, s.HandleError(err)
	}
	return dir, communities, nil
}

func (s *sqliteStore) loadUsers(ctx context.Context) ([]social.UserState, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT login, password, display_name FROM users ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []social.UserState
	index := make(map[string]int)
	for rows.Next() {
		var st social.UserState
		if err = rows.Scan(&st.Login, &st.Password, &st.DisplayName); err != nil {
			return nil, err
		}
		st.Profile = make(map[string]string)
		index[st.Login] = len(states)
		states = append(states, st)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = s.loadProfiles(ctx, states, index); err != nil {
		return nil, err
	}
	if err = s.loadRelationships(ctx, states, index); err != nil {
		return nil, err
	}
	if err = s.loadQueues(ctx, states, index); err != nil {
		return nil, err
	}
	return states, nil
}

func (s *sqliteStore) loadProfiles(ctx context.Context, states []social.UserState, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx, "SELECT login, key, value FROM profile_attributes")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var login, key, value string
		if err = rows.Scan(&login, &key, &value); err != nil {
			return err
		}
		i, ok := index[login]
		if !ok {
			return fmt.Errorf("profile attribute for unknown user %q", login)
		}
		states[i].Profile[key] = value
	}
	return rows.Err()
}

func (s *sqliteStore) loadRelationships(ctx context.Context, states []social.UserState, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT owner, relation, target FROM relationships ORDER BY owner, relation, position")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var owner, relation, target string
		if err = rows.Scan(&owner, &relation, &target); err != nil {
			return err
		}
		i, ok := index[owner]
		if !ok {
			return fmt.Errorf("relationship for unknown user %q", owner)
		}
		st := &states[i]
		switch relation {
		case relFriend:
			st.Friends = append(st.Friends, target)
		case relRequestOut:
			st.RequestsOut = append(st.RequestsOut, target)
		case relRequestIn:
			st.RequestsIn = append(st.RequestsIn, target)
		case relIdol:
			st.Idols = append(st.Idols, target)
		case relFan:
			st.Fans = append(st.Fans, target)
		case relCrush:
			st.Crushes = append(st.Crushes, target)
		case relEnemy:
			st.Enemies = append(st.Enemies, target)
		default:
			return fmt.Errorf("unknown relation tag %q", relation)
		}
	}
	return rows.Err()
}

func (s *sqliteStore) loadQueues(ctx context.Context, states []social.UserState, index map[string]int) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT recipient, sender, body FROM private_messages ORDER BY recipient, position")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var recipient string
		var m social.Message
		if err = rows.Scan(&recipient, &m.Sender, &m.Body); err != nil {
			return err
		}
		i, ok := index[recipient]
		if !ok {
			return fmt.Errorf("message for unknown user %q", recipient)
		}
		states[i].Messages = append(states[i].Messages, m)
	}
	if err = rows.Err(); err != nil {
		return err
	}

	rows, err = s.db.QueryContext(ctx,
		"SELECT recipient, body FROM broadcast_messages ORDER BY recipient, position")
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var recipient, body string
		if err = rows.Scan(&recipient, &body); err != nil {
			return err
		}
		i, ok := index[recipient]
		if !ok {
			return fmt.Errorf("broadcast for unknown user %q", recipient)
		}
		states[i].Broadcasts = append(states[i].Broadcasts, body)
	}
	return rows.Err()
}

func (s *sqliteStore) loadCommunities(ctx context.Context) (*social.Communities, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, description, owner FROM communities ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []social.CommunityState
	index := make(map[string]int)
	for rows.Next() {
		var st social.CommunityState
		if err = rows.Scan(&st.Name, &st.Description, &st.Owner); err != nil {
			return nil, err
		}
		index[st.Name] = len(states)
		states = append(states, st)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		"SELECT community, login FROM community_members ORDER BY community, position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var name, login string
		if err = rows.Scan(&name, &login); err != nil {
			return nil, err
		}
		i, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("member row for unknown community %q", name)
		}
		states[i].Members = append(states[i].Members, login)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	communities := social.NewCommunities()
	for _, st := range states {
		if err = communities.Add(social.RestoreCommunity(st)); err != nil {
			return nil, err
		}
	}
	return communities, nil
}
