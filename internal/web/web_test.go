package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs"
	"github.com/go-chi/chi/v5"

	"github.com/sidereusnuntius/flock/internal/config"
	core "github.com/sidereusnuntius/flock/internal/service/impl"
	"github.com/sidereusnuntius/flock/internal/session"
	"github.com/sidereusnuntius/flock/internal/social"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Configuration{Name: "test"}
	svc := core.New(social.NewDirectory(), social.NewCommunities(), session.NewTable(), nil)
	manager := scs.NewCookieManager("u46IpCV9y5Vlur8YvODJEhgOY8m9JVE4")

	h := New(&cfg, svc, manager)
	router := chi.NewRouter()
	h.Mount(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

// client returns an http client with its own cookie jar, one logged-in user
// each.
func client(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	return &http.Client{Jar: jar}
}

func do(t *testing.T, c *http.Client, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	res, err := c.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func expectStatus(t *testing.T, res *http.Response, want int) {
	t.Helper()
	defer res.Body.Close()
	if res.StatusCode != want {
		t.Fatalf("got status %d, want %d", res.StatusCode, want)
	}
}

func signUpAndLogin(t *testing.T, server *httptest.Server, login, password, name string) *http.Client {
	t.Helper()
	c := client(t)
	expectStatus(t, do(t, c, http.MethodPost, server.URL+"/signup",
		map[string]string{"login": login, "password": password, "name": name}), http.StatusCreated)
	expectStatus(t, do(t, c, http.MethodPost, server.URL+"/login",
		map[string]string{"login": login, "password": password}), http.StatusOK)
	return c
}

func TestFriendshipAndMessageFlow(t *testing.T) {
	server := newServer(t)
	maria := signUpAndLogin(t, server, "maria", "123", "Maria Silva")
	joao := signUpAndLogin(t, server, "joao", "456", "Joao")

	expectStatus(t, do(t, maria, http.MethodPost, server.URL+"/friends/joao", nil), http.StatusNoContent)
	expectStatus(t, do(t, joao, http.MethodPost, server.URL+"/friends/maria", nil), http.StatusNoContent)

	res := do(t, maria, http.MethodGet, server.URL+"/friends/check?a=maria&b=joao", nil)
	defer res.Body.Close()
	var check struct {
		Friends bool `json:"friends"`
	}
	if err := json.NewDecoder(res.Body).Decode(&check); err != nil {
		t.Fatal(err)
	}
	if !check.Friends {
		t.Fatal("users should be friends after reciprocal requests")
	}

	expectStatus(t, do(t, maria, http.MethodPost, server.URL+"/messages/joao",
		map[string]string{"body": "oi"}), http.StatusAccepted)

	res = do(t, joao, http.MethodGet, server.URL+"/messages/next", nil)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("read message: status %d", res.StatusCode)
	}
	var msg struct {
		Sender string `json:"sender"`
		Body   string `json:"body"`
	}
	if err := json.NewDecoder(res.Body).Decode(&msg); err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if msg.Sender != "maria" || msg.Body != "oi" {
		t.Errorf("got %+v, want maria/oi", msg)
	}

	expectStatus(t, do(t, joao, http.MethodGet, server.URL+"/messages/next", nil), http.StatusNotFound)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	server := newServer(t)
	c := client(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/friends/joao"},
		{http.MethodGet, "/messages/next"},
		{http.MethodPost, "/c"},
		{http.MethodDelete, "/account"},
	} {
		res := do(t, c, route.method, server.URL+route.path, map[string]string{})
		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("%s %s: got %d, want 401", route.method, route.path, res.StatusCode)
		}
		res.Body.Close()
	}
}

func TestErrorStatusMapping(t *testing.T) {
	server := newServer(t)
	maria := signUpAndLogin(t, server, "maria", "123", "Maria Silva")
	joao := signUpAndLogin(t, server, "joao", "456", "Joao")

	// Duplicate signup conflicts.
	expectStatus(t, do(t, client(t), http.MethodPost, server.URL+"/signup",
		map[string]string{"login": "maria", "password": "x", "name": "x"}), http.StatusConflict)

	// Unknown target is a 404.
	expectStatus(t, do(t, maria, http.MethodPost, server.URL+"/friends/ghost", nil), http.StatusNotFound)

	// Self reference is a 400.
	expectStatus(t, do(t, maria, http.MethodPost, server.URL+"/friends/maria", nil), http.StatusBadRequest)

	// Enmity forbids.
	expectStatus(t, do(t, maria, http.MethodPost, server.URL+"/enemies/joao", nil), http.StatusNoContent)
	expectStatus(t, do(t, joao, http.MethodPost, server.URL+"/friends/maria", nil), http.StatusForbidden)

	// Bad credentials are a 401.
	expectStatus(t, do(t, client(t), http.MethodPost, server.URL+"/login",
		map[string]string{"login": "maria", "password": "wrong"}), http.StatusUnauthorized)
}

func TestCommunityRoutes(t *testing.T) {
	server := newServer(t)
	owner := signUpAndLogin(t, server, "owner", "pw", "Owner")
	member := signUpAndLogin(t, server, "member", "pw", "Member")

	expectStatus(t, do(t, owner, http.MethodPost, server.URL+"/c",
		map[string]string{"name": "gophers", "description": "people who like Go"}), http.StatusCreated)
	expectStatus(t, do(t, member, http.MethodPost, server.URL+"/c/gophers/members", nil), http.StatusNoContent)
	expectStatus(t, do(t, member, http.MethodPost, server.URL+"/c/gophers/members", nil), http.StatusConflict)

	res := do(t, member, http.MethodGet, server.URL+"/c/gophers/members", nil)
	var members struct {
		Members []string `json:"members"`
	}
	if err := json.NewDecoder(res.Body).Decode(&members); err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if len(members.Members) != 2 || members.Members[0] != "owner" {
		t.Errorf("members: %v, want owner first then member", members.Members)
	}

	expectStatus(t, do(t, owner, http.MethodPost, server.URL+"/c/gophers/messages",
		map[string]string{"body": "welcome"}), http.StatusAccepted)

	res = do(t, member, http.MethodGet, server.URL+"/broadcasts/next", nil)
	var b struct {
		Body string `json:"body"`
	}
	if err := json.NewDecoder(res.Body).Decode(&b); err != nil {
		t.Fatal(err)
	}
	res.Body.Close()
	if b.Body != "welcome" {
		t.Errorf("broadcast body: %q", b.Body)
	}

	expectStatus(t, do(t, client(t), http.MethodGet, server.URL+"/c/ghost", nil), http.StatusNotFound)
}
