package web

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Mount(r chi.Router) {
	authenticated := AuthenticatedMiddleware()
	r.Use(SessionMiddleware(h))

	r.Post(SignUpRoute, SignUp(h))
	r.Post(LoginRoute, Login(h))
	r.Get("/logout", Logout(h))
	r.With(authenticated).Delete("/account", RemoveAccount(h))

	// Reads addressed by login are public, like the original profile pages.
	r.Route("/u/{login}", func(r chi.Router) {
		r.Get("/attr/{key}", UserAttribute(h))
		r.Get("/friends", FriendList(h))
		r.Get("/fans", FanList(h))
		r.Get("/communities", CommunityList(h))
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticated)

		r.Put("/profile/{key}", EditProfile(h))

		r.Post("/friends/{login}", AddFriend(h))
		r.Post("/idols/{login}", AddIdol(h))
		r.Post("/crushes/{login}", AddCrush(h))
		r.Get("/crushes/{login}", HasCrushOn(h))
		r.Get("/crushes", CrushList(h))
		r.Post("/enemies/{login}", AddEnemy(h))

		r.Post("/messages/{login}", SendMessage(h))
		r.Get("/messages/next", ReadMessage(h))
		r.Get("/broadcasts/next", ReadBroadcast(h))

		r.Post("/c", CreateCommunity(h))
		r.Post("/c/{name}/members", JoinCommunity(h))
		r.Post("/c/{name}/messages", SendBroadcast(h))
	})

	r.Get("/friends/check", AreFriends(h))
	r.Get("/fans/check", IsFan(h))

	r.Get("/c/{name}", CommunityInfo(h))
	r.Get("/c/{name}/members", CommunityMembers(h))
}
