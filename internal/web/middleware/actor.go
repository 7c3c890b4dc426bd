package middleware

import (
	"net/http"
	"strings"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// Identity headers set by the sign-in proxy in front of the server.
const (
	HeaderUserName    = "X-User-Name"
	HeaderUserEmail   = "X-User-Email"
	HeaderUserRole    = "X-User-Role"
	HeaderUserPicture = "X-User-Picture"
)

// ActorFromHeaders builds an actor from the identity headers. ok is false
// when no name is present.
func ActorFromHeaders(h http.Header) (*core.Actor, bool) {
	name := strings.TrimSpace(h.Get(HeaderUserName))
	if name == "" {
		return nil, false
	}
	return &core.Actor{
		Name:    name,
		Email:   strings.ToLower(strings.TrimSpace(h.Get(HeaderUserEmail))),
		Role:    strings.TrimSpace(h.Get(HeaderUserRole)),
		Picture: strings.TrimSpace(h.Get(HeaderUserPicture)),
	}, true
}

// Identity attaches the actor named by the identity headers to the request
// context, where core.ContextAuth finds it. Anonymous requests pass through
// unchanged.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor, ok := ActorFromHeaders(r.Header); ok {
			r = r.WithContext(core.ContextWithActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}
