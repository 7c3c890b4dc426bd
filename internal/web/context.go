package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// actor returns the signed-in actor of r, or nil.
func (s *Server) actor(r *http.Request) *core.Actor {
	if a, ok := s.auth.Actor(r.Context()); ok {
		return a
	}
	return nil
}

// resourceParam loads the resource named by the {id} URL parameter.
func (s *Server) resourceParam(r *http.Request) (core.Resource, error) {
	return s.service.Get(chi.URLParam(r, "id"))
}

// queryState reads the list filters from the query string. Unknown
// categories are kept and simply match nothing.
func queryState(r *http.Request) (core.QueryState, error) {
	q := r.URL.Query()

	state := core.QueryState{
		SearchText: strings.TrimSpace(q.Get("q")),
		Category:   core.ParseCategoryFilter(q.Get("category")),
		City:       strings.TrimSpace(q.Get("city")),
	}
	if state.City == "" {
		state.City = core.CityAll
	}

	if v := q.Get("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return core.QueryState{}, fmt.Errorf("%w: verified=%q", core.ErrBadRequest, v)
		}
		state.VerifiedOnly = b
	}
	return state, nil
}

// baseURL is the configured public URL, or one derived from the request.
func (s *Server) baseURL(r *http.Request) string {
	if s.cfg.Server.BaseURL != "" {
		return s.cfg.Server.BaseURL
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
