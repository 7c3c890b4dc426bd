package web

import (
	"net/http"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// ResourceView is a resource with its live session figures.
type ResourceView struct {
	core.Resource
	Score float64 `json:"score"`
	Likes int     `json:"likes"`
	Saved bool    `json:"saved"`
}

// ResourceList is the body of GET /api/resources.
type ResourceList struct {
	Count     int            `json:"count"`
	Resources []ResourceView `json:"resources"`
	Bounds    *core.Bounds   `json:"bounds"`
	Pins      []core.Pin     `json:"pins"`
}

// ResourceDetail is the body of GET /api/resources/{id}.
type ResourceDetail struct {
	ResourceView
	Reviews []core.Review   `json:"reviews"`
	Share   core.ShareLinks `json:"share"`
	Maps    core.MapLinks   `json:"maps"`
}

// CategoryOption is one entry of the category filter.
type CategoryOption struct {
	Value core.Category `json:"value"`
	Label string        `json:"label"`
}

// views decorates resources with scores from a single ledger snapshot.
func (s *Server) views(actor *core.Actor, resources []core.Resource) []ResourceView {
	scores := s.service.Scores(resources)
	out := make([]ResourceView, len(resources))
	for i, res := range resources {
		out[i] = ResourceView{
			Resource: res,
			Score:    scores[res.ID],
			Likes:    s.service.Likes(res.ID),
			Saved:    s.service.IsSaved(actor, res.ID),
		}
	}
	return out
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":    "ok",
		"resources": s.service.Store().Len(),
		"assistant": s.drafter != nil,
	})
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"cities": s.service.Store().Cities()})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	cats := core.Categories()
	out := make([]CategoryOption, len(cats))
	for i, c := range cats {
		out[i] = CategoryOption{Value: c, Label: c.Label()}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"categories": out})
}

func (s *Server) handleReviewOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"roles":        core.Roles,
		"positiveTags": core.PositiveTags,
		"negativeTags": core.NegativeTags,
		"minRating":    core.MinRating,
		"maxRating":    core.MaxRating,
	})
}

// handleListResources filters the directory and returns the map placement
// of the result.
func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	q, err := queryState(r)
	if err != nil {
		respondErr(w, r, err, http.StatusBadRequest)
		return
	}

	hits := s.service.Query(q)
	bounds := core.ComputeBounds(hits)

	writeJSON(w, r, http.StatusOK, ResourceList{
		Count:     len(hits),
		Resources: s.views(s.actor(r), hits),
		Bounds:    bounds,
		Pins:      core.Pins(hits, bounds),
	})
}

func (s *Server) handleGetResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.resourceParam(r)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, ResourceDetail{
		ResourceView: s.views(s.actor(r), []core.Resource{res})[0],
		Reviews:      s.service.Reviews(res.ID),
		Share:        core.NewShareLinks(s.baseURL(r), res),
		Maps:         core.NewMapLinks(res),
	})
}
