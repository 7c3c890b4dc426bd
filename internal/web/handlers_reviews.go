package web

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
	"github.com/JonMunkholm/CommunityDirectory/internal/logging"
)

// reviewRequest is the body of POST /api/resources/{id}/reviews.
type reviewRequest struct {
	Rating  int      `json:"rating"`
	Tags    []string `json:"tags"`
	Comment string   `json:"comment"`
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	res, err := s.resourceParam(r)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"resourceId": res.ID,
		"score":      s.service.Score(res.ID),
		"reviews":    s.service.Reviews(res.ID),
	})
}

// handleAddReview records a review attributed to the signed-in actor.
func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	res, err := s.resourceParam(r)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	actor := s.actor(r)
	if actor == nil {
		respondErr(w, r, core.ErrUnauthenticated, http.StatusUnauthorized)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, r, fmt.Errorf("%w: invalid review body: %v", core.ErrBadRequest, err), http.StatusBadRequest)
		return
	}

	review, err := s.service.AddReview(actor, core.ReviewInput{
		ResourceID: res.ID,
		Rating:     req.Rating,
		Tags:       req.Tags,
		Comment:    req.Comment,
	})
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.WithFields(r.Context(), "resource_id", res.ID, "review_id", review.ID).
		Info("review added", "rating", review.Rating, "role", review.AuthorRole)

	writeJSON(w, r, http.StatusCreated, map[string]any{
		"review": review,
		"score":  s.service.Score(res.ID),
	})
}

// handleResourceRequest drafts the email asking the curator to add a
// resource the directory is missing.
func (s *Server) handleResourceRequest(w http.ResponseWriter, r *http.Request) {
	actor := s.actor(r)
	if actor == nil {
		respondErr(w, r, core.ErrUnauthenticated, http.StatusUnauthorized)
		return
	}

	var req core.ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, r, fmt.Errorf("%w: invalid request body: %v", core.ErrBadRequest, err), http.StatusBadRequest)
		return
	}

	mail, err := core.NewResourceRequest(actor, s.cfg.Data.CuratorEmail, req)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.FromContext(r.Context()).Info("resource requested", "name", req.Name)
	writeJSON(w, r, http.StatusOK, mail)
}
