package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/JonMunkholm/CommunityDirectory/internal/assist"
	"github.com/JonMunkholm/CommunityDirectory/internal/core"
)

// decodeOptional decodes a JSON body into v, accepting an empty body.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return fmt.Errorf("%w: %v", core.ErrBadRequest, err)
}

// handleDraft asks the drafting service for an outreach message.
func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	if s.drafter == nil {
		respondErr(w, r, core.ErrAssistUnavailable, http.StatusServiceUnavailable)
		return
	}

	res, err := s.resourceParam(r)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	var req struct {
		Instructions string `json:"instructions"`
	}
	if err := decodeOptional(r, &req); err != nil {
		respondErr(w, r, err, http.StatusBadRequest)
		return
	}

	draft, err := s.drafter.Draft(r.Context(), res, req.Instructions)
	if err != nil {
		respondErr(w, r, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"resourceId": res.ID,
		"draft":      draft,
	})
}

// handleVerify runs a grounded search about the resource, by default
// asking for its current opening hours.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if s.searcher == nil {
		respondErr(w, r, core.ErrAssistUnavailable, http.StatusServiceUnavailable)
		return
	}

	res, err := s.resourceParam(r)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	var req struct {
		Query string `json:"query"`
	}
	if err := decodeOptional(r, &req); err != nil {
		respondErr(w, r, err, http.StatusBadRequest)
		return
	}
	if req.Query == "" {
		req.Query = assist.DefaultVerifyQuery(res)
	}

	answer, err := s.searcher.Search(r.Context(), req.Query)
	if err != nil {
		respondErr(w, r, err, http.StatusBadGateway)
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"resourceId": res.ID,
		"query":      req.Query,
		"answer":     answer,
	})
}
