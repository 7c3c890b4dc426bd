package web

import (
	"net/http"
	"strconv"

	"github.com/JonMunkholm/CommunityDirectory/internal/core"
	"github.com/JonMunkholm/CommunityDirectory/internal/logging"
)

// handleToggleSave adds the resource to, or removes it from, the actor's
// saved list.
func (s *Server) handleToggleSave(w http.ResponseWriter, r *http.Request) {
	res, err := s.resourceParam(r)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	saved, likes, err := s.service.ToggleSave(s.actor(r), res.ID)
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	logging.FromContext(r.Context()).Debug("saved list toggled", "resource_id", res.ID, "saved", saved)

	writeJSON(w, r, http.StatusOK, map[string]any{
		"resourceId": res.ID,
		"saved":      saved,
		"likes":      likes,
	})
}

func (s *Server) handleSaved(w http.ResponseWriter, r *http.Request) {
	actor := s.actor(r)
	if actor == nil {
		respondErr(w, r, core.ErrUnauthenticated, http.StatusUnauthorized)
		return
	}

	saved := s.service.Saved(actor)
	writeJSON(w, r, http.StatusOK, map[string]any{
		"count":     len(saved),
		"resources": s.views(actor, saved),
	})
}

// handleExportSaved downloads the saved list as plain text.
func (s *Server) handleExportSaved(w http.ResponseWriter, r *http.Request) {
	actor := s.actor(r)
	if actor == nil {
		respondErr(w, r, core.ErrUnauthenticated, http.StatusUnauthorized)
		return
	}

	text, err := core.ExportText(s.service.Saved(actor))
	if err != nil {
		respondErr(w, r, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(core.ExportFileName(s.now())))
	_, _ = w.Write([]byte(text))
}
