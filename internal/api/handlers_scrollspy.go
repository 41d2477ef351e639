package api

import (
	"encoding/json"
	"net/http"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/scrollspy"
)

type scrollSpyRequest struct {
	Anchors   []scrollspy.Anchor `json:"anchors"`
	ScrollTop float64            `json:"scroll_top"`
	Threshold *float64           `json:"threshold,omitempty"`
	DocID     string             `json:"doc_id,omitempty"`
}

type pathEntry struct {
	AnchorID string `json:"anchor_id"`
	Title    string `json:"title"`
	Level    int    `json:"level"`
}

// handleScrollSpy evaluates which anchor is active for a scroll position.
// With a doc_id it also returns the active heading's ancestor path so a
// collapsed table of contents can expand around it.
func (s *Server) handleScrollSpy(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var req scrollSpyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	threshold := s.cfg.ScrollThreshold
	if req.Threshold != nil {
		threshold = *req.Threshold
	}

	resp := map[string]any{
		"active": nil,
		"index":  -1,
	}

	idx, ok := scrollspy.Active(req.Anchors, req.ScrollTop, threshold)
	if ok {
		active := req.Anchors[idx].ID
		resp["active"] = active
		resp["index"] = idx

		if req.DocID != "" {
			entry := s.store.GetByDocID(req.DocID)
			if entry == nil {
				jsonError(w, "outline not found", http.StatusNotFound)
				return
			}
			path := []pathEntry{}
			for _, n := range outline.Path(entry.Outline, active) {
				path = append(path, pathEntry{AnchorID: n.AnchorID, Title: n.Title, Level: n.Level})
			}
			resp["path"] = path
		}
	}

	s.respond(w, http.StatusOK, resp)
}
