package api

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
)

// handleRender returns the document as HTML with heading anchors set,
// together with the outline those anchors belong to.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	var (
		rendered string
		headings []outline.Heading
		err      error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		rendered, headings, err = parser.RenderMarkdown(data, s.parserOptions())
	case ".html", ".htm":
		var buf bytes.Buffer
		headings, err = parser.AnnotateHTML(bytes.NewReader(data), &buf, s.cfg.HeadingMarkerClass)
		rendered = buf.String()
	default:
		jsonError(w, "render supports markdown and html only", http.StatusBadRequest)
		return
	}
	if err != nil {
		s.log.Warn("render failed", "filename", filename, "error", err)
		jsonError(w, "failed to render: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.respond(w, http.StatusOK, map[string]any{
		"filename": filename,
		"html":     rendered,
		"count":    len(headings),
		"outline":  outline.Build(headings),
	})
}
