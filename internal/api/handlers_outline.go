package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/parser"
	"github.com/go-chi/chi/v5"
)

// handleOutline extracts the heading outline of an uploaded document.
func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	filename, data, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	opts := s.parserOptions()
	ext, err := parser.ForFile(filename, opts)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	entry, err := s.store.Do(data, opts.Key(filename), filename, func() ([]outline.Heading, error) {
		return ext.Extract(bytes.NewReader(data), filename)
	})
	if err != nil {
		s.log.Warn("extract failed", "filename", filename, "error", err)
		jsonError(w, "failed to extract headings: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	s.log.Info("outline built", "doc_id", entry.DocID, "filename", filename, "headings", entry.Count)
	s.respond(w, http.StatusOK, map[string]any{
		"doc_id":   entry.DocID,
		"filename": filename,
		"count":    entry.Count,
		"outline":  entry.Outline,
	})
}

func (s *Server) handleGetOutline(w http.ResponseWriter, r *http.Request) {
	entry := s.store.GetByDocID(chi.URLParam(r, "docID"))
	if entry == nil {
		jsonError(w, "outline not found", http.StatusNotFound)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{
		"doc_id":   entry.DocID,
		"filename": entry.Filename,
		"count":    entry.Count,
		"outline":  entry.Outline,
	})
}

// handleOutlineTOC returns the cached outline as a Markdown list.
func (s *Server) handleOutlineTOC(w http.ResponseWriter, r *http.Request) {
	entry := s.store.GetByDocID(chi.URLParam(r, "docID"))
	if entry == nil {
		jsonError(w, "outline not found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := outline.Markdown(&buf, entry.Outline); err != nil {
		jsonError(w, "failed to render toc", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.log.Warn("write toc failed", "doc_id", entry.DocID, "error", err)
	}
}

// readUpload reads the multipart "file" field, writing an error response
// and returning ok=false on failure.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !parser.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return "", nil, false
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return "", nil, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return "", nil, false
	}
	return filename, data, true
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

// respond writes a JSON response, logging when the client can't be written to.
func (s *Server) respond(w http.ResponseWriter, code int, v any) {
	if err := writeJSON(w, code, v); err != nil {
		s.log.Warn("write response failed", "error", err)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	_ = writeJSON(w, code, map[string]string{"error": msg})
}

// parserOptions returns the extraction and render settings from config.
func (s *Server) parserOptions() parser.Options {
	return parser.Options{
		MarkerClass: s.cfg.HeadingMarkerClass,
		RawHTML:     s.cfg.RenderRawHTML,
	}
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
