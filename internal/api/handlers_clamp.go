package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/docclamp/internal/parser"
	"github.com/dgallion1/docclamp/internal/preview"
)

type clampRequest struct {
	Format  string `json:"format"`
	Content string `json:"content"`
	Title   string `json:"title"`
	Words   *int   `json:"words"`
}

// handleClamp builds a preview synchronously from inline content.
func (s *Server) handleClamp(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req clampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid json body: "+err.Error(), http.StatusBadRequest)
		return
	}

	limit := s.cfg.DefaultWordLimit
	if req.Words != nil {
		limit = *req.Words
	}
	if err := s.checkLimit(limit); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := parser.ForFormat(req.Format)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	tree, err := p.Parse(strings.NewReader(req.Content), "")
	if err != nil {
		jsonError(w, "parse content: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title != "" {
		tree.Title = req.Title
	}

	start := time.Now()
	pv, err := preview.Build(tree, limit)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if s.stats != nil {
		s.stats.Record(time.Since(start), pv.Truncated)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pv)
}

// wordLimit parses an optional form value, falling back to the default.
func (s *Server) wordLimit(raw string) (int, error) {
	if raw == "" {
		return s.cfg.DefaultWordLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid words value %q", raw)
	}
	if err := s.checkLimit(n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Server) checkLimit(n int) error {
	if n < 0 {
		return preview.ErrInvalidLimit
	}
	if n > s.cfg.MaxWordLimit {
		return fmt.Errorf("word limit exceeds maximum (%d)", s.cfg.MaxWordLimit)
	}
	return nil
}
