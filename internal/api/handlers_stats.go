package api

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handlePreviewStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "preview stats unavailable", http.StatusServiceUnavailable)
		return
	}

	queueDepth := 0
	if s.orchestrator != nil {
		queueDepth = s.orchestrator.QueueDepth()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"queue_depth": queueDepth,
		"stats":       s.stats.Snapshot(),
	})
}
