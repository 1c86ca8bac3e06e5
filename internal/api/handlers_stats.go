package api

import (
	"net/http"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"latency":      s.orchestrator.Stats(),
		"queue_depth":  s.orchestrator.QueueDepth(),
		"tracked_jobs": s.orchestrator.TrackedJobs(),
		"workers":      s.cfg.WorkerCount,
	})
}
