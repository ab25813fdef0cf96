package handler

import (
	"net/http"
	"time"

	"endoguard/internal/service"
)

// AnalyticsHandler exposes the local usage counters
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// Usage handles GET /v1/analytics/usage
func (h *AnalyticsHandler) Usage(w http.ResponseWriter, r *http.Request) {
	platform := r.URL.Query().Get("platform")
	action := r.URL.Query().Get("action")
	if platform == "" || action == "" {
		writeError(w, http.StatusBadRequest, "platform and action are required")
		return
	}

	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}

	count, err := h.analyticsSvc.UsageCount(r.Context(), platform, action, day)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"platform": platform,
		"action":   action,
		"date":     day.Format("2006-01-02"),
		"count":    count,
	})
}
