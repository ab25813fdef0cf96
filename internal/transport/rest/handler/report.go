package handler

import (
	"fmt"
	"net/http"
	"os"

	"endoguard/internal/service"
	"endoguard/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// ReportHandler serves downloadable report artifacts for completed
// assessments
type ReportHandler struct {
	wizardSvc    *service.WizardService
	reportSvc    *service.ReportService
	analyticsSvc *service.AnalyticsService
}

// NewReportHandler creates a new report handler
func NewReportHandler(wizardSvc *service.WizardService, reportSvc *service.ReportService, analyticsSvc *service.AnalyticsService) *ReportHandler {
	return &ReportHandler{
		wizardSvc:    wizardSvc,
		reportSvc:    reportSvc,
		analyticsSvc: analyticsSvc,
	}
}

func (h *ReportHandler) track(r *http.Request, action string) {
	if h.analyticsSvc != nil {
		h.analyticsSvc.Track(r.Context(), "web", action, nil)
	}
}

// DownloadPDF handles GET /v1/assessments/{id}/report.pdf
func (h *ReportHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result, err := h.wizardSvc.Result(r.Context(), id)
	if err != nil {
		writeWizardError(w, err)
		return
	}

	// Patient info comes from the session when it is still live; the
	// report degrades to email-only once the session TTL has lapsed
	subject := &service.ReportSubject{Email: middleware.GetEmail(r.Context())}
	if view, err := h.wizardSvc.Get(r.Context(), id); err == nil {
		subject.Input = &view.Session.Input
	}

	data, err := h.reportSvc.BuildPDF(result, subject)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.track(r, "report_downloaded")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, service.ReportFileName(result.GeneratedAt)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ShareCard handles GET /v1/assessments/{id}/card.png
func (h *ReportHandler) ShareCard(w http.ResponseWriter, r *http.Request) {
	result, err := h.wizardSvc.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeWizardError(w, err)
		return
	}

	data, err := h.reportSvc.BuildShareCard(result)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.track(r, "card_downloaded")

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`inline; filename="%s"`, service.CardFileName(result.GeneratedAt)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ShareLinks handles GET /v1/assessments/{id}/share-links
func (h *ReportHandler) ShareLinks(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	result, err := h.wizardSvc.Result(r.Context(), id)
	if err != nil {
		writeWizardError(w, err)
		return
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "https://endoguard.nexusbiomedical.example"
	}
	resultURL := fmt.Sprintf("%s/results/%s", baseURL, id)

	h.track(r, "share_links_requested")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"links": service.ShareLinks(result, resultURL),
	})
}
