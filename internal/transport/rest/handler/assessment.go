package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"endoguard/internal/render"
	"endoguard/internal/service"
	"endoguard/internal/taxonomy"
	"endoguard/internal/transport/rest/middleware"

	"github.com/gorilla/mux"
)

// AssessmentHandler handles assessment wizard endpoints
type AssessmentHandler struct {
	wizardSvc *service.WizardService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(wizardSvc *service.WizardService) *AssessmentHandler {
	return &AssessmentHandler{wizardSvc: wizardSvc}
}

// CreateRequest is the request body for starting an assessment
type CreateRequest struct {
	Locale string `json:"locale"`
}

// Create handles POST /v1/assessments
func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}
	locale := string(taxonomy.ParseLocale(req.Locale))

	view, err := h.wizardSvc.Start(r.Context(), middleware.GetUserID(r.Context()), locale)
	if err != nil {
		writeWizardError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/assessments/{id}
func (h *AssessmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Patch handles PATCH /v1/assessments/{id}
func (h *AssessmentHandler) Patch(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	var patch service.InputPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.wizardSvc.UpdateInput(r.Context(), mux.Vars(r)["id"], &patch)
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// ToggleRequest is the request body for toggling an array field value
type ToggleRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Toggle handles POST /v1/assessments/{id}/toggle
func (h *AssessmentHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	var req ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Field == "" || req.Value == "" {
		writeError(w, http.StatusBadRequest, "field and value are required")
		return
	}

	view, err := h.wizardSvc.Toggle(r.Context(), mux.Vars(r)["id"], req.Field, req.Value)
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Next handles POST /v1/assessments/{id}/next
func (h *AssessmentHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.wizardSvc.Next)
}

// Previous handles POST /v1/assessments/{id}/previous
func (h *AssessmentHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.step(w, r, h.wizardSvc.Previous)
}

func (h *AssessmentHandler) step(w http.ResponseWriter, r *http.Request, move func(ctx context.Context, id string) (*service.SessionView, error)) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	view, err := move(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Abandon handles DELETE /v1/assessments/{id}
func (h *AssessmentHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	if err := h.wizardSvc.Abandon(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "abandoned"})
}

// Submit handles POST /v1/assessments/{id}/submit
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.loadOwned(w, r); !ok {
		return
	}

	result, err := h.wizardSvc.Submit(r.Context(), mux.Vars(r)["id"], middleware.GetToken(r.Context()))
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Results handles GET /v1/assessments/{id}/results
func (h *AssessmentHandler) Results(w http.ResponseWriter, r *http.Request) {
	view, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	result, err := h.wizardSvc.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeWizardError(w, err)
		return
	}

	locale := taxonomy.ParseLocale(r.URL.Query().Get("locale"))
	if r.URL.Query().Get("locale") == "" {
		locale = taxonomy.ParseLocale(view.Session.Locale)
	}
	authed := middleware.GetUserID(r.Context()) != ""

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assessmentId": view.Session.ID,
		"sections":     render.BuildView(result, authed, locale),
	})
}

// History handles GET /v1/assessments
func (h *AssessmentHandler) History(w http.ResponseWriter, r *http.Request) {
	records, err := h.wizardSvc.History(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": records})
}

// HistoryRecord handles GET /v1/assessments/{id}/record
func (h *AssessmentHandler) HistoryRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.wizardSvc.HistoryRecord(r.Context(), middleware.GetUserID(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeWizardError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

// loadOwned loads the session and enforces that sessions started by a signed
// in user are only visible to that user. Anonymous sessions are open to
// whoever holds the ID.
func (h *AssessmentHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*service.SessionView, bool) {
	view, err := h.wizardSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeWizardError(w, err)
		return nil, false
	}
	if view.Session.UserID != "" && view.Session.UserID != middleware.GetUserID(r.Context()) {
		writeError(w, http.StatusForbidden, "assessment belongs to another user")
		return nil, false
	}
	return view, true
}

func writeWizardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrResultNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotEditable), errors.Is(err, service.ErrNotReady):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrUnknownField):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAssessmentFailed):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
