package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"endoguard/internal/config"
	"endoguard/internal/model"
)

// ErrAssessmentFailed is returned for any upstream failure. The caller never
// applies a partial response; submission is all-or-nothing and the user may
// simply retry.
var ErrAssessmentFailed = errors.New("risk assessment failed")

// AssessorService produces an AssessmentResult for a frozen input. When an
// upstream assessor is configured it is called over HTTP; otherwise the
// built-in deterministic engine scores the assessment locally.
type AssessorService struct {
	config *config.AssessorConfig
	client *http.Client
}

// NewAssessorService creates a new assessor service
func NewAssessorService(cfg *config.AssessorConfig) *AssessorService {
	return &AssessorService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// assessRequest is the upstream wire format: the flat input plus the locally
// computed severity
type assessRequest struct {
	model.AssessmentInput
	SymptomSeverity int `json:"symptomSeverity"`
}

type wireInsights struct {
	SymptomPattern              string   `json:"symptomPattern"`
	PersonalizedRecommendations []string `json:"personalizedRecommendations"`
	Disclaimer                  string   `json:"disclaimer"`
	Error                       string   `json:"error,omitempty"`
}

type wireAssessment struct {
	OverallRisk         model.OverallRisk      `json:"overallRisk"`
	EDCExposure         model.EDCExposure      `json:"edcExposure"`
	HormoneHealth       model.HormoneHealth    `json:"hormoneHealth"`
	Recommendations     []model.Recommendation `json:"recommendations"`
	TestRecommendations []model.TestPanel      `json:"testRecommendations"`
	NextSteps           []model.ActionStep     `json:"nextSteps"`
	AIInsights          *wireInsights          `json:"aiInsights,omitempty"`
	Demographics        *model.Demographics    `json:"demographics,omitempty"`
}

type assessResponse struct {
	Success    bool            `json:"success"`
	Assessment *wireAssessment `json:"assessment"`
	Error      string          `json:"error,omitempty"`
}

// Assess produces the result for a frozen input. The bearer credential is
// optional; anonymous submissions are permitted.
func (s *AssessorService) Assess(ctx context.Context, in *model.AssessmentInput, severity int, bearer string) (*model.AssessmentResult, error) {
	if !s.config.IsEnabled() {
		return s.localAssess(in, severity), nil
	}

	body, err := json.Marshal(&assessRequest{AssessmentInput: *in, SymptomSeverity: severity})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssessmentFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.AssessEndpoint(), bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssessmentFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearer == "" {
		bearer = s.config.APIKey
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssessmentFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssessmentFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrAssessmentFailed, resp.StatusCode)
	}

	var decoded assessResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssessmentFailed, err)
	}
	if !decoded.Success || decoded.Assessment == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssessmentFailed, decoded.Error)
	}

	return fromWire(decoded.Assessment), nil
}

// fromWire converts the upstream payload into the domain result, mapping the
// optional AI block onto its tagged variant
func fromWire(w *wireAssessment) *model.AssessmentResult {
	result := &model.AssessmentResult{
		OverallRisk:         w.OverallRisk,
		EDCExposure:         w.EDCExposure,
		HormoneHealth:       w.HormoneHealth,
		Recommendations:     w.Recommendations,
		TestRecommendations: w.TestRecommendations,
		NextSteps:           w.NextSteps,
		Demographics:        w.Demographics,
		GeneratedAt:         time.Now(),
	}

	switch {
	case w.AIInsights == nil:
		result.AIInsights = model.AIInsightsSection{State: model.SectionAbsent}
	case w.AIInsights.Error != "":
		result.AIInsights = model.AIInsightsSection{State: model.SectionErrored, Reason: w.AIInsights.Error}
	default:
		result.AIInsights = model.AIInsightsSection{
			State: model.SectionPresent,
			Data: &model.AIInsights{
				SymptomPattern:              w.AIInsights.SymptomPattern,
				PersonalizedRecommendations: w.AIInsights.PersonalizedRecommendations,
				Disclaimer:                  w.AIInsights.Disclaimer,
			},
		}
	}

	return result
}
