package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"endoguard/internal/cache"
	"endoguard/internal/model"
	"endoguard/internal/repository"
	"endoguard/internal/scoring"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("assessment session not found")
	ErrResultNotFound  = errors.New("assessment result not found")
	ErrRecordNotFound  = errors.New("assessment record not found")
	ErrNotEditable     = errors.New("assessment is no longer editable")
	ErrNotReady        = errors.New("assessment is not ready for submission")
	ErrUnknownField    = errors.New("unknown toggle field")
)

// Assessor produces a result for a frozen assessment input
type Assessor interface {
	Assess(ctx context.Context, in *model.AssessmentInput, severity int, bearer string) (*model.AssessmentResult, error)
}

// WizardService owns the assessment wizard lifecycle. Session state lives in
// Redis; each session has exactly one editor, so mutations are simple
// load-modify-save cycles.
type WizardService struct {
	sessions  cache.SessionCache
	results   cache.ResultCache
	repo      repository.AssessmentRepo
	assessor  Assessor
	analytics *AnalyticsService
}

// NewWizardService creates a new wizard service
func NewWizardService(
	sessions cache.SessionCache,
	results cache.ResultCache,
	repo repository.AssessmentRepo,
	assessor Assessor,
	analytics *AnalyticsService,
) *WizardService {
	return &WizardService{
		sessions:  sessions,
		results:   results,
		repo:      repo,
		assessor:  assessor,
		analytics: analytics,
	}
}

// InputPatch carries partial input updates. Only non-nil fields are applied.
type InputPatch struct {
	Age             *int                   `json:"age,omitempty"`
	BiologicalSex   *model.BiologicalSex   `json:"biologicalSex,omitempty"`
	MenstrualStatus *model.MenstrualStatus `json:"menstrualStatus,omitempty"`
	HeightCm        *float64               `json:"heightCm,omitempty"`
	WeightKg        *float64               `json:"weightKg,omitempty"`

	SymptomDuration *model.SymptomDuration `json:"symptomDuration,omitempty"`

	DietQuality       *model.OrdinalQuality    `json:"dietQuality,omitempty"`
	ExerciseFrequency *model.ExerciseFrequency `json:"exerciseFrequency,omitempty"`
	SleepQuality      *model.OrdinalQuality    `json:"sleepQuality,omitempty"`
	StressLevel       *int                     `json:"stressLevel,omitempty"`

	PlasticUseFrequency    *model.PlasticUse    `json:"plasticUseFrequency,omitempty"`
	ProcessedFoodFrequency *model.ProcessedFood `json:"processedFoodFrequency,omitempty"`
	WaterSource            *model.WaterSource   `json:"waterSource,omitempty"`
	OccupationalExposure   *bool                `json:"occupationalExposure,omitempty"`

	ExistingConditions *string `json:"existingConditions,omitempty"`
	Medications        *string `json:"medications,omitempty"`
	Supplements        *string `json:"supplements,omitempty"`
}

// SessionView is a session together with its live severity preview
type SessionView struct {
	Session   *model.AssessmentSession `json:"session"`
	Severity  int                      `json:"severity"`
	Breakdown scoring.Breakdown        `json:"breakdown"`
}

func viewOf(session *model.AssessmentSession) *SessionView {
	return &SessionView{
		Session:   session,
		Severity:  scoring.ComputeSeverity(&session.Input),
		Breakdown: scoring.Score(&session.Input),
	}
}

// Start creates a new wizard session. userID is empty for anonymous users.
func (s *WizardService) Start(ctx context.Context, userID, locale string) (*SessionView, error) {
	session := &model.AssessmentSession{
		ID:        "a_" + uuid.New().String()[:8],
		UserID:    userID,
		Locale:    locale,
		Step:      model.MinStep,
		Status:    model.WizardEditing,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	if s.analytics != nil {
		s.analytics.Track(ctx, "web", "assessment_started", nil)
	}
	return viewOf(session), nil
}

// Get loads a session by ID
func (s *WizardService) Get(ctx context.Context, id string) (*SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

func (s *WizardService) load(ctx context.Context, id string) (*model.AssessmentSession, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// UpdateInput applies a partial update to the session input
func (s *WizardService) UpdateInput(ctx context.Context, id string, patch *InputPatch) (*SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != model.WizardEditing {
		return nil, ErrNotEditable
	}

	applyPatch(session, patch)

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

func applyPatch(session *model.AssessmentSession, patch *InputPatch) {
	in := &session.Input

	if patch.Age != nil {
		in.Age = *patch.Age
	}
	if patch.BiologicalSex != nil {
		session.SetBiologicalSex(*patch.BiologicalSex)
	}
	if patch.MenstrualStatus != nil && in.BiologicalSex == model.SexFemale {
		in.MenstrualStatus = *patch.MenstrualStatus
	}
	if patch.HeightCm != nil {
		in.HeightCm = *patch.HeightCm
	}
	if patch.WeightKg != nil {
		in.WeightKg = *patch.WeightKg
	}
	if patch.SymptomDuration != nil {
		in.SymptomDuration = *patch.SymptomDuration
	}
	if patch.DietQuality != nil {
		in.DietQuality = *patch.DietQuality
	}
	if patch.ExerciseFrequency != nil {
		in.ExerciseFrequency = *patch.ExerciseFrequency
	}
	if patch.SleepQuality != nil {
		in.SleepQuality = *patch.SleepQuality
	}
	if patch.StressLevel != nil {
		level := *patch.StressLevel
		if level < 1 {
			level = 1
		}
		if level > 10 {
			level = 10
		}
		in.StressLevel = level
	}
	if patch.PlasticUseFrequency != nil {
		in.PlasticUseFrequency = *patch.PlasticUseFrequency
	}
	if patch.ProcessedFoodFrequency != nil {
		in.ProcessedFoodFrequency = *patch.ProcessedFoodFrequency
	}
	if patch.WaterSource != nil {
		in.WaterSource = *patch.WaterSource
	}
	if patch.OccupationalExposure != nil {
		in.OccupationalExposure = *patch.OccupationalExposure
	}
	if patch.ExistingConditions != nil {
		in.ExistingConditions = *patch.ExistingConditions
	}
	if patch.Medications != nil {
		in.Medications = *patch.Medications
	}
	if patch.Supplements != nil {
		in.Supplements = *patch.Supplements
	}
}

// Toggle flips membership of value in an array-valued field
func (s *WizardService) Toggle(ctx context.Context, id, field, value string) (*SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != model.WizardEditing {
		return nil, ErrNotEditable
	}
	if !session.ToggleArrayField(field, value) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

// Next advances the wizard one step
func (s *WizardService) Next(ctx context.Context, id string) (*SessionView, error) {
	return s.move(ctx, id, (*model.AssessmentSession).Advance)
}

// Previous moves the wizard back one step
func (s *WizardService) Previous(ctx context.Context, id string) (*SessionView, error) {
	return s.move(ctx, id, (*model.AssessmentSession).Retreat)
}

func (s *WizardService) move(ctx context.Context, id string, step func(*model.AssessmentSession)) (*SessionView, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != model.WizardEditing {
		return nil, ErrNotEditable
	}
	step(session)
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

// Submit freezes the input, runs the risk assessment and stores the result.
// Submission is all-or-nothing: on any assessor failure the session returns
// to the editing state untouched so the user can retry.
func (s *WizardService) Submit(ctx context.Context, id, bearer string) (*model.AssessmentResult, error) {
	session, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != model.WizardEditing || session.Step != model.MaxStep {
		return nil, ErrNotReady
	}

	session.Status = model.WizardSubmitting
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}

	severity := scoring.ComputeSeverity(&session.Input)
	result, err := s.assessor.Assess(ctx, &session.Input, severity, bearer)
	if err != nil {
		session.Status = model.WizardEditing
		if saveErr := s.sessions.Set(ctx, session); saveErr != nil {
			log.Printf("wizard: failed to restore session %s after assess error: %v", id, saveErr)
		}
		return nil, err
	}

	session.Status = model.WizardCompleted
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	if err := s.results.Set(ctx, id, result); err != nil {
		return nil, err
	}

	if session.UserID != "" && s.repo != nil {
		record := &model.AssessmentRecord{
			UserID:          session.UserID,
			Input:           session.Input,
			SymptomSeverity: severity,
			Result:          *result,
			CompletedAt:     result.GeneratedAt,
		}
		if _, err := s.repo.Save(ctx, record); err != nil {
			log.Printf("wizard: failed to persist assessment %s: %v", id, err)
		}
	}

	if s.analytics != nil {
		s.analytics.Track(ctx, "web", "assessment_completed", map[string]string{
			"riskLevel": string(result.OverallRisk.Level),
		})
	}

	return result, nil
}

// Result returns the completed result for a session
func (s *WizardService) Result(ctx context.Context, id string) (*model.AssessmentResult, error) {
	result, err := s.results.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, ErrResultNotFound
	}
	return result, nil
}

// Abandon discards an in-progress session. A submission in flight cannot be
// abandoned out from under the assessor.
func (s *WizardService) Abandon(ctx context.Context, id string) error {
	session, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if session.Status == model.WizardSubmitting {
		return ErrNotEditable
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return err
	}

	if s.analytics != nil {
		s.analytics.Track(ctx, "web", "assessment_abandoned", nil)
	}
	return nil
}

// History lists a user's persisted assessments, newest first
func (s *WizardService) History(ctx context.Context, userID string) ([]*model.AssessmentRecord, error) {
	return s.repo.ListByUserID(ctx, userID)
}

// HistoryRecord fetches one persisted assessment. Records belonging to other
// users are indistinguishable from missing ones.
func (s *WizardService) HistoryRecord(ctx context.Context, userID, recordID string) (*model.AssessmentRecord, error) {
	record, err := s.repo.GetByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, ErrRecordNotFound
	}
	return record, nil
}
