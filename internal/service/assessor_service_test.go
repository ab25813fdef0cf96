package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"endoguard/internal/config"
	"endoguard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInput() *model.AssessmentInput {
	return &model.AssessmentInput{
		Age:                    34,
		BiologicalSex:          model.SexFemale,
		Symptoms:               []string{"fatigue", "weight_gain", "brain_fog", "anxiety", "hair_thinning"},
		SymptomDuration:        model.Duration6To12Months,
		DietQuality:            model.QualityFair,
		ExerciseFrequency:      model.ExerciseOccasional,
		SleepQuality:           model.QualityPoor,
		StressLevel:            7,
		PlasticUseFrequency:    model.PlasticModerate,
		ProcessedFoodFrequency: model.ProcessedSeveralTimesWeek,
		WaterSource:            model.WaterTapUnfiltered,
		OccupationalExposure:   false,
	}
}

func TestAssessFallsBackToLocalEngineWhenDisabled(t *testing.T) {
	svc := NewAssessorService(&config.AssessorConfig{TimeoutMS: 1000})

	result, err := svc.Assess(context.Background(), referenceInput(), 7, "")
	require.NoError(t, err)

	assert.Equal(t, 7, result.HormoneHealth.SymptomSeverity)
	assert.Equal(t, 5, result.HormoneHealth.SymptomCount)
	assert.Equal(t, model.SectionAbsent, result.AIInsights.State)
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.NextSteps)
}

func TestLocalEngineIsDeterministic(t *testing.T) {
	svc := NewAssessorService(&config.AssessorConfig{TimeoutMS: 1000})

	first, err := svc.Assess(context.Background(), referenceInput(), 7, "")
	require.NoError(t, err)
	second, err := svc.Assess(context.Background(), referenceInput(), 7, "")
	require.NoError(t, err)

	assert.Equal(t, first.OverallRisk, second.OverallRisk)
	assert.Equal(t, first.EDCExposure, second.EDCExposure)
	assert.Equal(t, first.HormoneHealth, second.HormoneHealth)
}

func TestLocalEngineComputesBMIWhenMeasured(t *testing.T) {
	svc := NewAssessorService(&config.AssessorConfig{TimeoutMS: 1000})

	in := referenceInput()
	in.HeightCm = 170
	in.WeightKg = 65

	result, err := svc.Assess(context.Background(), in, 7, "")
	require.NoError(t, err)
	require.NotNil(t, result.Demographics)
	assert.InDelta(t, 22.5, result.Demographics.BMI, 0.1)
	assert.Equal(t, "Normal", result.Demographics.BMICategory)

	// Without measurements the block is omitted entirely
	result, err = svc.Assess(context.Background(), referenceInput(), 7, "")
	require.NoError(t, err)
	assert.Nil(t, result.Demographics)
}

func TestTierBoundaries(t *testing.T) {
	assert.Equal(t, model.RiskLow, tierFor(0))
	assert.Equal(t, model.RiskLow, tierFor(24))
	assert.Equal(t, model.RiskModerate, tierFor(25))
	assert.Equal(t, model.RiskModerate, tierFor(49))
	assert.Equal(t, model.RiskHigh, tierFor(50))
	assert.Equal(t, model.RiskHigh, tierFor(74))
	assert.Equal(t, model.RiskVeryHigh, tierFor(75))
	assert.Equal(t, model.RiskVeryHigh, tierFor(100))
}

func remoteAssessor(t *testing.T, handler http.HandlerFunc) (*AssessorService, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	svc := NewAssessorService(&config.AssessorConfig{
		BaseURL:   server.URL,
		APIKey:    "test-key",
		TimeoutMS: 2000,
	})
	return svc, server
}

func TestAssessCallsUpstreamWithSeverity(t *testing.T) {
	var captured assessRequest
	var authHeader string

	svc, _ := remoteAssessor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/endoguard/assess", r.URL.Path)
		authHeader = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(assessResponse{
			Success: true,
			Assessment: &wireAssessment{
				OverallRisk: model.OverallRisk{Level: model.RiskHigh, Score: 61},
			},
		})
	})

	result, err := svc.Assess(context.Background(), referenceInput(), 7, "")
	require.NoError(t, err)

	assert.Equal(t, 7, captured.SymptomSeverity)
	assert.Equal(t, 34, captured.Age)
	assert.Equal(t, "Bearer test-key", authHeader)
	assert.Equal(t, model.RiskHigh, result.OverallRisk.Level)
	assert.Equal(t, 61, result.OverallRisk.Score)
}

func TestAssessPrefersUserBearerOverAPIKey(t *testing.T) {
	var authHeader string
	svc, _ := remoteAssessor(t, func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(assessResponse{Success: true, Assessment: &wireAssessment{}})
	})

	_, err := svc.Assess(context.Background(), referenceInput(), 7, "user-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer user-token", authHeader)
}

func TestAssessFailsOnUpstreamError(t *testing.T) {
	svc, _ := remoteAssessor(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := svc.Assess(context.Background(), referenceInput(), 7, "")
	assert.ErrorIs(t, err, ErrAssessmentFailed)
}

func TestAssessFailsOnUnsuccessfulResponse(t *testing.T) {
	svc, _ := remoteAssessor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(assessResponse{Success: false, Error: "model overloaded"})
	})

	_, err := svc.Assess(context.Background(), referenceInput(), 7, "")
	require.ErrorIs(t, err, ErrAssessmentFailed)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestAssessMapsInsightVariants(t *testing.T) {
	cases := []struct {
		name     string
		insights *wireInsights
		state    model.SectionState
	}{
		{"absent", nil, model.SectionAbsent},
		{"errored", &wireInsights{Error: "generation timed out"}, model.SectionErrored},
		{"present", &wireInsights{
			SymptomPattern:              "Pattern consistent with thyroid involvement",
			PersonalizedRecommendations: []string{"Discuss TSH testing"},
			Disclaimer:                  "Educational only",
		}, model.SectionPresent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := remoteAssessor(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(assessResponse{
					Success:    true,
					Assessment: &wireAssessment{AIInsights: tc.insights},
				})
			})

			result, err := svc.Assess(context.Background(), referenceInput(), 7, "")
			require.NoError(t, err)
			assert.Equal(t, tc.state, result.AIInsights.State)

			switch tc.state {
			case model.SectionPresent:
				require.NotNil(t, result.AIInsights.Data)
				assert.NotEmpty(t, result.AIInsights.Data.SymptomPattern)
			case model.SectionErrored:
				assert.Nil(t, result.AIInsights.Data)
				assert.NotEmpty(t, result.AIInsights.Reason)
			case model.SectionAbsent:
				assert.Nil(t, result.AIInsights.Data)
				assert.Empty(t, result.AIInsights.Reason)
			}
		})
	}
}
