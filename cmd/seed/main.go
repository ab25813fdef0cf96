package main

import (
	"context"
	"log"
	"time"

	"endoguard/internal/config"
	"endoguard/internal/model"
	"endoguard/internal/repository"
	"endoguard/internal/scoring"
	"endoguard/internal/service"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds one demo assessment record so the history endpoint has data to show
// on a fresh install.
func main() {
	godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer client.Disconnect(ctx)

	repo := repository.NewAssessmentRepo(client.Database(cfg.MongoDB))

	input := model.AssessmentInput{
		Age:                    34,
		BiologicalSex:          model.SexFemale,
		MenstrualStatus:        model.MenstrualIrregular,
		Symptoms:               []string{"fatigue", "weight_gain", "brain_fog", "anxiety", "hair_thinning"},
		SymptomDuration:        model.Duration6To12Months,
		DietQuality:            model.QualityFair,
		ExerciseFrequency:      model.ExerciseOccasional,
		SleepQuality:           model.QualityPoor,
		StressLevel:            7,
		PlasticUseFrequency:    model.PlasticModerate,
		ProcessedFoodFrequency: model.ProcessedSeveralTimesWeek,
		WaterSource:            model.WaterTapUnfiltered,
	}

	severity := scoring.ComputeSeverity(&input)

	// A disabled assessor always uses the local engine
	assessor := service.NewAssessorService(&config.AssessorConfig{TimeoutMS: 1000})
	result, err := assessor.Assess(ctx, &input, severity, "")
	if err != nil {
		log.Fatal("Failed to build demo result:", err)
	}

	record := &model.AssessmentRecord{
		UserID:          "u_demo0001",
		Input:           input,
		SymptomSeverity: severity,
		Result:          *result,
		CompletedAt:     time.Now(),
	}

	id, err := repo.Save(ctx, record)
	if err != nil {
		log.Fatal("Failed to seed assessment:", err)
	}
	log.Printf("Seeded demo assessment %s (severity %d, risk %s)", id, severity, result.OverallRisk.Level)
}
