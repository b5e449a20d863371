package profile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/profile"
)

func validInput() *models.ProfileUpsertRequest {
	return &models.ProfileUpsertRequest{
		Name:             "Giulia",
		Age:              34,
		Gender:           "female",
		HeightCm:         165,
		WeightKg:         60,
		Goal:             "maintain",
		ActivityLevel:    "sedentary",
		DietStyle:        "omnivore",
		WeightChangeRate: "moderate",
	}
}

func TestService_Upsert(t *testing.T) {
	repo := profile.NewInMemoryRepository()
	service := profile.NewService(repo)
	ctx := context.Background()

	result, err := service.Upsert(ctx, "user123", validInput())
	if err != nil {
		t.Fatalf("failed to upsert profile: %v", err)
	}

	if result.Name != "Giulia" {
		t.Errorf("expected name %q, got %q", "Giulia", result.Name)
	}
	if result.CreatedAt.Time().IsZero() {
		t.Error("expected createdAt to be set")
	}
}

func TestService_Upsert_PreservesCreatedAt(t *testing.T) {
	repo := profile.NewInMemoryRepository()
	service := profile.NewService(repo)
	ctx := context.Background()

	first, err := service.Upsert(ctx, "user123", validInput())
	if err != nil {
		t.Fatalf("failed to upsert profile: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	input := validInput()
	input.WeightKg = 58
	second, err := service.Upsert(ctx, "user123", input)
	if err != nil {
		t.Fatalf("failed to upsert profile again: %v", err)
	}

	if !second.CreatedAt.Time().Equal(first.CreatedAt.Time()) {
		t.Error("expected createdAt to survive replacement")
	}
	if !second.UpdatedAt.Time().After(first.UpdatedAt.Time()) {
		t.Error("expected updatedAt to advance on replacement")
	}
	if second.WeightKg != 58 {
		t.Errorf("expected weight 58, got %v", second.WeightKg)
	}
}

func TestService_Upsert_ValidationErrors(t *testing.T) {
	repo := profile.NewInMemoryRepository()
	service := profile.NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*models.ProfileUpsertRequest)
		wantField string
	}{
		{"empty name", func(in *models.ProfileUpsertRequest) { in.Name = "" }, "name"},
		{"age too low", func(in *models.ProfileUpsertRequest) { in.Age = 9 }, "age"},
		{"age too high", func(in *models.ProfileUpsertRequest) { in.Age = 121 }, "age"},
		{"height too low", func(in *models.ProfileUpsertRequest) { in.HeightCm = 99 }, "heightCm"},
		{"height too high", func(in *models.ProfileUpsertRequest) { in.HeightCm = 251 }, "heightCm"},
		{"weight too low", func(in *models.ProfileUpsertRequest) { in.WeightKg = 29 }, "weightKg"},
		{"weight too high", func(in *models.ProfileUpsertRequest) { in.WeightKg = 301 }, "weightKg"},
		{"bad gender", func(in *models.ProfileUpsertRequest) { in.Gender = "robot" }, "gender"},
		{"bad goal", func(in *models.ProfileUpsertRequest) { in.Goal = "bulk" }, "goal"},
		{"bad activity level", func(in *models.ProfileUpsertRequest) { in.ActivityLevel = "couch" }, "activityLevel"},
		{"bad diet style", func(in *models.ProfileUpsertRequest) { in.DietStyle = "carnivore" }, "dietStyle"},
		{"bad rate", func(in *models.ProfileUpsertRequest) { in.WeightChangeRate = "extreme" }, "weightChangeRate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			_, err := service.Upsert(ctx, "user123", input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var vErr *profile.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}

			found := false
			for _, fe := range vErr.Errors {
				if fe.Field == tt.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected field error on %q, got %v", tt.wantField, vErr.Errors)
			}
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	repo := profile.NewInMemoryRepository()
	service := profile.NewService(repo)

	_, err := service.Get(context.Background(), "nobody")
	if !errors.Is(err, profile.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestService_Metrics(t *testing.T) {
	repo := profile.NewInMemoryRepository()
	service := profile.NewService(repo)
	ctx := context.Background()

	if _, err := service.Upsert(ctx, "user123", validInput()); err != nil {
		t.Fatalf("failed to upsert profile: %v", err)
	}

	metrics, err := service.Metrics(ctx, "user123")
	if err != nil {
		t.Fatalf("failed to compute metrics: %v", err)
	}

	// 60 kg at 1.65 m: BMI 22.04, below the female threshold, so the goal is
	// round(60*31 - 150) = 1710.
	if metrics.BMI != 22.04 {
		t.Errorf("expected BMI 22.04, got %v", metrics.BMI)
	}
	if metrics.BMICategory.Code != "normal" {
		t.Errorf("expected normal BMI category, got %q", metrics.BMICategory.Code)
	}
	if metrics.DailyCalorieGoal != 1710 {
		t.Errorf("expected calorie goal 1710, got %d", metrics.DailyCalorieGoal)
	}
	if metrics.TargetKgPerWeek != 0.5 {
		t.Errorf("expected 0.5 kg/week, got %v", metrics.TargetKgPerWeek)
	}
	if metrics.DailyCalorieDelta != 550 {
		t.Errorf("expected 550 kcal delta, got %d", metrics.DailyCalorieDelta)
	}
}
