package profile

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/nutrition"
)

// MaxNameLength bounds the display name.
const MaxNameLength = 80

// Service provides profile operations.
type Service struct {
	repo Repository
}

// NewService creates a new profile service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get retrieves the profile for a user.
func (s *Service) Get(ctx context.Context, userID string) (*models.Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	result := s.toAPIProfile(p)
	return &result, nil
}

// Upsert creates or replaces the profile for a user. The creation timestamp
// survives replacement; every successful call produces a fresh updatedAt.
func (s *Service) Upsert(ctx context.Context, userID string, input *models.ProfileUpsertRequest) (*models.Profile, error) {
	if fieldErrors := s.validateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	now := time.Now()
	createdAt := now
	if existing, err := s.repo.Get(ctx, userID); err == nil {
		createdAt = existing.CreatedAt
	}

	p := &Profile{
		UserID:           userID,
		Name:             input.Name,
		Age:              input.Age,
		Gender:           nutrition.Gender(input.Gender),
		HeightCm:         input.HeightCm,
		WeightKg:         input.WeightKg,
		Goal:             nutrition.Goal(input.Goal),
		ActivityLevel:    nutrition.ActivityLevel(input.ActivityLevel),
		DietStyle:        DietStyle(input.DietStyle),
		WeightChangeRate: nutrition.WeightChangeRate(input.WeightChangeRate),
		CreatedAt:        createdAt,
		UpdatedAt:        now,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, err
	}

	result := s.toAPIProfile(p)
	return &result, nil
}

// Metrics computes the derived values for a user's profile.
func (s *Service) Metrics(ctx context.Context, userID string) (*models.ProfileMetrics, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	bmi := p.BMI()
	category := nutrition.CategoryForBMI(bmi)

	return &models.ProfileMetrics{
		BMI: math.Round(bmi*100) / 100,
		BMICategory: models.BMICategory{
			Code:        category.Code,
			Label:       category.Label,
			Description: category.Description,
		},
		DailyCalorieGoal:  p.DailyCalorieGoal(),
		WeightChangeRate:  string(p.WeightChangeRate),
		TargetKgPerWeek:   p.WeightChangeRate.KgPerWeek(),
		DailyCalorieDelta: p.WeightChangeRate.DailyCalorieDelta(),
	}, nil
}

// validateInput validates a profile upsert payload field by field.
func (s *Service) validateInput(input *models.ProfileUpsertRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "is required"})
	} else if len(input.Name) > MaxNameLength {
		errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 80 characters"})
	}

	if input.Age < MinAge || input.Age > MaxAge {
		errs = append(errs, models.FieldError{
			Field:   "age",
			Message: fmt.Sprintf("must be between %d and %d", MinAge, MaxAge),
		})
	}

	if input.HeightCm < MinHeightCm || input.HeightCm > MaxHeightCm {
		errs = append(errs, models.FieldError{
			Field:   "heightCm",
			Message: fmt.Sprintf("must be between %d and %d", MinHeightCm, MaxHeightCm),
		})
	}

	if input.WeightKg < MinWeightKg || input.WeightKg > MaxWeightKg {
		errs = append(errs, models.FieldError{
			Field:   "weightKg",
			Message: fmt.Sprintf("must be between %d and %d", MinWeightKg, MaxWeightKg),
		})
	}

	if !validGenders[nutrition.Gender(input.Gender)] {
		errs = append(errs, models.FieldError{Field: "gender", Message: "must be one of male, female, other"})
	}
	if !validGoals[nutrition.Goal(input.Goal)] {
		errs = append(errs, models.FieldError{Field: "goal", Message: "must be one of lose, maintain, gain"})
	}
	if !validActivityLevels[nutrition.ActivityLevel(input.ActivityLevel)] {
		errs = append(errs, models.FieldError{Field: "activityLevel", Message: "must be one of sedentary, active"})
	}
	if !validDietStyles[DietStyle(input.DietStyle)] {
		errs = append(errs, models.FieldError{Field: "dietStyle", Message: "must be one of omnivore, vegetarian, vegan"})
	}
	if !validRates[nutrition.WeightChangeRate(input.WeightChangeRate)] {
		errs = append(errs, models.FieldError{Field: "weightChangeRate", Message: "must be one of slow, moderate, fast, intense"})
	}

	return errs
}

// toAPIProfile converts a domain Profile to an API Profile.
func (s *Service) toAPIProfile(p *Profile) models.Profile {
	return models.Profile{
		Name:             p.Name,
		Age:              p.Age,
		Gender:           string(p.Gender),
		HeightCm:         p.HeightCm,
		WeightKg:         p.WeightKg,
		Goal:             string(p.Goal),
		ActivityLevel:    string(p.ActivityLevel),
		DietStyle:        string(p.DietStyle),
		WeightChangeRate: string(p.WeightChangeRate),
		CreatedAt:        models.Timestamp(p.CreatedAt),
		UpdatedAt:        models.Timestamp(p.UpdatedAt),
	}
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
