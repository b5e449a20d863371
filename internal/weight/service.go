package weight

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nutrilog/nutrilog/internal/api/models"
)

// Validation bounds, shared with the profile package's weight field.
const (
	MinWeightKg = 30
	MaxWeightKg = 300
)

// MaxNoteLength bounds the optional note attached to a measurement.
const MaxNoteLength = 500

// trendEpsilon is the kg difference below which two consecutive
// measurements count as stable.
const trendEpsilon = 0.05

// Service provides weight series operations.
type Service struct {
	repo Repository
}

// NewService creates a new weight service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add records a weight measurement for a user.
func (s *Service) Add(ctx context.Context, userID string, input *models.AddWeightRequest) (*models.WeightEntry, error) {
	if fieldErrors := s.validateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	entry := &Entry{
		ID:        "wt_" + uuid.New().String()[:22],
		UserID:    userID,
		Date:      input.Date.Time(),
		WeightKg:  input.WeightKg,
		Note:      input.Note,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Add(ctx, entry); err != nil {
		return nil, err
	}

	result := s.toAPIEntry(entry)
	return &result, nil
}

// History returns the user's full weight series, oldest first.
func (s *Service) History(ctx context.Context, userID string) (*models.WeightHistory, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.WeightEntry, 0, len(entries))
	for _, e := range entries {
		items = append(items, s.toAPIEntry(e))
	}
	return &models.WeightHistory{Entries: items}, nil
}

// Delete removes one measurement from the user's series.
func (s *Service) Delete(ctx context.Context, userID, entryID string) error {
	return s.repo.Delete(ctx, userID, entryID)
}

// Stats summarizes the user's weight series. An empty series yields a zeroed
// summary with a stable trend rather than an error.
func (s *Service) Stats(ctx context.Context, userID string) (*models.WeightStats, error) {
	entries, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &models.WeightStats{Trend: TrendStable}
	if len(entries) == 0 {
		return stats, nil
	}

	first := entries[0].WeightKg
	last := entries[len(entries)-1].WeightKg

	minW, maxW, sum := first, first, 0.0
	for _, e := range entries {
		minW = math.Min(minW, e.WeightKg)
		maxW = math.Max(maxW, e.WeightKg)
		sum += e.WeightKg
	}

	stats.Current = last
	stats.Min = minW
	stats.Max = maxW
	stats.Avg = round1(sum / float64(len(entries)))
	stats.DeltaSinceFirst = round1(last - first)
	stats.Entries = len(entries)

	if len(entries) >= 2 {
		prev := entries[len(entries)-2].WeightKg
		switch {
		case last-prev > trendEpsilon:
			stats.Trend = TrendGaining
		case prev-last > trendEpsilon:
			stats.Trend = TrendLosing
		}
	}

	return stats, nil
}

// validateInput validates an add-weight payload.
func (s *Service) validateInput(input *models.AddWeightRequest) []models.FieldError {
	var errs []models.FieldError

	if input.Date.Time().IsZero() {
		errs = append(errs, models.FieldError{Field: "date", Message: "is required"})
	}

	if input.WeightKg < MinWeightKg || input.WeightKg > MaxWeightKg {
		errs = append(errs, models.FieldError{
			Field:   "weightKg",
			Message: fmt.Sprintf("must be between %d and %d", MinWeightKg, MaxWeightKg),
		})
	}

	if input.Note != nil && len(*input.Note) > MaxNoteLength {
		errs = append(errs, models.FieldError{Field: "note", Message: "must be at most 500 characters"})
	}

	return errs
}

// toAPIEntry converts a domain Entry to an API WeightEntry.
func (s *Service) toAPIEntry(e *Entry) models.WeightEntry {
	return models.WeightEntry{
		ID:        e.ID,
		Date:      models.Date(e.Date),
		WeightKg:  e.WeightKg,
		Note:      e.Note,
		CreatedAt: models.Timestamp(e.CreatedAt),
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
