package diary

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/nutrition"
	"github.com/nutrilog/nutrilog/internal/profile"
	"github.com/nutrilog/nutrilog/internal/reference"
	"github.com/nutrilog/nutrilog/internal/weight"
)

// Validation bounds for diary writes.
const (
	MinGrams   = 1
	MaxGrams   = 5000
	MinMinutes = 1
	MaxMinutes = 1440
)

// maxRangeDays caps range and stats queries to keep projections bounded.
const maxRangeDays = 92

// ProfileSource is the slice of the profile layer the diary needs: the
// current physiology for goal, BMI and burn computations.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (*profile.Profile, error)
}

// WeightSource is the slice of the weight layer the diary needs for period
// statistics.
type WeightSource interface {
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*weight.Entry, error)
}

// Service provides diary operations: logging food and activities, the daily
// dashboard projection, range views and period statistics.
type Service struct {
	repo       Repository
	foods      *reference.FoodCatalog
	activities *reference.ActivityCatalog
	profiles   ProfileSource
	weights    WeightSource
}

// NewService creates a new diary service.
func NewService(repo Repository, foods *reference.FoodCatalog, activities *reference.ActivityCatalog, profiles ProfileSource, weights WeightSource) *Service {
	return &Service{
		repo:       repo,
		foods:      foods,
		activities: activities,
		profiles:   profiles,
		weights:    weights,
	}
}

// AddFood logs a food item into the given slot. The item's nutrient totals
// are computed here, once, from the reference entry scaled by quantity.
// Logging the same food twice yields two independent items.
func (s *Service) AddFood(ctx context.Context, userID string, date models.Date, mealType MealType, input *models.AddFoodRequest) (*models.FoodItem, error) {
	var fieldErrors []models.FieldError
	if input.FoodName == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "foodName", Message: "is required"})
	}
	if input.Grams < MinGrams || input.Grams > MaxGrams {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "grams",
			Message: fmt.Sprintf("must be between %d and %d", MinGrams, MaxGrams),
		})
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	entry, err := s.foods.GetByName(input.FoodName)
	if err != nil {
		return nil, err
	}

	scale := input.Grams / 100
	item := &FoodItem{
		ID:        "fd_" + uuid.New().String()[:22],
		FoodName:  entry.Name,
		Grams:     input.Grams,
		Calories:  int(math.Round(entry.Calories * scale)),
		Protein:   round1(entry.Protein * scale),
		Fat:       round1(entry.Fat * scale),
		Carbs:     round1(entry.Carbs * scale),
		CreatedAt: time.Now(),
	}

	if err := s.repo.AddFoodItem(ctx, userID, date.Time(), mealType, item); err != nil {
		return nil, err
	}

	result := toAPIFoodItem(item)
	return &result, nil
}

// RemoveFood removes one item from a slot. Removing the slot's last item
// removes the meal itself.
func (s *Service) RemoveFood(ctx context.Context, userID string, date models.Date, mealType MealType, itemID string) error {
	return s.repo.RemoveFoodItem(ctx, userID, date.Time(), mealType, itemID)
}

// AddActivity logs a physical activity. The burn is computed here from the
// reference MET and the user's current profile weight, so the profile must
// exist before activities can be logged.
func (s *Service) AddActivity(ctx context.Context, userID string, date models.Date, input *models.AddActivityRequest) (*models.PhysicalActivity, error) {
	var fieldErrors []models.FieldError
	if input.ActivityName == "" {
		fieldErrors = append(fieldErrors, models.FieldError{Field: "activityName", Message: "is required"})
	}
	if input.Minutes < MinMinutes || input.Minutes > MaxMinutes {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "minutes",
			Message: fmt.Sprintf("must be between %d and %d", MinMinutes, MaxMinutes),
		})
	}
	if len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	entry, err := s.activities.GetByName(input.ActivityName)
	if err != nil {
		return nil, err
	}

	prof, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity := &Activity{
		ID:             "act_" + uuid.New().String()[:22],
		ActivityName:   entry.Name,
		Date:           date.Time(),
		Minutes:        input.Minutes,
		CaloriesBurned: nutrition.ActivityCalories(entry.MET, prof.WeightKg, input.Minutes),
		CreatedAt:      time.Now(),
	}

	if err := s.repo.AddActivity(ctx, userID, activity); err != nil {
		return nil, err
	}

	result := toAPIActivity(activity)
	return &result, nil
}

// RemoveActivity removes one logged activity from its date.
func (s *Service) RemoveActivity(ctx context.Context, userID string, date models.Date, activityID string) error {
	return s.repo.RemoveActivity(ctx, userID, date.Time(), activityID)
}

// DailyDiary builds the dashboard projection for one date. A date with no
// entries yields an empty diary, and a missing profile degrades the goal and
// BMI to zero rather than failing the read.
func (s *Service) DailyDiary(ctx context.Context, userID string, date models.Date) (*models.DailyDiary, error) {
	meals, err := s.repo.MealsForDate(ctx, userID, date.Time())
	if err != nil {
		return nil, err
	}
	activities, err := s.repo.ActivitiesForDate(ctx, userID, date.Time())
	if err != nil {
		return nil, err
	}

	prof, err := s.lookupProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	day := buildDay(date, meals, activities, prof)
	return &day, nil
}

// RangeDiary builds one projection per date in the inclusive [from, to]
// range, including dates without entries.
func (s *Service) RangeDiary(ctx context.Context, userID string, from, to models.Date) (*models.RangeDiary, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	mealsByDate, err := s.repo.MealsForRange(ctx, userID, from.Time(), to.Time())
	if err != nil {
		return nil, err
	}
	activitiesByDate, err := s.repo.ActivitiesForRange(ctx, userID, from.Time(), to.Time())
	if err != nil {
		return nil, err
	}

	prof, err := s.lookupProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &models.RangeDiary{From: from, To: to, Days: []models.DailyDiary{}}
	for day := from.Time(); !day.After(to.Time()); day = day.AddDate(0, 0, 1) {
		key := DateKey(day)
		result.Days = append(result.Days, buildDay(models.Date(day), mealsByDate[key], activitiesByDate[key], prof))
	}
	return result, nil
}

// PeriodStats folds the per-day totals of the inclusive [from, to] range
// into period summaries. Only dates with at least one meal or activity count
// toward the diary summaries; the weight summary covers the measurements
// dated within the range. An empty or inverted range yields zeroed stats.
func (s *Service) PeriodStats(ctx context.Context, userID string, from, to models.Date) (*models.PeriodStats, error) {
	stats := &models.PeriodStats{From: from, To: to}
	if to.Time().Before(from.Time()) {
		return stats, nil
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	mealsByDate, err := s.repo.MealsForRange(ctx, userID, from.Time(), to.Time())
	if err != nil {
		return nil, err
	}
	activitiesByDate, err := s.repo.ActivitiesForRange(ctx, userID, from.Time(), to.Time())
	if err != nil {
		return nil, err
	}

	var calories, protein, fat, carbs, burned []float64
	for day := from.Time(); !day.After(to.Time()); day = day.AddDate(0, 0, 1) {
		key := DateKey(day)
		meals, activities := mealsByDate[key], activitiesByDate[key]
		if len(meals) == 0 && len(activities) == 0 {
			continue
		}

		var dayCalories int
		var dayProtein, dayFat, dayCarbs float64
		for _, meal := range meals {
			c, p, f, cb := meal.Totals()
			dayCalories += c
			dayProtein += p
			dayFat += f
			dayCarbs += cb
		}
		var dayBurned int
		for _, a := range activities {
			dayBurned += a.CaloriesBurned
		}

		calories = append(calories, float64(dayCalories))
		protein = append(protein, dayProtein)
		fat = append(fat, dayFat)
		carbs = append(carbs, dayCarbs)
		burned = append(burned, float64(dayBurned))
	}

	stats.DaysWithData = len(calories)
	stats.Calories = summarize(calories)
	stats.Protein = summarize(protein)
	stats.Fat = summarize(fat)
	stats.Carbs = summarize(carbs)
	stats.BurnedCalories = summarize(burned)

	entries, err := s.weights.ListRange(ctx, userID, from.Time(), to.Time())
	if err != nil {
		return nil, err
	}
	weights := make([]float64, 0, len(entries))
	for _, e := range entries {
		weights = append(weights, e.WeightKg)
	}
	stats.Weight = summarize(weights)

	return stats, nil
}

// CopyMeals duplicates every meal of the source date onto the target date.
// Copied items get fresh identities and the copy appends: items already on
// the target stay. Activities are never copied. Returns the target's
// projection after the copy.
func (s *Service) CopyMeals(ctx context.Context, userID string, source models.Date, input *models.CopyMealsRequest) (*models.DailyDiary, error) {
	target := input.TargetDate
	if target.Time().IsZero() {
		return nil, &ValidationError{Errors: []models.FieldError{
			{Field: "targetDate", Message: "is required"},
		}}
	}
	if target.Time().Equal(source.Time()) {
		return nil, &ValidationError{Errors: []models.FieldError{
			{Field: "targetDate", Message: "must differ from the source date"},
		}}
	}

	meals, err := s.repo.MealsForDate(ctx, userID, source.Time())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for _, meal := range meals {
		for _, item := range meal.Items {
			copied := *item
			copied.ID = "fd_" + uuid.New().String()[:22]
			copied.CreatedAt = now
			if err := s.repo.AddFoodItem(ctx, userID, target.Time(), meal.Type, &copied); err != nil {
				return nil, err
			}
		}
	}

	return s.DailyDiary(ctx, userID, target)
}

// lookupProfile fetches the profile for read projections, treating a missing
// profile as nil rather than an error.
func (s *Service) lookupProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	prof, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return prof, nil
}

// buildDay assembles one date's projection from its meals, activities and
// the user's profile. A nil profile zeroes the goal and BMI.
func buildDay(date models.Date, meals []*Meal, activities []*Activity, prof *profile.Profile) models.DailyDiary {
	day := models.DailyDiary{
		Date:       date,
		Meals:      []models.Meal{},
		Activities: []models.PhysicalActivity{},
	}

	for _, meal := range meals {
		calories, protein, fat, carbs := meal.Totals()
		apiMeal := models.Meal{
			Type:     string(meal.Type),
			Calories: calories,
			Protein:  round1(protein),
			Fat:      round1(fat),
			Carbs:    round1(carbs),
			Items:    make([]models.FoodItem, 0, len(meal.Items)),
		}
		for _, item := range meal.Items {
			apiMeal.Items = append(apiMeal.Items, toAPIFoodItem(item))
		}
		day.Meals = append(day.Meals, apiMeal)

		day.ConsumedCalories += calories
		day.Protein += protein
		day.Fat += fat
		day.Carbs += carbs
	}
	day.Protein = round1(day.Protein)
	day.Fat = round1(day.Fat)
	day.Carbs = round1(day.Carbs)

	for _, a := range activities {
		day.Activities = append(day.Activities, toAPIActivity(a))
		day.BurnedCalories += a.CaloriesBurned
	}

	if prof != nil {
		day.CalorieGoal = prof.DailyCalorieGoal()
		day.BMI = round2(prof.BMI())
	}
	day.Remaining = day.CalorieGoal - day.ConsumedCalories + day.BurnedCalories

	return day
}

// validateRange rejects inverted or oversized date ranges.
func validateRange(from, to models.Date) error {
	if from.Time().IsZero() || to.Time().IsZero() {
		return &ValidationError{Errors: []models.FieldError{
			{Field: "from", Message: "from and to are required"},
		}}
	}
	if days := int(to.Time().Sub(from.Time()).Hours()/24) + 1; days > maxRangeDays {
		return &ValidationError{Errors: []models.FieldError{
			{Field: "to", Message: fmt.Sprintf("range must not exceed %d days", maxRangeDays)},
		}}
	}
	return nil
}

// summarize folds a series into total, average and extremes. An empty series
// yields a zeroed summary.
func summarize(values []float64) models.StatSummary {
	if len(values) == 0 {
		return models.StatSummary{}
	}

	minV, maxV, sum := values[0], values[0], 0.0
	for _, v := range values {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
		sum += v
	}
	return models.StatSummary{
		Total: round1(sum),
		Avg:   round1(sum / float64(len(values))),
		Min:   round1(minV),
		Max:   round1(maxV),
	}
}

func toAPIFoodItem(item *FoodItem) models.FoodItem {
	return models.FoodItem{
		ID:        item.ID,
		FoodName:  item.FoodName,
		Grams:     item.Grams,
		Calories:  item.Calories,
		Protein:   item.Protein,
		Fat:       item.Fat,
		Carbs:     item.Carbs,
		CreatedAt: models.Timestamp(item.CreatedAt),
	}
}

func toAPIActivity(a *Activity) models.PhysicalActivity {
	return models.PhysicalActivity{
		ID:             a.ID,
		ActivityName:   a.ActivityName,
		Minutes:        a.Minutes,
		CaloriesBurned: a.CaloriesBurned,
		CreatedAt:      models.Timestamp(a.CreatedAt),
	}
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
