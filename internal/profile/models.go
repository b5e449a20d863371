// Package profile provides user profile management: physiology, intent and
// the derived metrics (BMI, daily calorie goal) the rest of the diary
// depends on.
package profile

import (
	"errors"
	"time"

	"github.com/nutrilog/nutrilog/internal/nutrition"
)

// Repository errors.
var (
	ErrProfileNotFound = errors.New("profile not found")
)

// Validation bounds.
const (
	MinAge      = 10
	MaxAge      = 120
	MinHeightCm = 100
	MaxHeightCm = 250
	MinWeightKg = 30
	MaxWeightKg = 300
)

// DietStyle is the user's dietary preference. It filters food suggestions in
// the client; the accounting core carries it through unchanged.
type DietStyle string

// DietStyle values.
const (
	DietOmnivore   DietStyle = "omnivore"
	DietVegetarian DietStyle = "vegetarian"
	DietVegan      DietStyle = "vegan"
)

// Profile holds a user's identity, physiology and intent.
type Profile struct {
	UserID           string
	Name             string
	Age              int
	Gender           nutrition.Gender
	HeightCm         float64
	WeightKg         float64
	Goal             nutrition.Goal
	ActivityLevel    nutrition.ActivityLevel
	DietStyle        DietStyle
	WeightChangeRate nutrition.WeightChangeRate
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HeightM returns the height in meters.
func (p *Profile) HeightM() float64 {
	return p.HeightCm / 100
}

// BMI returns the profile's current body mass index.
func (p *Profile) BMI() float64 {
	return nutrition.BMI(p.WeightKg, p.HeightM())
}

// DailyCalorieGoal returns the profile's daily calorie target in kcal.
func (p *Profile) DailyCalorieGoal() int {
	return nutrition.DailyCalorieGoal(p.Gender, p.ActivityLevel, p.Goal, p.WeightKg, p.HeightM())
}

// validGenders, validGoals etc. are the closed enum domains accepted at the
// boundary.
var (
	validGenders = map[nutrition.Gender]bool{
		nutrition.GenderMale:   true,
		nutrition.GenderFemale: true,
		nutrition.GenderOther:  true,
	}
	validGoals = map[nutrition.Goal]bool{
		nutrition.GoalLose:     true,
		nutrition.GoalMaintain: true,
		nutrition.GoalGain:     true,
	}
	validActivityLevels = map[nutrition.ActivityLevel]bool{
		nutrition.ActivitySedentary: true,
		nutrition.ActivityActive:    true,
	}
	validDietStyles = map[DietStyle]bool{
		DietOmnivore:   true,
		DietVegetarian: true,
		DietVegan:      true,
	}
	validRates = map[nutrition.WeightChangeRate]bool{
		nutrition.RateSlow:     true,
		nutrition.RateModerate: true,
		nutrition.RateFast:     true,
		nutrition.RateIntense:  true,
	}
)
