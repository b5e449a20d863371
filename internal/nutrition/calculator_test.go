package nutrition_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutrilog/nutrilog/internal/nutrition"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightM  float64
		want     float64
	}{
		{"normal weight", 60, 1.65, 22.04},
		{"overweight", 100, 1.75, 32.65},
		{"zero weight", 0, 1.75, 0},
		{"zero height", 70, 0, 0},
		{"negative height", 70, -1.7, 0},
		{"negative weight", -60, 1.65, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nutrition.BMI(tt.weightKg, tt.heightM)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
			assert.InDelta(t, tt.want, got, 0.01)
		})
	}
}

func TestCategoryForBMI_Boundaries(t *testing.T) {
	tests := []struct {
		bmi  float64
		want nutrition.BMICategory
	}{
		{18.4, nutrition.CategoryUnderweight},
		{18.5, nutrition.CategoryNormal},
		{24.9, nutrition.CategoryNormal},
		{25.0, nutrition.CategoryOverweight},
		{29.9, nutrition.CategoryOverweight},
		{30.0, nutrition.CategoryObesity},
		{45.0, nutrition.CategoryObesity},
		{0, nutrition.CategoryUnderweight},
	}

	for _, tt := range tests {
		got := nutrition.CategoryForBMI(tt.bmi)
		assert.Equal(t, tt.want.Code, got.Code, "bmi %.1f", tt.bmi)
	}
}

func TestCategoryForBMI_Labels(t *testing.T) {
	assert.Equal(t, "Sottopeso", nutrition.CategoryForBMI(17).Label)
	assert.Equal(t, "Normopeso", nutrition.CategoryForBMI(22).Label)
	assert.Equal(t, "Sovrappeso", nutrition.CategoryForBMI(27).Label)
	assert.Equal(t, "Obesità", nutrition.CategoryForBMI(33).Label)
}

func TestDailyCalorieGoal(t *testing.T) {
	tests := []struct {
		name     string
		gender   nutrition.Gender
		activity nutrition.ActivityLevel
		goal     nutrition.Goal
		weightKg float64
		heightM  float64
		want     int
	}{
		{
			// BMI 22.04 is below the female threshold of 23, so the actual
			// weight is used: round(60*31 - 150) = 1710.
			name:     "female sedentary maintain below threshold",
			gender:   nutrition.GenderFemale,
			activity: nutrition.ActivitySedentary,
			goal:     nutrition.GoalMaintain,
			weightKg: 60,
			heightM:  1.65,
			want:     1710,
		},
		{
			// BMI 32.65 exceeds the male threshold of 25, so the effective
			// weight 25*1.75^2 = 76.5625 replaces the actual weight:
			// round(76.5625*45 - 150) = 3295.
			name:     "male active gain above threshold",
			gender:   nutrition.GenderMale,
			activity: nutrition.ActivityActive,
			goal:     nutrition.GoalGain,
			weightKg: 100,
			heightM:  1.75,
			want:     3295,
		},
		{
			name:     "female sedentary lose",
			gender:   nutrition.GenderFemale,
			activity: nutrition.ActivitySedentary,
			goal:     nutrition.GoalLose,
			weightKg: 60,
			heightM:  1.65,
			want:     1410, // round(60*26 - 150)
		},
		{
			name:     "male sedentary maintain",
			gender:   nutrition.GenderMale,
			activity: nutrition.ActivitySedentary,
			goal:     nutrition.GoalMaintain,
			weightKg: 70,
			heightM:  1.80,
			want:     2160, // round(70*33 - 150)
		},
		{
			name:     "zero height degrades to zero",
			gender:   nutrition.GenderMale,
			activity: nutrition.ActivityActive,
			goal:     nutrition.GoalGain,
			weightKg: 80,
			heightM:  0,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nutrition.DailyCalorieGoal(tt.gender, tt.activity, tt.goal, tt.weightKg, tt.heightM)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDailyCalorieGoal_OtherGenderUsesMaleFactors(t *testing.T) {
	male := nutrition.DailyCalorieGoal(nutrition.GenderMale, nutrition.ActivityActive, nutrition.GoalGain, 100, 1.75)
	other := nutrition.DailyCalorieGoal(nutrition.GenderOther, nutrition.ActivityActive, nutrition.GoalGain, 100, 1.75)
	assert.Equal(t, male, other)
}

func TestDailyCalorieGoal_NeverNegative(t *testing.T) {
	// 30 kg at the lose factor would produce round(30*26-150) = 630, still
	// positive; force the floor with an implausibly low weight to pin the
	// clamp behavior.
	got := nutrition.DailyCalorieGoal(nutrition.GenderFemale, nutrition.ActivitySedentary, nutrition.GoalLose, 5, 1.65)
	assert.GreaterOrEqual(t, got, 0)
	assert.Equal(t, 0, got) // round(5*26 - 150) = -20, floored
}

func TestActivityCalories(t *testing.T) {
	tests := []struct {
		name     string
		met      float64
		weightKg float64
		minutes  int
		want     int
	}{
		// round half away from zero: 8.3*70*0.5 = 290.5 -> 291
		{"running half hour", 8.3, 70, 30, 291},
		{"cycling one hour", 6.0, 80, 60, 480},
		{"zero duration", 8.3, 70, 0, 0},
		{"negative duration", 8.3, 70, -10, 0},
		{"zero met", 0, 70, 30, 0},
		{"zero weight", 8.3, 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nutrition.ActivityCalories(tt.met, tt.weightKg, tt.minutes))
		})
	}
}

func TestStepsCalories(t *testing.T) {
	tests := []struct {
		name     string
		steps    int
		weightKg float64
		want     int
	}{
		{"ten thousand steps at 70kg", 10000, 70, 350},
		{"thousand steps at 60kg", 1000, 60, 30},
		{"zero steps", 0, 70, 0},
		{"negative steps", -100, 70, 0},
		{"zero weight", 5000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nutrition.StepsCalories(tt.steps, tt.weightKg))
		})
	}
}

func TestWeightChangeRate(t *testing.T) {
	tests := []struct {
		rate      nutrition.WeightChangeRate
		kgPerWeek float64
		delta     int
	}{
		{nutrition.RateSlow, 0.25, 275},
		{nutrition.RateModerate, 0.5, 550},
		{nutrition.RateFast, 0.75, 825},
		{nutrition.RateIntense, 1.0, 1100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kgPerWeek, tt.rate.KgPerWeek())
		assert.Equal(t, tt.delta, tt.rate.DailyCalorieDelta())
	}

	assert.Equal(t, 0.0, nutrition.WeightChangeRate("bogus").KgPerWeek())
}
