// Package nutrition implements the deterministic calculations behind daily
// calorie goals and diary accounting: BMI, BMI classification, the
// effective-weight clamped calorie target, and energy expenditure from
// activities and steps. All functions are pure and never panic on
// out-of-domain input; they degrade to zero values instead.
package nutrition

import "math"

// Gender is the profile gender used for goal computation.
type Gender string

// Gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel is the self-reported baseline activity of a profile.
type ActivityLevel string

// ActivityLevel values.
const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityActive    ActivityLevel = "active"
)

// Goal is the weight intent of a profile.
type Goal string

// Goal values.
const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// WeightChangeRate is one of the four fixed weekly weight-change tiers a user
// can pick during onboarding.
type WeightChangeRate string

// WeightChangeRate values, from gentlest to most aggressive.
const (
	RateSlow     WeightChangeRate = "slow"
	RateModerate WeightChangeRate = "moderate"
	RateFast     WeightChangeRate = "fast"
	RateIntense  WeightChangeRate = "intense"
)

// kcalPerKgBodyWeight is the approximate energy content of one kilogram of
// body mass, used to translate a weekly rate into a daily calorie delta.
const kcalPerKgBodyWeight = 7700

// KgPerWeek returns the weekly weight-change target for the tier.
// Unknown tiers return 0.
func (r WeightChangeRate) KgPerWeek() float64 {
	switch r {
	case RateSlow:
		return 0.25
	case RateModerate:
		return 0.5
	case RateFast:
		return 0.75
	case RateIntense:
		return 1.0
	}
	return 0
}

// DailyCalorieDelta returns the daily calorie surplus or deficit implied by
// the tier's weekly target, rounded to the nearest kcal.
func (r WeightChangeRate) DailyCalorieDelta() int {
	return int(math.Round(r.KgPerWeek() * kcalPerKgBodyWeight / 7))
}

// BMI computes the body mass index from weight in kilograms and height in
// meters. Returns 0 when either input is non-positive so callers never see
// NaN or Inf.
func BMI(weightKg, heightM float64) float64 {
	if weightKg <= 0 || heightM <= 0 {
		return 0
	}
	return weightKg / (heightM * heightM)
}

// BMICategory classifies a BMI value. Labels are the product's display
// strings (Italian), Code is the stable machine-readable identifier.
type BMICategory struct {
	Code        string
	Label       string
	Description string
}

// BMI category boundaries: lower bounds are inclusive, upper bounds
// exclusive, the last band is open-ended.
var (
	CategoryUnderweight = BMICategory{
		Code:        "underweight",
		Label:       "Sottopeso",
		Description: "Il peso è inferiore al range considerato salutare.",
	}
	CategoryNormal = BMICategory{
		Code:        "normal",
		Label:       "Normopeso",
		Description: "Il peso rientra nel range considerato salutare.",
	}
	CategoryOverweight = BMICategory{
		Code:        "overweight",
		Label:       "Sovrappeso",
		Description: "Il peso è superiore al range considerato salutare.",
	}
	CategoryObesity = BMICategory{
		Code:        "obesity",
		Label:       "Obesità",
		Description: "Il peso è molto superiore al range considerato salutare.",
	}
)

// CategoryForBMI returns the category band a BMI value falls into.
func CategoryForBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25.0:
		return CategoryNormal
	case bmi < 30.0:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

// bmiThreshold returns the BMI above which the calorie goal switches from the
// actual weight to the threshold-clamped effective weight. The table only
// defines male and female columns; GenderOther deliberately maps to the male
// column (see DESIGN.md).
func bmiThreshold(gender Gender) float64 {
	if gender == GenderFemale {
		return 23
	}
	return 25
}

// caloricFactor is the kcal-per-kg multiplier keyed by gender, activity level
// and goal. GenderOther resolves to the male column before lookup, so the
// switch below is exhaustive over the two defined columns.
func caloricFactor(gender Gender, activity ActivityLevel, goal Goal) float64 {
	column := gender
	if column == GenderOther {
		column = GenderMale
	}

	type key struct {
		gender   Gender
		activity ActivityLevel
		goal     Goal
	}
	factors := map[key]float64{
		{GenderFemale, ActivitySedentary, GoalLose}:     26,
		{GenderFemale, ActivitySedentary, GoalMaintain}: 31,
		{GenderFemale, ActivitySedentary, GoalGain}:     36,
		{GenderFemale, ActivityActive, GoalLose}:        30,
		{GenderFemale, ActivityActive, GoalMaintain}:    35,
		{GenderFemale, ActivityActive, GoalGain}:        40,
		{GenderMale, ActivitySedentary, GoalLose}:       28,
		{GenderMale, ActivitySedentary, GoalMaintain}:   33,
		{GenderMale, ActivitySedentary, GoalGain}:       38,
		{GenderMale, ActivityActive, GoalLose}:          35,
		{GenderMale, ActivityActive, GoalMaintain}:      40,
		{GenderMale, ActivityActive, GoalGain}:          45,
	}
	return factors[key{column, activity, goal}]
}

// freeMealAllowance is a weekly discretionary-meal calorie budget amortized
// per day and subtracted from every daily goal.
const freeMealAllowance = 150

// DailyCalorieGoal computes the daily calorie target in kcal.
//
// When the profile's BMI exceeds the gender threshold, the actual weight is
// replaced by the weight the user would have at that threshold BMI
// (threshold × height²). This keeps targets from growing without bound for
// overweight profiles. The result is floored at 0 and uses a single
// round-half-away-from-zero policy.
func DailyCalorieGoal(gender Gender, activity ActivityLevel, goal Goal, weightKg, heightM float64) int {
	if weightKg <= 0 || heightM <= 0 {
		return 0
	}

	effectiveWeight := weightKg
	if threshold := bmiThreshold(gender); BMI(weightKg, heightM) > threshold {
		effectiveWeight = threshold * heightM * heightM
	}

	factor := caloricFactor(gender, activity, goal)
	if factor == 0 {
		return 0
	}

	kcal := math.Round(effectiveWeight*factor - freeMealAllowance)
	if kcal < 0 {
		return 0
	}
	return int(kcal)
}

// ActivityCalories estimates calories burned performing an activity with the
// given MET coefficient for a duration in minutes at the given body weight.
// Invalid inputs yield 0 rather than an error.
func ActivityCalories(met, weightKg float64, minutes int) int {
	if met <= 0 || weightKg <= 0 || minutes < 0 {
		return 0
	}
	return int(math.Round(met * weightKg * float64(minutes) / 60))
}

// kcalPerStepPerKg is the per-step calorie cost per kilogram of body weight.
// 0.0005 kcal/step/kg amounts to 0.5 kcal per 1000 steps per kg, a
// stride-length independent simplification.
const kcalPerStepPerKg = 0.0005

// StepsCalories estimates calories burned walking the given number of steps
// at the given body weight. Invalid inputs yield 0.
func StepsCalories(steps int, weightKg float64) int {
	if steps <= 0 || weightKg <= 0 {
		return 0
	}
	return int(math.Round(float64(steps) * weightKg * kcalPerStepPerKg))
}
