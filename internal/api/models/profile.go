package models

// Profile is the API representation of a user profile.
type Profile struct {
	Name             string    `json:"name"`
	Age              int       `json:"age"`
	Gender           string    `json:"gender"`
	HeightCm         float64   `json:"heightCm"`
	WeightKg         float64   `json:"weightKg"`
	Goal             string    `json:"goal"`
	ActivityLevel    string    `json:"activityLevel"`
	DietStyle        string    `json:"dietStyle"`
	WeightChangeRate string    `json:"weightChangeRate"`
	CreatedAt        Timestamp `json:"createdAt"`
	UpdatedAt        Timestamp `json:"updatedAt"`
}

// ProfileUpsertRequest is the payload for creating or replacing a profile.
type ProfileUpsertRequest struct {
	Name             string  `json:"name"`
	Age              int     `json:"age"`
	Gender           string  `json:"gender"`
	HeightCm         float64 `json:"heightCm"`
	WeightKg         float64 `json:"weightKg"`
	Goal             string  `json:"goal"`
	ActivityLevel    string  `json:"activityLevel"`
	DietStyle        string  `json:"dietStyle"`
	WeightChangeRate string  `json:"weightChangeRate"`
}

// BMICategory is the API representation of a BMI classification band.
type BMICategory struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ProfileMetrics contains the derived values the dashboard gauges read.
type ProfileMetrics struct {
	BMI               float64     `json:"bmi"`
	BMICategory       BMICategory `json:"bmiCategory"`
	DailyCalorieGoal  int         `json:"dailyCalorieGoal"`
	WeightChangeRate  string      `json:"weightChangeRate"`
	TargetKgPerWeek   float64     `json:"targetKgPerWeek"`
	DailyCalorieDelta int         `json:"dailyCalorieDelta"`
}
