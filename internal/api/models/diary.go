package models

// FoodItem is one logged diary line with its computed nutrient totals.
type FoodItem struct {
	ID        string    `json:"id"`
	FoodName  string    `json:"foodName"`
	Grams     float64   `json:"grams"`
	Calories  int       `json:"calories"`
	Protein   float64   `json:"protein"`
	Fat       float64   `json:"fat"`
	Carbs     float64   `json:"carbs"`
	CreatedAt Timestamp `json:"createdAt"`
}

// Meal groups the food items logged for one slot of one day.
type Meal struct {
	Type     string     `json:"type"`
	Calories int        `json:"calories"`
	Protein  float64    `json:"protein"`
	Fat      float64    `json:"fat"`
	Carbs    float64    `json:"carbs"`
	Items    []FoodItem `json:"items"`
}

// PhysicalActivity is one logged activity with its computed burn.
type PhysicalActivity struct {
	ID             string    `json:"id"`
	ActivityName   string    `json:"activityName"`
	Minutes        int       `json:"minutes"`
	CaloriesBurned int       `json:"caloriesBurned"`
	CreatedAt      Timestamp `json:"createdAt"`
}

// DailyDiary is the dashboard projection for one date.
type DailyDiary struct {
	Date             Date               `json:"date"`
	Meals            []Meal             `json:"meals"`
	Activities       []PhysicalActivity `json:"activities"`
	ConsumedCalories int                `json:"consumedCalories"`
	Protein          float64            `json:"protein"`
	Fat              float64            `json:"fat"`
	Carbs            float64            `json:"carbs"`
	BurnedCalories   int                `json:"burnedCalories"`
	CalorieGoal      int                `json:"calorieGoal"`
	Remaining        int                `json:"remaining"`
	BMI              float64            `json:"bmi"`
}

// AddFoodRequest is the payload for logging a food item.
type AddFoodRequest struct {
	FoodName string  `json:"foodName"`
	Grams    float64 `json:"grams"`
}

// AddActivityRequest is the payload for logging a physical activity.
type AddActivityRequest struct {
	ActivityName string `json:"activityName"`
	Minutes      int    `json:"minutes"`
}

// CopyMealsRequest is the payload for duplicating a day's meals.
type CopyMealsRequest struct {
	TargetDate Date `json:"targetDate"`
}

// RangeDiary is the projection for an inclusive date range.
type RangeDiary struct {
	From Date         `json:"from"`
	To   Date         `json:"to"`
	Days []DailyDiary `json:"days"`
}

// StatSummary folds a per-day series into total, average and extremes.
type StatSummary struct {
	Total float64 `json:"total"`
	Avg   float64 `json:"avg"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// PeriodStats aggregates diary and weight data over an inclusive date range.
type PeriodStats struct {
	From           Date        `json:"from"`
	To             Date        `json:"to"`
	DaysWithData   int         `json:"daysWithData"`
	Calories       StatSummary `json:"calories"`
	Protein        StatSummary `json:"protein"`
	Fat            StatSummary `json:"fat"`
	Carbs          StatSummary `json:"carbs"`
	BurnedCalories StatSummary `json:"burnedCalories"`
	Weight         StatSummary `json:"weight"`
}
