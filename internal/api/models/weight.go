package models

// WeightEntry is one point in the user's weight time series.
type WeightEntry struct {
	ID        string    `json:"id"`
	Date      Date      `json:"date"`
	WeightKg  float64   `json:"weightKg"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

// AddWeightRequest is the payload for recording a weight measurement.
type AddWeightRequest struct {
	Date     Date    `json:"date"`
	WeightKg float64 `json:"weightKg"`
	Note     *string `json:"note,omitempty"`
}

// WeightHistory is the full time series, oldest first.
type WeightHistory struct {
	Entries []WeightEntry `json:"entries"`
}

// WeightStats summarizes the weight series.
type WeightStats struct {
	Current        float64 `json:"current"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
	Avg            float64 `json:"avg"`
	DeltaSinceFirst float64 `json:"deltaSinceFirst"`
	Trend          string  `json:"trend"`
	Entries        int     `json:"entries"`
}
