// Package weight provides the append-only weight time series and its trend
// statistics.
package weight

import (
	"errors"
	"time"
)

// Repository errors.
var (
	ErrEntryNotFound = errors.New("weight entry not found")
)

// Trend values.
const (
	TrendGaining = "gaining"
	TrendLosing  = "losing"
	TrendStable  = "stable"
)

// Entry is one point in a user's weight series.
type Entry struct {
	ID        string
	UserID    string
	Date      time.Time
	WeightKg  float64
	Note      *string
	CreatedAt time.Time
}
