package weight_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nutrilog/nutrilog/internal/api/models"
	"github.com/nutrilog/nutrilog/internal/weight"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", s, err)
	}
	return d
}

func addEntry(t *testing.T, service *weight.Service, userID, date string, kg float64) {
	t.Helper()
	_, err := service.Add(context.Background(), userID, &models.AddWeightRequest{
		Date:     mustDate(t, date),
		WeightKg: kg,
	})
	if err != nil {
		t.Fatalf("failed to add weight entry: %v", err)
	}
}

func TestService_Add(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	result, err := service.Add(context.Background(), "user123", &models.AddWeightRequest{
		Date:     mustDate(t, "2025-03-10"),
		WeightKg: 72.5,
	})
	if err != nil {
		t.Fatalf("failed to add weight entry: %v", err)
	}

	if !strings.HasPrefix(result.ID, "wt_") {
		t.Errorf("expected entry ID to start with 'wt_', got %q", result.ID)
	}
	if result.WeightKg != 72.5 {
		t.Errorf("expected weight 72.5, got %v", result.WeightKg)
	}
}

func TestService_Add_Validation(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	_, err := service.Add(context.Background(), "user123", &models.AddWeightRequest{
		Date:     mustDate(t, "2025-03-10"),
		WeightKg: 12,
	})

	var vErr *weight.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(vErr.Errors) == 0 || vErr.Errors[0].Field != "weightKg" {
		t.Errorf("expected field error on weightKg, got %v", vErr.Errors)
	}
}

func TestService_History_SortedOldestFirst(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	addEntry(t, service, "user123", "2025-03-12", 71.8)
	addEntry(t, service, "user123", "2025-03-10", 72.5)
	addEntry(t, service, "user123", "2025-03-11", 72.1)

	history, err := service.History(context.Background(), "user123")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}

	if len(history.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history.Entries))
	}
	for i, want := range []string{"2025-03-10", "2025-03-11", "2025-03-12"} {
		if got := history.Entries[i].Date.String(); got != want {
			t.Errorf("entry %d: expected date %s, got %s", i, want, got)
		}
	}
}

func TestService_History_TenantIsolation(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	addEntry(t, service, "alice", "2025-03-10", 60)
	addEntry(t, service, "bob", "2025-03-10", 85)

	history, err := service.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("failed to get history: %v", err)
	}
	if len(history.Entries) != 1 {
		t.Fatalf("expected 1 entry for alice, got %d", len(history.Entries))
	}
	if history.Entries[0].WeightKg != 60 {
		t.Errorf("expected alice's entry, got %v", history.Entries[0].WeightKg)
	}
}

func TestService_Stats(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	addEntry(t, service, "user123", "2025-03-10", 74.0)
	addEntry(t, service, "user123", "2025-03-17", 73.0)
	addEntry(t, service, "user123", "2025-03-24", 72.0)

	stats, err := service.Stats(context.Background(), "user123")
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}

	if stats.Current != 72.0 {
		t.Errorf("expected current 72.0, got %v", stats.Current)
	}
	if stats.Min != 72.0 || stats.Max != 74.0 {
		t.Errorf("expected min/max 72/74, got %v/%v", stats.Min, stats.Max)
	}
	if stats.Avg != 73.0 {
		t.Errorf("expected avg 73.0, got %v", stats.Avg)
	}
	if stats.DeltaSinceFirst != -2.0 {
		t.Errorf("expected delta -2.0, got %v", stats.DeltaSinceFirst)
	}
	if stats.Trend != weight.TrendLosing {
		t.Errorf("expected losing trend, got %q", stats.Trend)
	}
}

func TestService_Stats_EmptySeries(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	stats, err := service.Stats(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("expected zeroed stats, got error: %v", err)
	}
	if stats.Entries != 0 || stats.Current != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if stats.Trend != weight.TrendStable {
		t.Errorf("expected stable trend, got %q", stats.Trend)
	}
}

func TestService_Stats_StableWithinEpsilon(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)

	addEntry(t, service, "user123", "2025-03-10", 72.00)
	addEntry(t, service, "user123", "2025-03-11", 72.04)

	stats, err := service.Stats(context.Background(), "user123")
	if err != nil {
		t.Fatalf("failed to compute stats: %v", err)
	}
	if stats.Trend != weight.TrendStable {
		t.Errorf("expected stable trend, got %q", stats.Trend)
	}
}

func TestService_Delete(t *testing.T) {
	repo := weight.NewInMemoryRepository()
	service := weight.NewService(repo)
	ctx := context.Background()

	entry, err := service.Add(ctx, "user123", &models.AddWeightRequest{
		Date:     mustDate(t, "2025-03-10"),
		WeightKg: 72.5,
	})
	if err != nil {
		t.Fatalf("failed to add weight entry: %v", err)
	}

	if err := service.Delete(ctx, "user123", entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}

	if err := service.Delete(ctx, "user123", entry.ID); !errors.Is(err, weight.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}
