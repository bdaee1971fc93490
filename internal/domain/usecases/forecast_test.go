package usecases

import (
	"errors"
	"testing"
	"time"

	"github.com/chartwell/andy/internal/domain/entities"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestForecaster_FlatLineAtTrailingMean(t *testing.T) {
	f := NewForecaster()

	// 40 equal points: the trailing 30-point window mean must equal the
	// point value, so every forecast day carries it.
	history := make([]entities.UsagePoint, 40)
	for i := range history {
		history[i] = entities.UsagePoint{Date: day(2026, time.January, 1+i%28), QuantityUsed: 7.5}
	}

	forecast, err := f.Forecast(history, 14)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if len(forecast) != 14 {
		t.Fatalf("expected 14 points, got %d", len(forecast))
	}
	for i, p := range forecast {
		if p.QuantityForecast != 7.5 {
			t.Errorf("point %d: expected 7.5, got %v", i, p.QuantityForecast)
		}
	}
}

func TestForecaster_DatesStartAfterLatestAndIncrease(t *testing.T) {
	f := NewForecaster()
	history := []entities.UsagePoint{
		{Date: day(2026, time.March, 10), QuantityUsed: 5},
		{Date: day(2026, time.March, 1), QuantityUsed: 3},
		{Date: day(2026, time.March, 5), QuantityUsed: 4},
	}

	forecast, err := f.Forecast(history, 5)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}

	want := day(2026, time.March, 11)
	if !forecast[0].Date.Equal(want) {
		t.Errorf("first forecast date: expected %v, got %v", want, forecast[0].Date)
	}
	for i := 1; i < len(forecast); i++ {
		if !forecast[i].Date.After(forecast[i-1].Date) {
			t.Errorf("dates not strictly increasing at %d", i)
		}
	}
}

func TestForecaster_WindowUsesOnlyRecentPoints(t *testing.T) {
	f := NewForecaster()

	// 30 recent points at 10, one older point at 1000: the outlier falls
	// outside the trailing window.
	history := []entities.UsagePoint{{Date: day(2026, time.January, 1), QuantityUsed: 1000}}
	for i := 0; i < 30; i++ {
		history = append(history, entities.UsagePoint{Date: day(2026, time.February, 1+i%27), QuantityUsed: 10})
	}

	forecast, err := f.Forecast(history, 3)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if forecast[0].QuantityForecast != 10 {
		t.Errorf("expected trailing mean 10, got %v", forecast[0].QuantityForecast)
	}
}

func TestForecaster_EmptyHistory(t *testing.T) {
	f := NewForecaster()
	now := day(2026, time.June, 1)
	f.now = func() time.Time { return now }

	forecast, err := f.Forecast(nil, 7)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if len(forecast) != 7 {
		t.Fatalf("expected 7 points, got %d", len(forecast))
	}
	for i, p := range forecast {
		if p.QuantityForecast != 0 {
			t.Errorf("point %d: expected 0, got %v", i, p.QuantityForecast)
		}
	}
	if !forecast[0].Date.Equal(day(2026, time.June, 2)) {
		t.Errorf("expected forecast to start the day after now, got %v", forecast[0].Date)
	}
}

func TestForecaster_EqualDatesKeepInputOrder(t *testing.T) {
	f := NewForecaster()
	f.window = 1

	// Two points on the same date: the stable sort keeps input order, so
	// the one-point window sees the second.
	history := []entities.UsagePoint{
		{Date: day(2026, time.May, 1), QuantityUsed: 2},
		{Date: day(2026, time.May, 1), QuantityUsed: 8},
	}

	forecast, err := f.Forecast(history, 1)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if forecast[0].QuantityForecast != 8 {
		t.Errorf("expected last-in-input point in window, got %v", forecast[0].QuantityForecast)
	}
}

func TestForecaster_RejectsBadInput(t *testing.T) {
	f := NewForecaster()

	if _, err := f.Forecast(nil, 0); !errors.Is(err, entities.ErrInvalidInput) {
		t.Errorf("expected invalid input for zero horizon, got %v", err)
	}
	bad := []entities.UsagePoint{{Date: day(2026, time.May, 1), QuantityUsed: -1}}
	if _, err := f.Forecast(bad, 5); !errors.Is(err, entities.ErrInvalidInput) {
		t.Errorf("expected invalid input for negative quantity, got %v", err)
	}
}
