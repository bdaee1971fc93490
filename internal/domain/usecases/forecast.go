// Package usecases contains application business rules.
// Usecases orchestrate entities and depend only on port interfaces -
// no framework code, no external dependencies, just business logic.
package usecases

import (
	"fmt"
	"sort"
	"time"

	"github.com/chartwell/andy/internal/domain/entities"
)

// DefaultForecastWindow is how many trailing usage points feed the mean.
const DefaultForecastWindow = 30

// Forecaster projects future demand from historical usage. It is a
// deliberately simple, explainable baseline: a flat line at the trailing
// window mean. No trend, seasonality, or confidence interval.
type Forecaster struct {
	window int
	now    func() time.Time
}

// NewForecaster creates a Forecaster with the default trailing window.
func NewForecaster() *Forecaster {
	return &Forecaster{
		window: DefaultForecastWindow,
		now:    time.Now,
	}
}

// Forecast returns one ForecastPoint per day of the horizon, with strictly
// increasing dates starting the day after the latest usage date (or today,
// when history is empty). History with equal dates keeps its input order:
// the sort is stable and that is the documented tie-break.
func (f *Forecaster) Forecast(history []entities.UsagePoint, horizonDays int) ([]entities.ForecastPoint, error) {
	if horizonDays <= 0 {
		return nil, fmt.Errorf("%w: horizonDays must be positive, got %d", entities.ErrInvalidInput, horizonDays)
	}
	for i, p := range history {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("history[%d]: %w", i, err)
		}
	}

	if len(history) == 0 {
		return flatLine(f.now(), horizonDays, 0), nil
	}

	sorted := make([]entities.UsagePoint, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	window := f.window
	if window > len(sorted) {
		window = len(sorted)
	}
	trailing := sorted[len(sorted)-window:]

	var sum float64
	for _, p := range trailing {
		sum += p.QuantityUsed
	}
	divisor := float64(len(trailing))
	if divisor == 0 {
		divisor = 1
	}
	mean := sum / divisor

	last := sorted[len(sorted)-1].Date
	return flatLine(last, horizonDays, mean), nil
}

func flatLine(from time.Time, horizonDays int, qty float64) []entities.ForecastPoint {
	points := make([]entities.ForecastPoint, horizonDays)
	for i := range points {
		points[i] = entities.ForecastPoint{
			Date:             from.AddDate(0, 0, i+1),
			QuantityForecast: qty,
		}
	}
	return points
}
