// Package entities contains core business entities.
// These are the enterprise business rules - pure domain objects with no external dependencies.
package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidInput marks malformed or out-of-range caller input.
// Handlers translate it into a 400; the core never panics on it.
var ErrInvalidInput = errors.New("invalid input")

// UsagePoint is one day of recorded material consumption.
// Duplicate dates are allowed and are not merged.
type UsagePoint struct {
	Date         time.Time `json:"date"`
	QuantityUsed float64   `json:"quantityUsed"`
}

// Validate checks that the quantity is a finite, non-negative number.
func (u UsagePoint) Validate() error {
	return checkQuantity("quantityUsed", u.QuantityUsed)
}

// ForecastPoint is one projected day of demand.
type ForecastPoint struct {
	Date             time.Time `json:"date"`
	QuantityForecast float64   `json:"quantityForecast"`
}

// MaterialStats is the per-material demand profile a recommendation is
// computed from. It is supplied fresh on every call and never mutated.
type MaterialStats struct {
	MaterialID      string  `json:"materialId"`
	MaterialName    string  `json:"materialName"`
	AvgDailyDemand  float64 `json:"avgDailyDemand"`
	DemandStdDev    float64 `json:"demandStdDev"`
	LeadTimeDays    float64 `json:"leadTimeDays"`
	SafetyStockDays float64 `json:"safetyStockDays"`
	OnHandQty       float64 `json:"onHandQty"`
}

// Validate rejects non-finite or negative fields. A negative lead time is
// an error here, not something to clamp: silently clamping would hide a
// nonsensical negative safety stock from the caller.
func (m MaterialStats) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"avgDailyDemand", m.AvgDailyDemand},
		{"demandStdDev", m.DemandStdDev},
		{"leadTimeDays", m.LeadTimeDays},
		{"safetyStockDays", m.SafetyStockDays},
		{"onHandQty", m.OnHandQty},
	}
	for _, f := range fields {
		if err := checkQuantity(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Action is the stock decision for a material.
type Action string

const (
	ActionOK      Action = "OK"
	ActionWatch   Action = "WATCH"
	ActionReorder Action = "REORDER"
)

// Cover is days-of-cover with an explicit unbounded sentinel for zero
// demand, instead of a numeric infinity that could corrupt downstream
// arithmetic. Unbounded cover marshals to JSON null.
type Cover struct {
	Days      float64
	Unbounded bool
}

// MarshalJSON renders unbounded cover as null.
func (c Cover) MarshalJSON() ([]byte, error) {
	if c.Unbounded {
		return []byte("null"), nil
	}
	return json.Marshal(c.Days)
}

// UnmarshalJSON accepts null as the unbounded sentinel.
func (c *Cover) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Cover{Unbounded: true}
		return nil
	}
	var days float64
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	*c = Cover{Days: days}
	return nil
}

// Recommendation is a derived stock action for one material. It is a pure
// function of the MaterialStats it was computed from - no hidden state
// affects the classification.
type Recommendation struct {
	MaterialID      string  `json:"materialId"`
	MaterialName    string  `json:"materialName"`
	CurrentStock    float64 `json:"currentStock"`
	DaysOfCover     Cover   `json:"daysOfCover"`
	ReorderPoint    float64 `json:"reorderPoint"`
	ReorderQuantity float64 `json:"reorderQuantity"`
	Action          Action  `json:"action"`
}

// Document is one short knowledge document in the retrieval corpus.
// Append-only for the process lifetime; ids are unique.
type Document struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	DocType string `json:"docType"`
	Content string `json:"content"`
}

// Validate checks the fields a document needs before it can be indexed.
func (d Document) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: document id is required", ErrInvalidInput)
	}
	if d.Title == "" {
		return fmt.Errorf("%w: document title is required", ErrInvalidInput)
	}
	return nil
}

// ContextChunk is a retrieved excerpt used to ground a composed answer.
// Transient: produced per query, never stored.
type ContextChunk struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Site is a geographic location for a solar scenario.
type Site struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Roof describes the surface a solar system would be mounted on.
type Roof struct {
	TiltDeg       float64 `json:"tiltDeg"`
	AzimuthDeg    float64 `json:"azimuthDeg"`
	AreaM2        float64 `json:"areaM2"`
	ShadingFactor float64 `json:"shadingFactor"`
}

// SolarScenario is the input to the external PV simulation service.
type SolarScenario struct {
	Site         Site    `json:"site"`
	Roof         Roof    `json:"roof"`
	SystemSizeKw float64 `json:"systemSizeKw"`
}

// SolarEstimate is the simulation outcome for a scenario.
type SolarEstimate struct {
	AnnualKwh    float64   `json:"annualKwh"`
	MonthlyKwh   []float64 `json:"monthlyKwh"`
	PaybackYears float64   `json:"paybackYears"`
	RoiPercent   float64   `json:"roiPercent"`
	SimulatedAt  time.Time `json:"simulatedAt"`
}

func checkQuantity(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite", ErrInvalidInput, name)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
	}
	return nil
}
