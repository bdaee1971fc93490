package usecases

import (
	"fmt"
	"math"
	"time"

	"github.com/chartwell/andy/internal/domain/entities"
)

// DefaultServiceLevelZ is the z-score for roughly a 95% service level.
const DefaultServiceLevelZ = 1.65

// orderUpToMultiplier scales the reorder point into an order-up-to level.
// This is a fixed simplification of an economic-order-quantity policy,
// not a real EOQ computation.
const orderUpToMultiplier = 1.5

// ReorderEngine turns per-material demand statistics into stock-action
// recommendations. Every recommendation is a pure function of its input
// stats and the configured service-level factor.
type ReorderEngine struct {
	z float64
}

// NewReorderEngine creates an engine with the given service-level factor.
// Zero or negative z falls back to DefaultServiceLevelZ.
func NewReorderEngine(z float64) *ReorderEngine {
	if z <= 0 {
		z = DefaultServiceLevelZ
	}
	return &ReorderEngine{z: z}
}

// Recommend produces one Recommendation per input, in input order.
// Invalid stats fail the whole call; nothing is clamped. An empty input
// yields an empty result - callers that want demo data must ask for
// DemoMaterials explicitly.
func (e *ReorderEngine) Recommend(items []entities.MaterialStats) ([]entities.Recommendation, error) {
	recs := make([]entities.Recommendation, 0, len(items))
	for _, m := range items {
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("material %q: %w", m.MaterialID, err)
		}
		recs = append(recs, e.recommendOne(m))
	}
	return recs, nil
}

func (e *ReorderEngine) recommendOne(m entities.MaterialStats) entities.Recommendation {
	leadTimeDemandMean := m.AvgDailyDemand * m.LeadTimeDays
	leadTimeDemandStd := m.DemandStdDev * math.Sqrt(math.Max(m.LeadTimeDays, 1))
	safetyStock := e.z*leadTimeDemandStd + m.AvgDailyDemand*m.SafetyStockDays
	reorderPoint := leadTimeDemandMean + safetyStock

	cover := entities.Cover{Unbounded: true}
	if m.AvgDailyDemand > 0 {
		cover = entities.Cover{Days: m.OnHandQty / m.AvgDailyDemand}
	}

	reorderQuantity := math.Max(0, math.Round(reorderPoint*orderUpToMultiplier-m.OnHandQty))

	action := entities.ActionOK
	switch {
	case m.OnHandQty <= reorderPoint:
		action = entities.ActionReorder
	case !cover.Unbounded && cover.Days < m.LeadTimeDays+m.SafetyStockDays:
		action = entities.ActionWatch
	}

	return entities.Recommendation{
		MaterialID:      m.MaterialID,
		MaterialName:    m.MaterialName,
		CurrentStock:    m.OnHandQty,
		DaysOfCover:     cover,
		ReorderPoint:    reorderPoint,
		ReorderQuantity: reorderQuantity,
		Action:          action,
	}
}

// DemoMaterials is the built-in demo inventory used to keep a fresh
// deployment's UI populated. On-hand quantities drift slightly with the
// minute bucket of now so the data feels live, but the set is fully
// deterministic for a given time. This is a display fallback, not
// inventory logic, and it is never substituted implicitly.
func DemoMaterials(now time.Time) []entities.MaterialStats {
	t := now.Unix() / 60
	drift := func(i int64) float64 { return float64((t+i)%7 - 3) }

	return []entities.MaterialStats{
		{
			MaterialID:      "demo-sheet",
			MaterialName:    "Roofing Sheet 0.55mm BMT",
			AvgDailyDemand:  22,
			DemandStdDev:    5,
			LeadTimeDays:    14,
			SafetyStockDays: 5,
			OnHandQty:       math.Max(80, 185+drift(0)*4),
		},
		{
			MaterialID:      "demo-fastener",
			MaterialName:    "Self-drilling Fastener M6",
			AvgDailyDemand:  210,
			DemandStdDev:    45,
			LeadTimeDays:    10,
			SafetyStockDays: 4,
			OnHandQty:       math.Max(200, 1180+drift(1)*15),
		},
		{
			MaterialID:      "demo-sealant",
			MaterialName:    "Sealant 310ml Cartridge",
			AvgDailyDemand:  35,
			DemandStdDev:    10,
			LeadTimeDays:    12,
			SafetyStockDays: 5,
			OnHandQty:       math.Max(50, 320+drift(2)*8),
		},
		{
			MaterialID:      "demo-clip",
			MaterialName:    "Roof Clip Universal",
			AvgDailyDemand:  85,
			DemandStdDev:    18,
			LeadTimeDays:    7,
			SafetyStockDays: 3,
			OnHandQty:       math.Max(100, 520+drift(3)*12),
		},
	}
}

// ScenarioSummary is the placeholder response for inventory scenario
// simulation.
// TODO: compute stockout probability and carrying-cost impact once real
// usage data is persisted.
func ScenarioSummary() string {
	return "Scenario simulation endpoint is wired but not yet using real data. " +
		"You can extend it to compute stockout risk and carrying costs."
}
