package usecases

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/chartwell/andy/internal/domain/entities"
)

func TestReorderEngine_ReorderPointFormula(t *testing.T) {
	e := NewReorderEngine(0) // default z

	recs, err := e.Recommend([]entities.MaterialStats{{
		MaterialID:      "sheet",
		MaterialName:    "Roofing Sheet",
		AvgDailyDemand:  22,
		DemandStdDev:    5,
		LeadTimeDays:    14,
		SafetyStockDays: 5,
		OnHandQty:       185,
	}})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}

	rec := recs[0]
	want := 22*14 + 1.65*5*math.Sqrt(14) + 22*5 // ≈ 448.87
	if math.Abs(rec.ReorderPoint-want) > 1e-9 {
		t.Errorf("reorder point: expected %v, got %v", want, rec.ReorderPoint)
	}
	if rec.Action != entities.ActionReorder {
		t.Errorf("expected REORDER at 185 on hand, got %s", rec.Action)
	}
	if rec.ReorderQuantity != math.Round(want*1.5-185) {
		t.Errorf("reorder quantity: expected %v, got %v", math.Round(want*1.5-185), rec.ReorderQuantity)
	}
}

func TestReorderEngine_ZeroDemandIsUnboundedCover(t *testing.T) {
	e := NewReorderEngine(0)

	recs, err := e.Recommend([]entities.MaterialStats{{
		MaterialID:   "idle",
		MaterialName: "Slow mover",
		OnHandQty:    50,
	}})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}

	rec := recs[0]
	if !rec.DaysOfCover.Unbounded {
		t.Error("expected unbounded days of cover for zero demand")
	}
	// Reorder point is 0 with no demand and no variability, and 50 > 0,
	// so neither branch can fire.
	if rec.Action != entities.ActionOK {
		t.Errorf("expected OK, got %s", rec.Action)
	}
}

func TestReorderEngine_ActionBoundaries(t *testing.T) {
	e := NewReorderEngine(0)

	// With σ=0 the reorder point is exactly d·(L+S), so on-hand equal to
	// it must classify as REORDER (first branch, <=), and anything above
	// it clears the cover threshold too.
	recs, err := e.Recommend([]entities.MaterialStats{
		{MaterialID: "at-point", AvgDailyDemand: 10, LeadTimeDays: 10, SafetyStockDays: 5, OnHandQty: 150},
		{MaterialID: "above", AvgDailyDemand: 10, LeadTimeDays: 10, SafetyStockDays: 5, OnHandQty: 151},
	})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if recs[0].Action != entities.ActionReorder {
		t.Errorf("on-hand equal to reorder point: expected REORDER, got %s", recs[0].Action)
	}
	if recs[1].Action != entities.ActionOK {
		t.Errorf("on-hand above reorder point: expected OK, got %s", recs[1].Action)
	}
	if recs[1].DaysOfCover.Unbounded || recs[1].DaysOfCover.Days != 15.1 {
		t.Errorf("expected 15.1 days of cover, got %+v", recs[1].DaysOfCover)
	}
}

func TestReorderEngine_OrderAndLengthPreserved(t *testing.T) {
	e := NewReorderEngine(0)

	items := []entities.MaterialStats{
		{MaterialID: "a", AvgDailyDemand: 1, OnHandQty: 100},
		{MaterialID: "b", AvgDailyDemand: 2, OnHandQty: 100},
		{MaterialID: "c", AvgDailyDemand: 3, OnHandQty: 100},
	}
	recs, err := e.Recommend(items)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(recs) != len(items) {
		t.Fatalf("expected %d recommendations, got %d", len(items), len(recs))
	}
	for i, rec := range recs {
		if rec.MaterialID != items[i].MaterialID {
			t.Errorf("position %d: expected %s, got %s", i, items[i].MaterialID, rec.MaterialID)
		}
	}
}

func TestReorderEngine_EmptyInputStaysEmpty(t *testing.T) {
	e := NewReorderEngine(0)
	recs, err := e.Recommend(nil)
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no implicit demo substitution, got %d recommendations", len(recs))
	}
}

func TestReorderEngine_RejectsNegativeLeadTime(t *testing.T) {
	e := NewReorderEngine(0)
	_, err := e.Recommend([]entities.MaterialStats{{
		MaterialID:     "bad",
		AvgDailyDemand: 10,
		LeadTimeDays:   -3,
	}})
	if !errors.Is(err, entities.ErrInvalidInput) {
		t.Errorf("expected invalid input for negative lead time, got %v", err)
	}

	_, err = e.Recommend([]entities.MaterialStats{{
		MaterialID:     "bad",
		AvgDailyDemand: math.NaN(),
	}})
	if !errors.Is(err, entities.ErrInvalidInput) {
		t.Errorf("expected invalid input for NaN demand, got %v", err)
	}
}

func TestDemoMaterials_Deterministic(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 30, 0, 0, time.UTC)

	first := DemoMaterials(now)
	second := DemoMaterials(now)
	if len(first) != 4 {
		t.Fatalf("expected 4 demo materials, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("demo material %d differs between calls at the same time", i)
		}
	}

	for i, m := range first {
		if err := m.Validate(); err != nil {
			t.Errorf("demo material %d invalid: %v", i, err)
		}
	}
}
