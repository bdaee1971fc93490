package usecases

import (
	"fmt"
	"math"
	"time"
)

// trendPeriods is how many periods each KPI trend covers.
const trendPeriods = 14

// TrendPoint is one period of a KPI time series.
type TrendPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
}

// MaterialsKPI summarizes forecasting and stock performance.
type MaterialsKPI struct {
	AvgMape             float64      `json:"avgMape"`
	StockoutsLast30Days int64        `json:"stockoutsLast30Days"`
	CarryingCostIndex   float64      `json:"carryingCostIndex"`
	MapeTrend           []TrendPoint `json:"mapeTrend"`
	StockoutsTrend      []TrendPoint `json:"stockoutsTrend"`
}

// SolarKPI summarizes simulation accuracy.
type SolarKPI struct {
	Nmae      float64      `json:"nmae"`
	BiasPct   float64      `json:"biasPct"`
	NmaeTrend []TrendPoint `json:"nmaeTrend"`
}

// SupportKPI summarizes assistant performance.
type SupportKPI struct {
	HelpfulRate            float64      `json:"helpfulRate"`
	AvgResponseTimeSeconds int64        `json:"avgResponseTimeSeconds"`
	RateTrend              []TrendPoint `json:"rateTrend"`
}

// AnalyticsSummary is the dashboard payload.
type AnalyticsSummary struct {
	LastUpdated time.Time    `json:"lastUpdated"`
	Materials   MaterialsKPI `json:"materials"`
	Solar       SolarKPI     `json:"solar"`
	Support     SupportKPI   `json:"support"`
}

// Analytics produces indicative dashboard numbers. Until real outcome
// data is persisted the values are synthetic: a deterministic function of
// the minute bucket of now, so the dashboard moves without a datastore
// and tests can pin a time.
type Analytics struct{}

// Summary builds the KPI summary for the given instant.
func (Analytics) Summary(now time.Time) AnalyticsSummary {
	seed := (now.UnixMilli() / 60000) % 100

	mape := 0.10 + float64(seed%5)/100
	stockouts := seed % 3
	carryingCost := 0.78 + float64(seed%6)/100
	nmae := 0.06 + float64(seed%4)/100
	biasPct := 2.0 + float64(seed%3)
	helpfulRate := 0.88 + float64(seed%5)/100
	avgResponseTime := 12 + seed%8

	mapeTrend := make([]TrendPoint, trendPeriods)
	stockoutsTrend := make([]TrendPoint, trendPeriods)
	nmaeTrend := make([]TrendPoint, trendPeriods)
	rateTrend := make([]TrendPoint, trendPeriods)
	for i := 0; i < trendPeriods; i++ {
		period := fmt.Sprintf("D%d", trendPeriods-i)
		label := fmt.Sprintf("Day %d", trendPeriods-i)
		mapeTrend[i] = TrendPoint{
			Period: period,
			Value:  clamp(0.05, 0.2, mape+float64(i-trendPeriods/2)*0.005+float64(seed%3)*0.01),
			Label:  label,
		}
		stockoutsTrend[i] = TrendPoint{
			Period: period,
			Value:  float64(stockouts + (int64(i)+seed)%2),
			Label:  label,
		}
		nmaeTrend[i] = TrendPoint{
			Period: period,
			Value:  clamp(0.03, 0.15, nmae+float64(i%3)*0.01),
			Label:  label,
		}
		rateTrend[i] = TrendPoint{
			Period: period,
			Value:  clamp(0.7, 0.98, helpfulRate+float64(i%5)*0.02),
			Label:  label,
		}
	}

	return AnalyticsSummary{
		LastUpdated: now,
		Materials: MaterialsKPI{
			AvgMape:             mape,
			StockoutsLast30Days: stockouts,
			CarryingCostIndex:   carryingCost,
			MapeTrend:           mapeTrend,
			StockoutsTrend:      stockoutsTrend,
		},
		Solar: SolarKPI{
			Nmae:      nmae,
			BiasPct:   biasPct,
			NmaeTrend: nmaeTrend,
		},
		Support: SupportKPI{
			HelpfulRate:            helpfulRate,
			AvgResponseTimeSeconds: avgResponseTime,
			RateTrend:              rateTrend,
		},
	}
}

func clamp(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
