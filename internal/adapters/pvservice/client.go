// Package pvservice is the HTTP client for the external photovoltaic
// simulation service, implementing ports.SolarSimulator. The timeout and
// upstream-error policy for the third-party call live here, not in the
// core.
package pvservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chartwell/andy/internal/domain/entities"
)

// DefaultTimeout bounds a simulation round trip.
const DefaultTimeout = 15 * time.Second

// defaultLossesPct is the fixed system-losses assumption sent with every
// scenario.
const defaultLossesPct = 14.0

// Client calls the PV simulation service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type simulateRequest struct {
	Site         entities.Site `json:"site"`
	Roof         simulateRoof  `json:"roof"`
	SystemSizeKw float64       `json:"systemSizeKw"`
	LossesPct    float64       `json:"lossesPct"`
}

// simulateRoof is the service's roof shape; it does not take the area.
type simulateRoof struct {
	TiltDeg       float64 `json:"tiltDeg"`
	AzimuthDeg    float64 `json:"azimuthDeg"`
	ShadingFactor float64 `json:"shadingFactor"`
}

type simulateResponse struct {
	AnnualKwh    float64   `json:"annualKwh"`
	MonthlyKwh   []float64 `json:"monthlyKwh"`
	PaybackYears float64   `json:"paybackYears"`
	RoiPercent   float64   `json:"roiPercent"`
}

// Simulate posts the scenario to the service and decodes the estimate.
func (c *Client) Simulate(ctx context.Context, scenario entities.SolarScenario) (*entities.SolarEstimate, error) {
	body, err := json.Marshal(simulateRequest{
		Site: scenario.Site,
		Roof: simulateRoof{
			TiltDeg:       scenario.Roof.TiltDeg,
			AzimuthDeg:    scenario.Roof.AzimuthDeg,
			ShadingFactor: scenario.Roof.ShadingFactor,
		},
		SystemSizeKw: scenario.SystemSizeKw,
		LossesPct:    defaultLossesPct,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/simulate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling pv service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("pv service returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	var result simulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding pv service response: %w", err)
	}

	return &entities.SolarEstimate{
		AnnualKwh:    result.AnnualKwh,
		MonthlyKwh:   result.MonthlyKwh,
		PaybackYears: result.PaybackYears,
		RoiPercent:   result.RoiPercent,
		SimulatedAt:  time.Now().UTC(),
	}, nil
}
