package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/chartwell/andy/internal/adapters/docstore"
	"github.com/chartwell/andy/internal/domain/entities"
	"github.com/chartwell/andy/internal/domain/usecases"
	"github.com/chartwell/andy/internal/pkg/logger"
)

// fakeSimulator implements ports.SolarSimulator for testing.
type fakeSimulator struct {
	estimate *entities.SolarEstimate
	err      error
}

func (f *fakeSimulator) Simulate(ctx context.Context, s entities.SolarScenario) (*entities.SolarEstimate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.estimate, nil
}

func newTestServer(t *testing.T) (*Server, *docstore.Memory) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemory()
	s := NewServer(Config{
		Log:        logger.NewNop(),
		Forecaster: usecases.NewForecaster(),
		Reorder:    usecases.NewReorderEngine(0),
		Retriever:  usecases.NewRetriever(store, nil),
		Composer:   usecases.NewComposer(nil),
		Store:      store,
		Solar:      &fakeSimulator{estimate: &entities.SolarEstimate{AnnualKwh: 8000}},
	})
	return s, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestServer_Health(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Router(), http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestServer_QueryAnswersFromStore(t *testing.T) {
	s, store := newTestServer(t)
	store.Append(context.Background(), entities.Document{
		ID:      "faq-warranty",
		Title:   "Product warranty",
		DocType: "faq",
		Content: "Panels carry a 25-year warranty.",
	})

	w := doJSON(t, s.Router(), http.MethodPost, "/rag/query",
		`{"question": "what warranty do you offer"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Answer  string                  `json:"answer"`
		Sources []entities.ContextChunk `json:"sources"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Answer == "" {
		t.Error("expected a non-empty answer")
	}
	if len(resp.Sources) != 1 || resp.Sources[0].Title != "Product warranty" {
		t.Errorf("expected the warranty document as source, got %+v", resp.Sources)
	}
}

func TestServer_QueryValidation(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	if w := doJSON(t, router, http.MethodPost, "/rag/query", `{"topK": 3}`); w.Code != http.StatusBadRequest {
		t.Errorf("missing question: expected 400, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/rag/query",
		`{"question": "hi", "mode": "poetry"}`); w.Code != http.StatusBadRequest {
		t.Errorf("unknown mode: expected 400, got %d", w.Code)
	}
	if w := doJSON(t, router, http.MethodPost, "/rag/query",
		`{"question": "hi", "topK": -1}`); w.Code != http.StatusBadRequest {
		t.Errorf("negative topK: expected 400, got %d", w.Code)
	}
}

func TestServer_QueryNoMatchesStillAnswers(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/rag/query",
		`{"question": "zxqv qwerty"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"sources":[]`) {
		t.Errorf("expected an empty sources array, got %s", w.Body.String())
	}
}

func TestServer_AddDocument(t *testing.T) {
	s, store := newTestServer(t)
	router := s.Router()

	w := doJSON(t, router, http.MethodPost, "/rag/documents",
		`{"title": "Returns", "docType": "faq", "content": "Returns within 14 days."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	docs, _ := store.ListAll(context.Background())
	if len(docs) != 1 || docs[0].ID == "" {
		t.Errorf("expected one stored document with a generated id, got %+v", docs)
	}

	w = doJSON(t, router, http.MethodPost, "/rag/documents",
		`{"id": "`+docs[0].ID+`", "title": "Dup", "docType": "faq", "content": "x"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate id: expected 409, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/rag/documents", `{"title": "no content"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields: expected 400, got %d", w.Code)
	}
}

func TestServer_ListDocumentsEmptyIsArray(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Router(), http.MethodGet, "/rag/documents", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"documents":[]`) {
		t.Errorf("expected an empty array, got %s", w.Body.String())
	}
}

func TestServer_RecommendationsDemoToggle(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	// DemoInventory defaults to false in this test server, so the list is
	// empty unless asked for explicitly.
	w := doJSON(t, router, http.MethodGet, "/materials/inventory/recommendations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Recommendations []entities.Recommendation `json:"recommendations"`
		Demo            bool                      `json:"demo"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Demo || len(resp.Recommendations) != 0 {
		t.Errorf("expected empty non-demo response, got %+v", resp)
	}

	w = doJSON(t, router, http.MethodGet, "/materials/inventory/recommendations?demo=1", "")
	json.Unmarshal(w.Body.Bytes(), &resp)
	if !resp.Demo || len(resp.Recommendations) != 4 {
		t.Errorf("expected 4 demo recommendations, got %d (demo=%v)", len(resp.Recommendations), resp.Demo)
	}
}

func TestServer_RecommendationsForSuppliedItems(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/materials/inventory/recommendations",
		`{"items": [{"materialId": "m1", "materialName": "Sheet", "avgDailyDemand": 22,
		  "demandStdDev": 5, "leadTimeDays": 14, "safetyStockDays": 5, "onHandQty": 185}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"action":"REORDER"`) {
		t.Errorf("expected a REORDER action, got %s", w.Body.String())
	}

	w = doJSON(t, s.Router(), http.MethodPost, "/materials/inventory/recommendations",
		`{"items": [{"materialId": "bad", "avgDailyDemand": -1}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid stats: expected 400, got %d", w.Code)
	}
}

func TestServer_Forecast(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/materials/forecast",
		`{"materialId": "m1", "horizonDays": 7, "history": [
			{"date": "2026-08-01", "quantityUsed": 10},
			{"date": "2026-08-02", "quantityUsed": 12}
		]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Forecast []entities.ForecastPoint `json:"forecast"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Forecast) != 7 {
		t.Errorf("expected 7 forecast points, got %d", len(resp.Forecast))
	}

	w = doJSON(t, s.Router(), http.MethodPost, "/materials/forecast",
		`{"materialId": "m1", "history": [{"date": "not-a-date", "quantityUsed": 1}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date: expected 400, got %d", w.Code)
	}
}

func TestServer_ImportUsage(t *testing.T) {
	s, _ := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/materials/import-usage",
		`{"materialId": "m1", "records": [{"date": "2026-08-01T00:00:00Z", "quantityUsed": 3}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"imported":1`) {
		t.Errorf("expected import count, got %s", w.Body.String())
	}
}

func TestServer_SolarScenario(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	body := `{"site": {"latitude": -26.2, "longitude": 28.0},
		"roof": {"tiltDeg": 25, "azimuthDeg": 0, "shadingFactor": 0.1},
		"systemSizeKw": 5}`

	w := doJSON(t, router, http.MethodPost, "/solar/scenarios", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"annualKwh":8000`) {
		t.Errorf("expected the simulated estimate, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/solar/scenarios",
		`{"site": {}, "roof": {"shadingFactor": 2}, "systemSizeKw": 5}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad shading factor: expected 400, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/solar/scenarios",
		`{"site": {}, "roof": {}, "systemSizeKw": 0}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("zero system size: expected 400, got %d", w.Code)
	}
}

func TestServer_SolarScenarioUpstreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := docstore.NewMemory()
	s := NewServer(Config{
		Log:        logger.NewNop(),
		Forecaster: usecases.NewForecaster(),
		Reorder:    usecases.NewReorderEngine(0),
		Retriever:  usecases.NewRetriever(store, nil),
		Composer:   usecases.NewComposer(nil),
		Store:      store,
		Solar:      &fakeSimulator{err: errors.New("connection refused")},
	})

	w := doJSON(t, s.Router(), http.MethodPost, "/solar/scenarios",
		`{"site": {}, "roof": {"shadingFactor": 0.1}, "systemSizeKw": 5}`)
	if w.Code != http.StatusBadGateway {
		t.Errorf("upstream failure: expected 502, got %d", w.Code)
	}
}

func TestServer_AnalyticsSummary(t *testing.T) {
	s, _ := newTestServer(t)
	w := doJSON(t, s.Router(), http.MethodGet, "/analytics/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, key := range []string{"materials", "solar", "support"} {
		if !strings.Contains(body, `"`+key+`"`) {
			t.Errorf("expected %s section in summary, got %s", key, body)
		}
	}
}

func TestServer_DraftEmail(t *testing.T) {
	s, _ := newTestServer(t)
	router := s.Router()

	w := doJSON(t, router, http.MethodPost, "/support/draft-email",
		`{"type": "quote_follow_up", "customerName": "Pieter"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Following up on your solar quote") {
		t.Errorf("expected the follow-up subject, got %s", w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/support/draft-email",
		`{"type": "bogus", "customerName": "X"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown type: expected 400, got %d", w.Code)
	}
}
