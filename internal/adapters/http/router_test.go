package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/TomMcLan/luggage-packing-app/internal/config"
	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
)

type detectionFake struct {
	report *domain.DetectionReport
	err    error
}

func (f detectionFake) Detect(context.Context, []byte, string) (*domain.DetectionReport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.report, nil
}

type simulationFake struct {
	result *domain.SimulationResult
	err    error
}

func (f simulationFake) Simulate(context.Context, domain.SimulationRequest) (*domain.SimulationResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type recommendFake struct {
	result *domain.RecommendationResult
	err    error
}

func (f recommendFake) Recommend(_ context.Context, _ []domain.RecommendationItem, _, sessionID string) (*domain.RecommendationResult, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if sessionID == "" {
		sessionID = "sess-new"
	}
	return f.result, sessionID, nil
}

func testConfig() config.Config {
	return config.Config{
		ServiceName:       "packing-api",
		APIRateLimitRPS:   100,
		APIRateLimitBurst: 100,
		AIRateLimitRPS:    100,
		AIRateLimitBurst:  100,
		MaxInFlight:       8,
	}
}

func newTestHandler(cfg config.Config, detection detectionFake, simulation simulationFake, recommend recommendFake) http.Handler {
	return NewRouter(
		cfg,
		detection,
		simulation,
		recommend,
		catalog.NewContainerCatalog(),
		catalog.NewMethodCatalog(),
		nil,
	).Handler()
}

func defaultHandler() http.Handler {
	return newTestHandler(testConfig(), detectionFake{}, simulationFake{}, recommendFake{})
}

func TestHealthEndpoint(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	res := httptest.NewRecorder()
	defaultHandler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode health response: %v", err)
	}
	if body["status"] != "ok" || body["service"] != "packing-api" {
		t.Fatalf("unexpected health payload: %v", body)
	}
	if res.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected a request id header")
	}
}

func TestListLuggageReturnsCatalog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/luggage", nil)
	res := httptest.NewRecorder()
	defaultHandler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	var body struct {
		Luggage []domain.Container `json:"luggage"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode luggage response: %v", err)
	}
	if len(body.Luggage) != 4 || body.Luggage[0].ID != "underseat" {
		t.Fatalf("unexpected luggage catalog: %+v", body.Luggage)
	}
}

func TestSelectLuggageKnownAndUnknown(t *testing.T) {
	handler := defaultHandler()

	payload, _ := json.Marshal(map[string]string{"luggage_size": "carryon"})
	req := httptest.NewRequest(http.MethodPost, "/api/luggage/select", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 for known size, got %d", res.Code)
	}

	payload, _ = json.Marshal(map[string]string{"luggage_size": "steamer-trunk"})
	req = httptest.NewRequest(http.MethodPost, "/api/luggage/select", bytes.NewReader(payload))
	res = httptest.NewRecorder()
	handler.ServeHTTP(res, req)
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown size, got %d", res.Code)
	}
}

func TestListMethodsReturnsFullCatalog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/methods", nil)
	res := httptest.NewRecorder()
	defaultHandler().ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	var body struct {
		Methods []domain.PackingMethod `json:"methods"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode methods response: %v", err)
	}
	if len(body.Methods) != 8 {
		t.Fatalf("expected 8 methods, got %d", len(body.Methods))
	}
}

func TestDetectItemsRequiresImageField(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("note", "no image here")
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/items/detect", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	res := httptest.NewRecorder()
	defaultHandler().ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without image field, got %d", res.Code)
	}
}

func TestDetectItemsRejectsNonImageUpload(t *testing.T) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("image", "notes.txt")
	_, _ = part.Write([]byte("plain text"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/items/detect", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	res := httptest.NewRecorder()
	defaultHandler().ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image upload, got %d", res.Code)
	}
}

func imageUploadRequest(t *testing.T) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="photo.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	_, _ = part.Write([]byte("jpeg-bytes"))
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/items/detect", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestDetectItemsReturnsReport(t *testing.T) {
	handler := newTestHandler(testConfig(), detectionFake{report: &domain.DetectionReport{
		Items:    []domain.DetectedItem{{Name: "t-shirt", Category: domain.CategoryClothing}},
		ImageURL: "http://localhost/uploads/img-1.jpg",
	}}, simulationFake{}, recommendFake{})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, imageUploadRequest(t))

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}
	var report domain.DetectionReport
	if err := json.NewDecoder(res.Body).Decode(&report); err != nil {
		t.Fatalf("decode detection report: %v", err)
	}
	if len(report.Items) != 1 || report.Items[0].Name != "t-shirt" {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestDetectItemsMapsTemporaryErrorTo503(t *testing.T) {
	handler := newTestHandler(testConfig(), detectionFake{
		err: domain.WrapError(domain.ErrTemporary, "vision detection", errors.New("circuit open")),
	}, simulationFake{}, recommendFake{})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, imageUploadRequest(t))

	if res.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 for temporary vision failure, got %d", res.Code)
	}
}

func TestSimulateMapsDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"no items", domain.WrapError(domain.ErrNoItemsDetected, "simulate", errors.New("empty")), http.StatusBadRequest},
		{"unknown container", domain.WrapError(domain.ErrContainerNotFound, "simulate", errors.New("size")), http.StatusNotFound},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := newTestHandler(testConfig(), detectionFake{}, simulationFake{err: tc.err}, recommendFake{})
			payload, _ := json.Marshal(domain.SimulationRequest{LuggageSize: "carryon"})
			req := httptest.NewRequest(http.MethodPost, "/api/packing/simulate", bytes.NewReader(payload))
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)
			if res.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, res.Code)
			}
		})
	}
}

func TestSimulateReturnsResult(t *testing.T) {
	handler := newTestHandler(testConfig(), detectionFake{}, simulationFake{result: &domain.SimulationResult{
		LuggageSize: "carryon",
		Layouts:     make([]domain.Layout, 5),
	}}, recommendFake{})

	payload, _ := json.Marshal(domain.SimulationRequest{
		Items:       []domain.RawDetectedItem{{Name: "t-shirt"}},
		LuggageSize: "carryon",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/packing/simulate", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	var result domain.SimulationResult
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatalf("decode simulation result: %v", err)
	}
	if len(result.Layouts) != 5 || result.LuggageSize != "carryon" {
		t.Fatalf("unexpected simulation payload: %+v", result)
	}
}

func TestRecommendationsEchoSessionID(t *testing.T) {
	handler := newTestHandler(testConfig(), detectionFake{}, simulationFake{}, recommendFake{
		result: &domain.RecommendationResult{TotalItems: 1},
	})

	payload, _ := json.Marshal(map[string]any{
		"items":        []map[string]any{{"name": "t-shirt", "category": "clothing"}},
		"luggage_size": "carryon",
		"session_id":   "sess-42",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	var body map[string]any
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode recommendation response: %v", err)
	}
	if body["session_id"] != "sess-42" {
		t.Fatalf("expected session id echoed, got %v", body["session_id"])
	}
}

func TestRecommendationsMapInvalidInputTo400(t *testing.T) {
	handler := newTestHandler(testConfig(), detectionFake{}, simulationFake{}, recommendFake{
		err: domain.WrapError(domain.ErrInvalidInput, "recommend", errors.New("empty items")),
	})

	payload, _ := json.Marshal(map[string]any{"items": []any{}})
	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewReader(payload))
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/api/methods", nil)
	res := httptest.NewRecorder()
	defaultHandler().ServeHTTP(res, req)
	if res.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.Code)
	}
}
