// Package httpadapter exposes the packing engine over JSON HTTP: the photo
// detection endpoint, the simulation and recommendation paths and the static
// luggage/method catalogs.
package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/TomMcLan/luggage-packing-app/internal/config"
	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
	"github.com/TomMcLan/luggage-packing-app/internal/core/ports"
	"github.com/TomMcLan/luggage-packing-app/internal/observability/metrics"
)

type Router struct {
	cfg        config.Config
	detection  ports.ItemDetectionService
	simulation ports.PackingSimulationService
	methods    ports.MethodRecommendationService
	containers *catalog.ContainerCatalog
	catalog    *catalog.MethodCatalog
	metrics    *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	detection ports.ItemDetectionService,
	simulation ports.PackingSimulationService,
	methods ports.MethodRecommendationService,
	containers *catalog.ContainerCatalog,
	methodCatalog *catalog.MethodCatalog,
	m *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:        cfg,
		detection:  detection,
		simulation: simulation,
		methods:    methods,
		containers: containers,
		catalog:    methodCatalog,
		metrics:    m,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", rt.health)
	mux.HandleFunc("/api/luggage", rt.listLuggage)
	mux.HandleFunc("/api/luggage/select", rt.selectLuggage)
	mux.HandleFunc("/api/items/detect", rt.detectItems)
	mux.HandleFunc("/api/packing/simulate", rt.simulatePacking)
	mux.HandleFunc("/api/recommendations", rt.recommendMethods)
	mux.HandleFunc("/api/methods", rt.listMethods)
	if rt.metrics != nil {
		mux.Handle("/metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = rt.trafficControl(handler)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.cfg.ServiceName, handler)
	}
	handler = accessLogMiddleware(handler)
	handler = requestIDMiddleware(handler)
	return handler
}

func (rt *Router) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": rt.cfg.ServiceName,
	})
}

func (rt *Router) listLuggage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"luggage": rt.containers.All()})
}

func (rt *Router) selectLuggage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		LuggageSize string `json:"luggage_size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	size := strings.TrimSpace(req.LuggageSize)
	if size == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "luggage_size is required"})
		return
	}

	container, ok := rt.containers.Get(size)
	if !ok {
		respondError(w, domain.WrapError(domain.ErrContainerNotFound, "select luggage", fmt.Errorf("size %q", size)))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"selected": container,
	})
}

func (rt *Router) detectItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	maxBytes := rt.cfg.MaxUploadBytes
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'image' is required"})
		return
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mimeType, "image/") {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "only image uploads are accepted"})
		return
	}

	image, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "read image upload"})
		return
	}

	report, err := rt.detection.Detect(r.Context(), image, mimeType)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordDetection(rt.cfg.ServiceName, "error", 0, false)
		}
		respondError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordDetection(rt.cfg.ServiceName, "ok", len(report.Items), report.ReferenceObject.Found)
	}
	writeJSON(w, http.StatusOK, report)
}

func (rt *Router) simulatePacking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	result, err := rt.simulation.Simulate(r.Context(), req)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordSimulation(rt.cfg.ServiceName, "error")
		}
		respondError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordSimulation(rt.cfg.ServiceName, "ok")
		for _, layout := range result.Layouts {
			overflow := 0
			for _, placement := range layout.Positions {
				if placement.Overflowed {
					overflow++
				}
			}
			rt.metrics.RecordLayout(rt.cfg.ServiceName, string(layout.Strategy), layout.SpaceEfficiency, overflow)
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func (rt *Router) recommendMethods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req struct {
		Items       []domain.RecommendationItem `json:"items"`
		LuggageSize string                      `json:"luggage_size"`
		SessionID   string                      `json:"session_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	result, sessionID, err := rt.methods.Recommend(r.Context(), req.Items, req.LuggageSize, req.SessionID)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordRecommendation(rt.cfg.ServiceName, "error")
		}
		respondError(w, err)
		return
	}
	if rt.metrics != nil {
		rt.metrics.RecordRecommendation(rt.cfg.ServiceName, "ok")
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":          sessionID,
		"recommended_methods": result.RecommendedMethods,
		"total_items":         result.TotalItems,
	})
}

func (rt *Router) listMethods(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"methods": rt.catalog.All()})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
