// Package bootstrap wires the adapters to the core: catalogs, sizing,
// packing engine, vision client, storage and the use cases behind the API.
package bootstrap

import (
	"fmt"

	"github.com/TomMcLan/luggage-packing-app/internal/config"
	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/packing"
	"github.com/TomMcLan/luggage-packing-app/internal/core/ports"
	"github.com/TomMcLan/luggage-packing-app/internal/core/sizing"
	"github.com/TomMcLan/luggage-packing-app/internal/core/usecase"
	"github.com/TomMcLan/luggage-packing-app/internal/infrastructure/repository/memory"
	"github.com/TomMcLan/luggage-packing-app/internal/infrastructure/resilience"
	"github.com/TomMcLan/luggage-packing-app/internal/infrastructure/storage/localfs"
	"github.com/TomMcLan/luggage-packing-app/internal/infrastructure/vision/openai"
)

type App struct {
	Config config.Config

	Containers *catalog.ContainerCatalog
	Methods    *catalog.MethodCatalog

	DetectUC    ports.ItemDetectionService
	SimulateUC  ports.PackingSimulationService
	RecommendUC ports.MethodRecommendationService
}

func New(cfg config.Config) (*App, error) {
	images, err := localfs.New(cfg.StoragePath, cfg.PublicBaseURL)
	if err != nil {
		return nil, fmt.Errorf("init image store: %w", err)
	}

	executor := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    cfg.RetryMaxAttempts,
		RetryInitialBackoff: cfg.RetryInitialBackoff,
		RetryMaxBackoff:     cfg.RetryMaxBackoff,
		RetryMultiplier:     2.0,
		BreakerEnabled:      cfg.BreakerEnabled,
		BreakerMinRequests:  uint32(cfg.BreakerMinRequests),
		BreakerFailureRatio: cfg.BreakerFailureRatio,
		BreakerOpenTimeout:  cfg.BreakerOpenTimeout,
	})
	detector := openai.New(cfg.VisionBaseURL, cfg.VisionAPIKey, cfg.VisionModel, executor)

	references := catalog.NewReferenceCatalog()
	containers := catalog.NewContainerCatalog()
	methods := catalog.NewMethodCatalog()
	sessions := memory.NewSessionRepository()

	calibrator := sizing.NewCalibrator(references)
	estimator := sizing.NewEstimator()
	engine := packing.NewEngine()

	return &App{
		Config:     cfg,
		Containers: containers,
		Methods:    methods,

		DetectUC:    usecase.NewDetectItemsUseCase(detector, images, references),
		SimulateUC:  usecase.NewSimulatePackingUseCase(calibrator, estimator, engine, containers),
		RecommendUC: usecase.NewRecommendMethodsUseCase(methods, sessions),
	}, nil
}
