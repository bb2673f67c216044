package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/TomMcLan/luggage-packing-app/internal/core/catalog"
	"github.com/TomMcLan/luggage-packing-app/internal/core/domain"
	"github.com/TomMcLan/luggage-packing-app/internal/core/packing"
	"github.com/TomMcLan/luggage-packing-app/internal/core/sizing"
)

type SimulatePackingUseCase struct {
	calibrator *sizing.Calibrator
	estimator  *sizing.Estimator
	engine     *packing.Engine
	containers *catalog.ContainerCatalog
}

func NewSimulatePackingUseCase(
	calibrator *sizing.Calibrator,
	estimator *sizing.Estimator,
	engine *packing.Engine,
	containers *catalog.ContainerCatalog,
) *SimulatePackingUseCase {
	return &SimulatePackingUseCase{
		calibrator: calibrator,
		estimator:  estimator,
		engine:     engine,
		containers: containers,
	}
}

// Simulate runs the full geometric pipeline: normalize detections, calibrate
// scale, estimate physical dimensions and generate the five strategy layouts
// with a container fit analysis.
func (uc *SimulatePackingUseCase) Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.SimulationResult, error) {
	if len(req.Items) == 0 {
		return nil, domain.WrapError(domain.ErrNoItemsDetected, "simulate packing", errors.New("empty item list"))
	}

	container, ok := uc.containers.Get(req.LuggageSize)
	if !ok {
		return nil, domain.WrapError(
			domain.ErrContainerNotFound,
			"simulate packing",
			fmt.Errorf("unknown luggage size %q", req.LuggageSize),
		)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := domain.NormalizeDetectedItems(req.Items)
	calibration := uc.calibrator.Calibrate(req.ReferenceObject)
	dimensioned := uc.estimator.EstimateAll(items, calibration)
	layouts := uc.engine.GenerateLayouts(dimensioned, container)

	return &domain.SimulationResult{
		Layouts:     layouts,
		Calibration: calibration,
		Items:       dimensioned,
		FitAnalysis: uc.containers.FitAnalysis(container, dimensioned),
		LuggageSize: req.LuggageSize,
	}, nil
}
