package planningfx

import (
	"go.uber.org/fx"

	"Rota-App/internal/config"
	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/domain/service"
	"Rota-App/internal/usecase"
)

var Module = fx.Provide(
	providePlanningService, provideItineraryUseCase)

func providePlanningService(
	cfg config.Config,
	taxonomy *model.CategoryTaxonomy,
	places repository.PlacesRepository,
	planGenerator repository.PlanGenerationRepository,
) service.ItineraryPlanningService {
	return service.NewItineraryPlanningService(service.ItineraryPlanningDeps{
		Places:          places,
		PlanGenerator:   planGenerator,
		Selector:        service.NewCandidateSelector(taxonomy),
		Optimizer:       service.NewRouteOptimizer(),
		LodgingSelector: service.NewLodgingSelector(model.DefaultLodgingRatingWeight),
		Fallback:        service.NewFallbackPlanner(taxonomy),
		OracleTimeout:   cfg.OracleTimeout,
	})
}

func provideItineraryUseCase(
	cfg config.Config,
	taxonomy *model.CategoryTaxonomy,
	planner service.ItineraryPlanningService,
	store repository.ItineraryProposalRepository,
) usecase.ItineraryUseCase {
	return usecase.NewItineraryUseCase(planner, store, taxonomy, usecase.ItineraryUseCaseConfig{
		MaxTripDays: cfg.MaxTripDays,
		ProposalTTL: cfg.ProposalTTL,
	})
}
