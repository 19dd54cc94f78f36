package service

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/metrics"
)

// FallbackLodgingPlaceholder はフォールバック時に宿泊先を選べなかった場合の表示名
const FallbackLodgingPlaceholder = "Önerilen Otel (Sistem Hatası)"

// ItineraryPlanningService は候補選定からオラクル呼び出し、後処理までをまとめる
type ItineraryPlanningService interface {
	PlanItinerary(ctx context.Context, prefs *model.RoutePreferences) (*model.Itinerary, error)
}

// ItineraryPlanningDeps はItineraryPlanningServiceの依存関係
type ItineraryPlanningDeps struct {
	Places          repository.PlacesRepository
	PlanGenerator   repository.PlanGenerationRepository
	Selector        CandidateSelector
	Optimizer       RouteOptimizer
	LodgingSelector LodgingSelector
	Fallback        FallbackPlanner
	OracleTimeout   time.Duration
}

type itineraryPlanningService struct {
	deps ItineraryPlanningDeps
}

// NewItineraryPlanningService は新しいItineraryPlanningServiceを作成する
func NewItineraryPlanningService(deps ItineraryPlanningDeps) ItineraryPlanningService {
	if deps.OracleTimeout <= 0 {
		deps.OracleTimeout = 30 * time.Second
	}
	return &itineraryPlanningService{deps: deps}
}

func (s *itineraryPlanningService) PlanItinerary(ctx context.Context, prefs *model.RoutePreferences) (*model.Itinerary, error) {
	start := time.Now()
	log.Info().Strs("activities", prefs.Activities).Str("province", prefs.Province).Str("district", prefs.District).
		Int("days", prefs.Days).Str("budget", prefs.Budget).Bool("accommodation", prefs.WithAccommodation).
		Msg("🚀 旅程生成開始")

	places, err := s.deps.Places.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("スポット一覧の取得に失敗: %w", err)
	}

	candidates, err := s.deps.Selector.SelectCandidates(prefs, places)
	if err != nil {
		return nil, err
	}

	source := model.PlanSourceOracle
	days, points, err := s.planWithOracle(ctx, candidates, prefs)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("旅程生成が中断されました: %w", ctxErr)
		}
		log.Warn().Err(err).Msg("⚠️ オラクルが失敗したためフォールバックで旅程を生成します")
		source = model.PlanSourceFallback
		days, points = s.deps.Fallback.Plan(candidates.Activities, prefs.Days)
	}

	itinerary := &model.Itinerary{Days: days, Source: source}
	if lodging := s.deps.LodgingSelector.SelectLodging(points, candidates.Lodgings, prefs.WithAccommodation); lodging != nil {
		itinerary.Days = s.deps.LodgingSelector.AppendLodging(itinerary.Days, lodging)
		itinerary.Lodging = lodging
		name := lodging.Place.Name
		itinerary.Day1Hotel = &name
	} else if prefs.WithAccommodation && source == model.PlanSourceFallback {
		placeholder := FallbackLodgingPlaceholder
		itinerary.Day1Hotel = &placeholder
	}

	metrics.ObservePlanSource(source)
	log.Info().Str("source", source).Int("days", len(itinerary.Days)).Dur("elapsed", time.Since(start)).
		Msg("🎉 旅程生成完了")
	return itinerary, nil
}

// planWithOracle はオラクルでプランを作り、最適化と日数の正規化を行う
func (s *itineraryPlanningService) planWithOracle(ctx context.Context, candidates *model.CandidateSet, prefs *model.RoutePreferences) ([]model.DayPlan, orb.MultiPoint, error) {
	oracleCtx, cancel := context.WithTimeout(ctx, s.deps.OracleTimeout)
	defer cancel()

	raw, err := s.deps.PlanGenerator.GeneratePlan(oracleCtx, candidates.Activities, prefs)
	if err != nil {
		return nil, nil, err
	}
	if raw == nil || len(raw.Days) == 0 {
		return nil, nil, fmt.Errorf("%w: 空のプラン", model.ErrOracleFailure)
	}

	if len(raw.Days) > prefs.Days {
		log.Warn().Int("returned", len(raw.Days)).Int("requested", prefs.Days).Msg("⚠️ オラクルが余分な日を返したため切り詰めます")
		raw = &model.RawPlan{Days: raw.Days[:prefs.Days]}
	}

	days, points := s.deps.Optimizer.Optimize(raw, candidates.Activities)
	days, extra := s.padMissingDays(days, candidates.Activities, prefs.Days)
	return days, append(points, extra...), nil
}

// padMissingDays は日番号を1始まりに振り直し、足りない日をフォールバックの割り当てで埋める。
// 埋める際はオラクルが使っていないスポットを優先する
func (s *itineraryPlanningService) padMissingDays(days []model.DayPlan, activities []*model.Place, want int) ([]model.DayPlan, orb.MultiPoint) {
	for i := range days {
		days[i].Day = i + 1
	}
	if len(days) >= want {
		return days, nil
	}

	used := make(map[string]struct{})
	for _, day := range days {
		for _, stop := range day.Activities {
			used[stop.PlaceID] = struct{}{}
		}
	}
	unused := make([]*model.Place, 0, len(activities))
	for _, p := range activities {
		if _, ok := used[p.ID]; !ok {
			unused = append(unused, p)
		}
	}
	if len(unused) == 0 {
		unused = activities
	}

	missing := want - len(days)
	log.Warn().Int("missing", missing).Msg("⚠️ オラクルの日数が不足しているためフォールバックで補完します")
	extraDays, extra := s.deps.Fallback.Plan(unused, missing)
	for _, day := range extraDays {
		day.Day = len(days) + 1
		days = append(days, day)
	}
	return days, extra
}
