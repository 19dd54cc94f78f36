package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/domain/service"
)

const defaultMaxTripDays = 14

type ItineraryUseCase interface {
	// GenerateItinerary はリクエストを検証して旅程を生成し、保存先があれば一時保存してレスポンスを返す
	GenerateItinerary(ctx context.Context, prefs *model.RoutePreferences) (*model.ItineraryResponse, error)

	// GetItinerary は指定されたproposal_idの旅程を取得する
	GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error)
}

// ItineraryUseCaseConfig はユースケースの設定値
type ItineraryUseCaseConfig struct {
	MaxTripDays int
	ProposalTTL time.Duration
}

// itineraryUseCaseImpl はItineraryUseCaseの実装
type itineraryUseCaseImpl struct {
	planner  service.ItineraryPlanningService
	store    repository.ItineraryProposalRepository
	taxonomy *model.CategoryTaxonomy
	cfg      ItineraryUseCaseConfig
}

// NewItineraryUseCase は新しいItineraryUseCaseインスタンスを作成
// storeがnilの場合、旅程は保存されずproposal_idも返さない
func NewItineraryUseCase(
	planner service.ItineraryPlanningService,
	store repository.ItineraryProposalRepository,
	taxonomy *model.CategoryTaxonomy,
	cfg ItineraryUseCaseConfig,
) ItineraryUseCase {
	if cfg.MaxTripDays <= 0 {
		cfg.MaxTripDays = defaultMaxTripDays
	}
	if cfg.ProposalTTL <= 0 {
		cfg.ProposalTTL = 2 * time.Hour
	}
	if taxonomy == nil {
		taxonomy = model.DefaultCategoryTaxonomy()
	}
	return &itineraryUseCaseImpl{
		planner:  planner,
		store:    store,
		taxonomy: taxonomy,
		cfg:      cfg,
	}
}

func (u *itineraryUseCaseImpl) GenerateItinerary(ctx context.Context, prefs *model.RoutePreferences) (*model.ItineraryResponse, error) {
	if err := u.validate(prefs); err != nil {
		return nil, err
	}

	itinerary, err := u.planner.PlanItinerary(ctx, prefs)
	if err != nil {
		return nil, err
	}

	response := &model.ItineraryResponse{
		Source: itinerary.Source,
		Route:  itinerary,
	}

	if u.store == nil {
		return response, nil
	}

	// 保存の失敗はリクエスト自体を失敗させない
	saved, err := u.store.SaveItinerary(ctx, prefs, itinerary, u.cfg.ProposalTTL)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ 旅程の保存に失敗しました（レスポンスは返却します）")
		return response, nil
	}
	response.ProposalID = saved.ProposalID

	log.Info().Str("proposal_id", saved.ProposalID).Str("source", itinerary.Source).Int("days", len(itinerary.Days)).Msg("🎉 旅程生成完了")
	return response, nil
}

func (u *itineraryUseCaseImpl) GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error) {
	if u.store == nil {
		return nil, fmt.Errorf("%w: 保存先が設定されていません", model.ErrProposalNotFound)
	}

	proposal, err := u.store.GetItinerary(ctx, proposalID)
	if err != nil {
		return nil, fmt.Errorf("旅程の取得に失敗: %w", err)
	}
	return proposal, nil
}

// validate はリクエストの詳細バリデーションを行う
func (u *itineraryUseCaseImpl) validate(prefs *model.RoutePreferences) error {
	if prefs == nil {
		return &model.ValidationError{Field: "body", Message: "リクエストが空です"}
	}

	if len(prefs.Activities) == 0 {
		return &model.ValidationError{Field: "activities", Message: "少なくとも1つのアクティビティを指定してください"}
	}
	for _, a := range prefs.Activities {
		if !u.taxonomy.IsKnownInterest(a) {
			return &model.ValidationError{Field: "activities", Message: fmt.Sprintf("未知のアクティビティです: %s", a)}
		}
	}

	if strings.TrimSpace(prefs.Province) == "" {
		return &model.ValidationError{Field: "province", Message: "県（il）は必須です"}
	}
	if strings.TrimSpace(prefs.District) == "" {
		return &model.ValidationError{Field: "district", Message: "地区（ilçe）は必須です"}
	}

	if prefs.Days < 1 || prefs.Days > u.cfg.MaxTripDays {
		return &model.ValidationError{Field: "days", Message: fmt.Sprintf("日数は1から%dの範囲で指定してください", u.cfg.MaxTripDays)}
	}

	if !model.IsValidBudget(prefs.Budget) {
		return &model.ValidationError{Field: "budget", Message: "budgetは'Ucuz'、'Orta'、'Pahalı'のいずれかを指定してください"}
	}

	if (prefs.Latitude == nil) != (prefs.Longitude == nil) {
		return &model.ValidationError{Field: "latitude", Message: "緯度と経度は両方指定してください"}
	}
	if prefs.Latitude != nil {
		if *prefs.Latitude < -90 || *prefs.Latitude > 90 {
			return &model.ValidationError{Field: "latitude", Message: "緯度は-90から90の範囲で指定してください"}
		}
		if *prefs.Longitude < -180 || *prefs.Longitude > 180 {
			return &model.ValidationError{Field: "longitude", Message: "経度は-180から180の範囲で指定してください"}
		}
	}

	return nil
}
