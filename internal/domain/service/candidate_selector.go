package service

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/helper"
	"Rota-App/internal/domain/model"
)

// CandidateSelector はコーパスから旅程の候補スポットを選定する
type CandidateSelector interface {
	SelectCandidates(prefs *model.RoutePreferences, places []*model.Place) (*model.CandidateSet, error)
}

type candidateSelector struct {
	taxonomy     *model.CategoryTaxonomy
	candidateCap int
}

// NewCandidateSelector は新しいCandidateSelectorを作成する
func NewCandidateSelector(taxonomy *model.CategoryTaxonomy) CandidateSelector {
	if taxonomy == nil {
		taxonomy = model.DefaultCategoryTaxonomy()
	}
	return &candidateSelector{
		taxonomy:     taxonomy,
		candidateCap: model.ActivityCandidateCap,
	}
}

// SelectCandidates はカテゴリ・位置・予算で候補を絞り込み、人気度順に並べる。
// アクティビティ候補が0件の場合は model.ErrNoCandidates を返す
func (s *candidateSelector) SelectCandidates(prefs *model.RoutePreferences, places []*model.Place) (*model.CandidateSet, error) {
	interestTokens := s.taxonomy.CategoriesFor(prefs.Activities)

	var activities, lodgings []*model.Place
	var locationMatched int
	for _, p := range places {
		if p == nil {
			continue
		}
		if !s.matchesLocation(prefs, p) {
			continue
		}
		locationMatched++
		if !s.matchesBudget(prefs.Budget, p) {
			continue
		}

		isLodging := helper.MatchesCategory(p.Category, s.taxonomy.LodgingCategories)
		if isLodging {
			lodgings = append(lodgings, p)
			continue
		}
		if s.taxonomy.HasLodgingKeyword(p.Category, p.Name) {
			continue
		}
		if helper.MatchesCategory(p.Category, interestTokens) {
			activities = append(activities, p)
		}
	}

	log.Debug().
		Int("scanned", len(places)).
		Int("location_matched", locationMatched).
		Int("activities", len(activities)).
		Int("lodgings", len(lodgings)).
		Str("taxonomy", s.taxonomy.Version).
		Msg("📊 候補選定の集計")

	if len(activities) == 0 {
		return nil, fmt.Errorf("%w (%s/%s)", model.ErrNoCandidates, prefs.District, prefs.Province)
	}

	helper.SortByPopularity(activities)
	helper.SortByPopularity(lodgings)
	if len(activities) > s.candidateCap {
		activities = activities[:s.candidateCap]
	}

	log.Info().Int("activities", len(activities)).Int("lodgings", len(lodgings)).Msg("✅ 候補スポット選定完了")
	return &model.CandidateSet{Activities: activities, Lodgings: lodgings}, nil
}

// matchesLocation は3段階で位置を判定する。最初に適用可能な段階の結果だけを使う
func (s *candidateSelector) matchesLocation(prefs *model.RoutePreferences, p *model.Place) bool {
	reqProvince := normalize(prefs.Province)
	reqDistrict := normalize(prefs.District)
	placeProvince := normalize(p.Province)
	placeDistrict := normalize(p.District)

	// 1. 行政区画が揃っていれば必ずそれで判定
	if placeProvince != "" && placeDistrict != "" {
		return strings.Contains(placeProvince, reqProvince) && strings.Contains(placeDistrict, reqDistrict)
	}

	// 2. 双方に座標があれば距離で判定
	if prefs.HasLocation() && p.HasLocation() {
		return helper.HaversineDistance(prefs.ToLatLng(), p.ToLatLng()) <= model.ProximityRadiusKm
	}

	// 3. 住所テキスト
	address := normalize(p.Address)
	if address == "" {
		return false
	}
	return (reqDistrict != "" && strings.Contains(address, reqDistrict)) ||
		(reqProvince != "" && strings.Contains(address, reqProvince))
}

func (s *candidateSelector) matchesBudget(budget string, p *model.Place) bool {
	return p.Price == budget ||
		s.taxonomy.IsUnsetPrice(p.Price) ||
		s.taxonomy.IsBudgetExempt(p.Category) ||
		helper.MatchesCategory(p.Category, s.taxonomy.LodgingCategories)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
