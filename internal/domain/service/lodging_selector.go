package service

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/helper"
	"Rota-App/internal/domain/model"
)

// LodgingSelector は旅程全体の重心に近く評価の高い宿泊先を1つ選ぶ
type LodgingSelector interface {
	SelectLodging(points orb.MultiPoint, lodgings []*model.Place, requested bool) *model.ScoredLodging
	AppendLodging(days []model.DayPlan, lodging *model.ScoredLodging) []model.DayPlan
}

type lodgingSelector struct {
	ratingWeight float64
}

// NewLodgingSelector は新しいLodgingSelectorを作成する。ratingWeightは評価値1点あたりの距離換算(km)
func NewLodgingSelector(ratingWeight float64) LodgingSelector {
	return &lodgingSelector{ratingWeight: ratingWeight}
}

// SelectLodging はスコア(重心からの距離 - 重み×評価値)が最小の宿泊先を返す。
// 宿泊が不要、候補なし、座標が1つもない場合はnil
func (s *lodgingSelector) SelectLodging(points orb.MultiPoint, lodgings []*model.Place, requested bool) *model.ScoredLodging {
	if !requested || len(lodgings) == 0 {
		return nil
	}
	center, ok := helper.Centroid(points)
	if !ok {
		log.Warn().Msg("⚠️ 座標が解決できなかったため宿泊先を選定できません")
		return nil
	}

	var best *model.ScoredLodging
	bestScore := math.Inf(1)
	for _, h := range lodgings {
		if h == nil || !h.HasLocation() {
			continue
		}
		dist := helper.HaversineDistance(center, h.ToLatLng())
		score := dist - h.Rating*s.ratingWeight
		if score < bestScore {
			bestScore = score
			best = &model.ScoredLodging{Place: h, DistanceKm: dist, Score: score}
		}
	}

	if best == nil {
		log.Warn().Int("lodgings", len(lodgings)).Msg("⚠️ 座標を持つ宿泊候補がありません")
		return nil
	}
	log.Info().
		Str("hotel", best.Place.Name).
		Float64("distance_km", best.DistanceKm).
		Float64("score", best.Score).
		Int("evaluated", len(lodgings)).
		Msg("🏨 宿泊先を選定")
	return best
}

// AppendLodging は各日の最後に宿泊先への帰着を追加した新しいスライスを返す
func (s *lodgingSelector) AppendLodging(days []model.DayPlan, lodging *model.ScoredLodging) []model.DayPlan {
	if lodging == nil || lodging.Place == nil {
		return days
	}
	h := lodging.Place
	result := make([]model.DayPlan, len(days))
	for i, day := range days {
		lat, lng := h.Latitude, h.Longitude
		stops := make([]model.ActivityStop, len(day.Activities), len(day.Activities)+1)
		copy(stops, day.Activities)
		stops = append(stops, model.ActivityStop{
			Time:          model.LodgingReturnTime,
			Place:         h.Name,
			PlaceID:       h.ID,
			Description:   model.LodgingReturnDescription,
			Category:      model.LodgingReturnCategory,
			Lat:           &lat,
			Lng:           &lng,
			ImageURL:      h.ImageURL,
			IsHotelReturn: true,
		})
		result[i] = model.DayPlan{Day: day.Day, Activities: stops}
	}
	return result
}
