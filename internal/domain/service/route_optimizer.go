package service

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/helper"
	"Rota-App/internal/domain/model"
)

// RouteOptimizer はオラクルのプランに座標を付与し、各日の訪問順を地理的に並び替える
type RouteOptimizer interface {
	// Optimize は日ごとのプランと、解決できた全立ち寄り先の座標を返す
	Optimize(raw *model.RawPlan, activities []*model.Place) ([]model.DayPlan, orb.MultiPoint)
}

type routeOptimizer struct{}

// NewRouteOptimizer は新しいRouteOptimizerを作成する
func NewRouteOptimizer() RouteOptimizer {
	return &routeOptimizer{}
}

func (o *routeOptimizer) Optimize(raw *model.RawPlan, activities []*model.Place) ([]model.DayPlan, orb.MultiPoint) {
	if raw == nil {
		return nil, nil
	}
	index := helper.NewPlaceIndex(activities)

	days := make([]model.DayPlan, len(raw.Days))
	var points orb.MultiPoint
	for d, day := range raw.Days {
		stops := make([]model.ActivityStop, len(day.Activities))
		copy(stops, day.Activities)

		for i := range stops {
			p := index.Resolve(stops[i].PlaceID, stops[i].Place)
			if p == nil {
				log.Warn().Int("day", day.Day).Str("place", stops[i].Place).Str("place_id", stops[i].PlaceID).
					Msg("⚠️ 候補に存在しない立ち寄り先です")
				continue
			}
			enrichStop(&stops[i], p)
			if stops[i].HasLocation() {
				points = append(points, helper.ToPoint(stops[i].ToLatLng()))
			}
		}

		if len(stops) > 2 {
			stops = reorderByNearestNeighbor(stops)
			relabelTimes(stops, model.ReorderTimes)
		}
		days[d] = model.DayPlan{Day: day.Day, Activities: stops}
	}

	log.Info().Int("days", len(days)).Int("points", len(points)).Msg("🗺️ ルート最適化完了")
	return days, points
}

// enrichStop はスポット情報から座標・画像を付与し、欠けているIDを補う
func enrichStop(stop *model.ActivityStop, p *model.Place) {
	if p.HasLocation() {
		lat, lng := p.Latitude, p.Longitude
		stop.Lat = &lat
		stop.Lng = &lng
	}
	if p.ImageURL != "" {
		stop.ImageURL = p.ImageURL
	}
	if stop.PlaceID == "" {
		stop.PlaceID = p.ID
	}
}

// reorderByNearestNeighbor は先頭を固定し、最も近い未訪問地点を順に選ぶ。
// 同距離は元の並び順で先のものを選ぶ。座標がなく辿れない地点は元の順序のまま末尾に付ける
func reorderByNearestNeighbor(stops []model.ActivityStop) []model.ActivityStop {
	if len(stops) <= 1 {
		return stops
	}
	ordered := make([]model.ActivityStop, 0, len(stops))
	ordered = append(ordered, stops[0])
	remaining := make([]model.ActivityStop, len(stops)-1)
	copy(remaining, stops[1:])

	current := stops[0]
	for len(remaining) > 0 {
		nearest := -1
		minDist := math.Inf(1)
		if current.HasLocation() {
			for i := range remaining {
				if !remaining[i].HasLocation() {
					continue
				}
				d := helper.HaversineDistance(current.ToLatLng(), remaining[i].ToLatLng())
				if d < minDist {
					minDist = d
					nearest = i
				}
			}
		}
		if nearest == -1 {
			ordered = append(ordered, remaining...)
			break
		}
		current = remaining[nearest]
		ordered = append(ordered, current)
		remaining = append(remaining[:nearest], remaining[nearest+1:]...)
	}
	return ordered
}

// relabelTimes は並び順に合わせて時刻を振り直す。テンプレートを超えた分は最後の時刻を使う
func relabelTimes(stops []model.ActivityStop, times []string) {
	if len(times) == 0 {
		return
	}
	for i := range stops {
		if i < len(times) {
			stops[i].Time = times[i]
		} else {
			stops[i].Time = times[len(times)-1]
		}
	}
}
