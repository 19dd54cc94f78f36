package service

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"Rota-App/internal/domain/helper"
	"Rota-App/internal/domain/model"
)

// FallbackPlanner はオラクルが使えないときに候補を順番に割り当てて旅程を作る
type FallbackPlanner interface {
	Plan(activities []*model.Place, days int) ([]model.DayPlan, orb.MultiPoint)
}

type fallbackPlanner struct {
	taxonomy *model.CategoryTaxonomy
}

// NewFallbackPlanner は新しいFallbackPlannerを作成する
func NewFallbackPlanner(taxonomy *model.CategoryTaxonomy) FallbackPlanner {
	if taxonomy == nil {
		taxonomy = model.DefaultCategoryTaxonomy()
	}
	return &fallbackPlanner{taxonomy: taxonomy}
}

// Plan は宿泊系を除いた候補を1日3枠にラウンドロビンで割り当てる。
// 候補が尽きたら先頭に戻るため、同じスポットが再登場することがある
func (f *fallbackPlanner) Plan(activities []*model.Place, days int) ([]model.DayPlan, orb.MultiPoint) {
	pool := make([]*model.Place, 0, len(activities))
	for _, p := range activities {
		if p != nil && !f.taxonomy.HasLodgingKeyword(p.Category, "") {
			pool = append(pool, p)
		}
	}
	if len(pool) == 0 {
		for _, p := range activities {
			if p != nil {
				pool = append(pool, p)
			}
		}
	}

	result := make([]model.DayPlan, 0, days)
	var points orb.MultiPoint
	next := 0
	for day := 1; day <= days; day++ {
		stops := make([]model.ActivityStop, 0, len(model.SlotTimes))
		for _, slot := range model.SlotTimes {
			if len(pool) == 0 {
				break
			}
			if next >= len(pool) {
				next = 0
			}
			p := pool[next]
			next++

			stop := model.ActivityStop{
				Time:        slot,
				Place:       p.Name,
				PlaceID:     p.ID,
				Description: fmt.Sprintf(model.FallbackDescriptionFmt, p.Name),
				Category:    p.Category,
			}
			if strings.TrimSpace(stop.Category) == "" {
				stop.Category = model.FallbackCategory
			}
			enrichStop(&stop, p)
			if stop.HasLocation() {
				points = append(points, helper.ToPoint(stop.ToLatLng()))
			}
			stops = append(stops, stop)
		}
		result = append(result, model.DayPlan{Day: day, Activities: stops})
	}
	return result, points
}
