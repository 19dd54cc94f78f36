package helper

import (
	"Rota-App/internal/domain/model"
	"math"
	"sort"
	"strings"
)

const earthRadiusKm = 6371.0

// HaversineDistance は2地点間の距離を計算する (km)
func HaversineDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// HaversineDistancePlace は2つのスポット間の距離を計算する (km)
func HaversineDistancePlace(p1, p2 *model.Place) float64 {
	return HaversineDistance(p1.ToLatLng(), p2.ToLatLng())
}

// MatchesCategory はスポットのカテゴリがトークンのいずれかと部分一致するかチェックする。
// カテゴリがトークンを含む場合と、トークンがカテゴリを含む場合の両方を一致とみなす
func MatchesCategory(category string, tokens []string) bool {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return false
	}
	for _, t := range tokens {
		t = strings.ToLower(t)
		if strings.Contains(c, t) || strings.Contains(t, c) {
			return true
		}
	}
	return false
}

// PopularityScore は評価値×sqrt(レビュー数)で人気度を計算する
func PopularityScore(p *model.Place) float64 {
	reviews := p.UserRatingsTotal
	if reviews < 0 {
		reviews = 0
	}
	return p.Rating * math.Sqrt(float64(reviews))
}

// SortByPopularity は人気度の高い順に並べる（同点は元の順序を保つ）
func SortByPopularity(places []*model.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return PopularityScore(places[i]) > PopularityScore(places[j])
	})
}

// PlaceIndex はIDと名前でスポットを引けるようにしたインデックス
type PlaceIndex struct {
	byID   map[string]*model.Place
	byName map[string]*model.Place
}

// NewPlaceIndex はスポット一覧からインデックスを作成する。重複時は先に現れたものを優先する
func NewPlaceIndex(places []*model.Place) *PlaceIndex {
	idx := &PlaceIndex{
		byID:   make(map[string]*model.Place, len(places)),
		byName: make(map[string]*model.Place, len(places)),
	}
	for _, p := range places {
		if p == nil {
			continue
		}
		if _, ok := idx.byID[p.ID]; !ok && p.ID != "" {
			idx.byID[p.ID] = p
		}
		if _, ok := idx.byName[p.Name]; !ok && p.Name != "" {
			idx.byName[p.Name] = p
		}
	}
	return idx
}

// Resolve はIDで検索し、見つからなければ名前の完全一致で検索する
func (idx *PlaceIndex) Resolve(id, name string) *model.Place {
	if p, ok := idx.byID[id]; ok && id != "" {
		return p
	}
	if p, ok := idx.byName[name]; ok && name != "" {
		return p
	}
	return nil
}
