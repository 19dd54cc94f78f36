package helper

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"Rota-App/internal/domain/model"
)

// ToPoint model.LatLng を orb.Point ([lng, lat]) に変換
func ToPoint(l model.LatLng) orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// FromPoint orb.Point を model.LatLng に変換
func FromPoint(p orb.Point) model.LatLng {
	return model.LatLng{Lat: p.Lat(), Lng: p.Lon()}
}

// Centroid は座標群の算術平均を返す。空の場合はfalse
func Centroid(points orb.MultiPoint) (model.LatLng, bool) {
	if len(points) == 0 {
		return model.LatLng{}, false
	}
	c, _ := planar.CentroidArea(points)
	return FromPoint(c), true
}
