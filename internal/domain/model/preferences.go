package model

// RoutePreferences 旅程生成リクエスト
type RoutePreferences struct {
	Activities        []string `json:"activities" binding:"required"`
	Province          string   `json:"province" binding:"required"`
	District          string   `json:"district" binding:"required"`
	Days              int      `json:"days" binding:"required"`
	WithAccommodation bool     `json:"withAccommodation"`
	Budget            string   `json:"budget" binding:"required"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
}

// HasLocation リクエストに有効な座標が含まれるかチェック
func (p *RoutePreferences) HasLocation() bool {
	return p.Latitude != nil && p.Longitude != nil && *p.Latitude != 0 && *p.Longitude != 0
}

// ToLatLng リクエスト座標をLatLng型に変換（HasLocationがfalseの場合はゼロ値）
func (p *RoutePreferences) ToLatLng() LatLng {
	if !p.HasLocation() {
		return LatLng{}
	}
	return LatLng{Lat: *p.Latitude, Lng: *p.Longitude}
}
