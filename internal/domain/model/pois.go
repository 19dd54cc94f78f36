package model

// LatLng 緯度経度を表す基本的な型
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place 旅行先コーパスの1スポットを表すモデル（読み取り専用）
type Place struct {
	ID               string  `json:"id" firestore:"-" db:"id"`
	Name             string  `json:"name" firestore:"name" db:"name"`
	Category         string  `json:"category" firestore:"category" db:"category"`
	Rating           float64 `json:"rating" firestore:"rating" db:"rating"`
	UserRatingsTotal int     `json:"userRatingsTotal" firestore:"userRatingsTotal" db:"user_ratings_total"`
	Price            string  `json:"price,omitempty" firestore:"price" db:"price"`
	Latitude         float64 `json:"latitude" firestore:"latitude" db:"latitude"`
	Longitude        float64 `json:"longitude" firestore:"longitude" db:"longitude"`
	Address          string  `json:"address,omitempty" firestore:"address" db:"address"`
	Province         string  `json:"province,omitempty" firestore:"province" db:"province"`
	District         string  `json:"district,omitempty" firestore:"district" db:"district"`
	ImageURL         string  `json:"imageUrl,omitempty" firestore:"imageUrl" db:"image_url"`
	Description      string  `json:"description,omitempty" firestore:"description" db:"description"`
}

// HasLocation 座標が設定されているかチェック（0,0は未設定扱い）
func (p *Place) HasLocation() bool {
	return p != nil && p.Latitude != 0 && p.Longitude != 0
}

// ToLatLng Placeの位置情報をLatLng型に変換
func (p *Place) ToLatLng() LatLng {
	return LatLng{Lat: p.Latitude, Lng: p.Longitude}
}

// CandidateSet 候補選定の結果。アクティビティと宿泊先は別集合で保持する
type CandidateSet struct {
	Activities []*Place
	Lodgings   []*Place
}
