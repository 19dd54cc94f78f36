package model

import "time"

// ActivityStop 1日の中の1つの立ち寄り先
type ActivityStop struct {
	Time          string   `json:"time" firestore:"time"`
	Place         string   `json:"place" firestore:"place"`
	PlaceID       string   `json:"place_id" firestore:"place_id"`
	Description   string   `json:"description" firestore:"description"`
	Category      string   `json:"category" firestore:"category"`
	Lat           *float64 `json:"lat,omitempty" firestore:"lat,omitempty"`
	Lng           *float64 `json:"lng,omitempty" firestore:"lng,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty" firestore:"imageUrl,omitempty"`
	IsHotelReturn bool     `json:"isHotelReturn,omitempty" firestore:"isHotelReturn,omitempty"`
}

// HasLocation 座標が解決済みかチェック
func (s *ActivityStop) HasLocation() bool {
	return s.Lat != nil && s.Lng != nil && *s.Lat != 0 && *s.Lng != 0
}

// ToLatLng 立ち寄り先の座標をLatLng型に変換
func (s *ActivityStop) ToLatLng() LatLng {
	if !s.HasLocation() {
		return LatLng{}
	}
	return LatLng{Lat: *s.Lat, Lng: *s.Lng}
}

// DayPlan 1日分のプラン
type DayPlan struct {
	Day        int            `json:"day" firestore:"day"`
	Activities []ActivityStop `json:"activities" firestore:"activities"`
}

// RawPlan オラクルが返した検証済みのプラン（座標などは未付与）
type RawPlan struct {
	Days []DayPlan `json:"days"`
}

// ScoredLodging 選定された宿泊先とそのスコア
type ScoredLodging struct {
	Place      *Place
	DistanceKm float64
	Score      float64
}

// Itinerary クライアントに返す旅程
type Itinerary struct {
	Day1Hotel *string   `json:"day_1_hotel"`
	Days      []DayPlan `json:"days"`

	Source  string         `json:"-"`
	Lodging *ScoredLodging `json:"-"`
}

// ItineraryResponse 旅程生成APIのレスポンス
type ItineraryResponse struct {
	ProposalID string     `json:"proposal_id,omitempty"`
	Source     string     `json:"source"`
	Route      *Itinerary `json:"route"`
}

// ItineraryProposal 再取得用に一時保存される旅程
type ItineraryProposal struct {
	ProposalID  string            `json:"proposal_id"`
	Preferences *RoutePreferences `json:"preferences"`
	Source      string            `json:"source"`
	Route       *Itinerary        `json:"route"`
	CreatedAt   time.Time         `json:"created_at"`
	ExpireAt    time.Time         `json:"expire_at"`
}

// FirestoreItineraryProposal Firestore保存用の構造体
type FirestoreItineraryProposal struct {
	Province          string    `firestore:"province"`
	District          string    `firestore:"district"`
	Activities        []string  `firestore:"activities"`
	Days              int       `firestore:"days"`
	Budget            string    `firestore:"budget"`
	WithAccommodation bool      `firestore:"withAccommodation"`
	Source            string    `firestore:"source"`
	Day1Hotel         *string   `firestore:"day_1_hotel"`
	Plan              []DayPlan `firestore:"plan"`
	CreatedAt         time.Time `firestore:"createdAt"`
	ExpireAt          time.Time `firestore:"expireAt"`
}

// ToFirestoreItineraryProposal ItineraryProposalをFirestore保存用に変換
func (p *ItineraryProposal) ToFirestoreItineraryProposal() *FirestoreItineraryProposal {
	fp := &FirestoreItineraryProposal{
		Source:    p.Source,
		CreatedAt: p.CreatedAt,
		ExpireAt:  p.ExpireAt,
	}
	if p.Preferences != nil {
		fp.Province = p.Preferences.Province
		fp.District = p.Preferences.District
		fp.Activities = p.Preferences.Activities
		fp.Days = p.Preferences.Days
		fp.Budget = p.Preferences.Budget
		fp.WithAccommodation = p.Preferences.WithAccommodation
	}
	if p.Route != nil {
		fp.Day1Hotel = p.Route.Day1Hotel
		fp.Plan = p.Route.Days
	}
	return fp
}

// ToItineraryProposal Firestoreのデータを ItineraryProposal に変換
func (fp *FirestoreItineraryProposal) ToItineraryProposal(proposalID string) *ItineraryProposal {
	return &ItineraryProposal{
		ProposalID: proposalID,
		Preferences: &RoutePreferences{
			Activities:        fp.Activities,
			Province:          fp.Province,
			District:          fp.District,
			Days:              fp.Days,
			WithAccommodation: fp.WithAccommodation,
			Budget:            fp.Budget,
		},
		Source: fp.Source,
		Route: &Itinerary{
			Day1Hotel: fp.Day1Hotel,
			Days:      fp.Plan,
			Source:    fp.Source,
		},
		CreatedAt: fp.CreatedAt,
		ExpireAt:  fp.ExpireAt,
	}
}
