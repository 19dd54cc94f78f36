package model

// InterestConstants はユーザーが選択できる興味カテゴリの定数
const (
	InterestRestaurant    = "restaurant"
	InterestCafe          = "cafe"
	InterestEntertainment = "entertainment"
	InterestCulture       = "culture"
	InterestBeach         = "beach"
)

// BudgetConstants は予算帯の定数（Firestoreのprice値と一致させる）
const (
	BudgetLow  = "Ucuz"
	BudgetMid  = "Orta"
	BudgetHigh = "Pahalı"
)

// SlotTimes はアクティビティに割り当てる時刻テンプレート
var SlotTimes = []string{"10:00", "14:00", "19:00"}

// ReorderTimes は並び替え後に振り直す時刻テンプレート（4枠目まで）
var ReorderTimes = []string{"10:00", "14:00", "19:00", "21:00"}

const (
	// ActivityCandidateCap はオラクルに渡すアクティビティ候補の上限
	ActivityCandidateCap = 60
	// ProximityRadiusKm は座標ベースの位置マッチで許容する半径
	ProximityRadiusKm = 100.0
	// DefaultLodgingRatingWeight は宿泊先スコアの評価値重み
	DefaultLodgingRatingWeight = 0.5

	LodgingReturnTime        = "23:00"
	LodgingReturnCategory    = "accommodation"
	LodgingReturnDescription = "Günün yorgunluğunu atmak için rotanızın merkezindeki en uygun otele dönüş."
	FallbackCategory         = "Gezi"
	FallbackDescriptionFmt   = "%s mekanında keyifli vakit geçirin."
)

// PlanSourceConstants はItineraryがどの経路で生成されたかを表す
const (
	PlanSourceOracle   = "oracle"
	PlanSourceFallback = "fallback"
)

// BudgetNameMap は予算値の表示名
var BudgetNameMap = map[string]string{
	BudgetLow:  "Ucuz",
	BudgetMid:  "Orta",
	BudgetHigh: "Pahalı",
}

// IsValidBudget は予算値が既知の値かチェックする
func IsValidBudget(b string) bool {
	_, ok := BudgetNameMap[b]
	return ok
}
