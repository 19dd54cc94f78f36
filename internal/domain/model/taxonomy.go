package model

import "strings"

// CategoryTaxonomy 興味カテゴリと施設カテゴリの対応表。
// 候補選定とフォールバックで共有する設定データで、Versionで版を管理する
type CategoryTaxonomy struct {
	Version            string
	InterestCategories map[string][]string
	InterestLabels     map[string]string
	LodgingCategories  []string
	// LodgingKeywords はカテゴリ名・スポット名から宿泊施設を判定するキーワード
	LodgingKeywords []string
	// BudgetExemptKeywords に該当するカテゴリは予算条件を免除される
	BudgetExemptKeywords []string
	// UnsetPriceValues は「価格未設定」とみなすprice値（小文字）
	UnsetPriceValues []string
}

// DefaultCategoryTaxonomy は現行のカテゴリ対応表を返す
func DefaultCategoryTaxonomy() *CategoryTaxonomy {
	return &CategoryTaxonomy{
		Version: "2024-11",
		InterestCategories: map[string][]string{
			InterestRestaurant: {
				"fast_food_restaurant", "pizza_restaurant", "restaurant", "turkish_restaurant",
				"seafood_restaurant", "steak_house", "fine_dining_restaurant", "food",
			},
			InterestCafe: {"cafe", "coffee_shop", "bakery"},
			InterestEntertainment: {
				"shopping_mall", "zoo", "aquarium", "bowling_alley", "movie_theater",
				"amusement_park", "night_club", "water_park", "avm", "park",
			},
			InterestCulture: {
				"historical_place", "monument", "museum", "art_gallery", "tourist_attraction",
				"performing_arts_theater", "opera_house", "kultur", "mosque", "place_of_worship",
			},
			InterestBeach: {"beach"},
		},
		InterestLabels: map[string]string{
			InterestRestaurant:    "Yeme-İçme (Restoran)",
			InterestCafe:          "Mola (Cafe)",
			InterestEntertainment: "Eğlence/Aktivite",
			InterestCulture:       "Kültür ve Tarih",
			InterestBeach:         "Plaj/Deniz",
		},
		LodgingCategories: []string{
			"lodging", "hotel", "resort_hotel", "hostel", "guest_house",
			"bed_and_breakfast", "konaklama", "otel",
		},
		LodgingKeywords:      []string{"hotel", "otel", "lodging", "hostel", "resort", "konaklama", "pansiyon"},
		BudgetExemptKeywords: []string{"hotel", "otel", "lodging"},
		UnsetPriceValues:     []string{"", "bilinmiyor", "unknown", "-"},
	}
}

// IsKnownInterest は興味カテゴリが対応表に存在するかチェックする
func (t *CategoryTaxonomy) IsKnownInterest(interest string) bool {
	_, ok := t.InterestCategories[interest]
	return ok
}

// CategoriesFor は指定された興味カテゴリ群を施設カテゴリの和集合に展開する
func (t *CategoryTaxonomy) CategoriesFor(interests []string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, interest := range interests {
		for _, cat := range t.InterestCategories[interest] {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}
			result = append(result, cat)
		}
	}
	return result
}

// Label は興味カテゴリのトルコ語表示名を返す（未登録ならそのまま）
func (t *CategoryTaxonomy) Label(interest string) string {
	if label, ok := t.InterestLabels[interest]; ok {
		return label
	}
	return interest
}

// IsUnsetPrice はprice値が未設定扱いかチェックする
func (t *CategoryTaxonomy) IsUnsetPrice(price string) bool {
	p := strings.ToLower(strings.TrimSpace(price))
	for _, v := range t.UnsetPriceValues {
		if p == v {
			return true
		}
	}
	return false
}

// IsBudgetExempt はカテゴリが予算条件を免除される宿泊系かチェックする
func (t *CategoryTaxonomy) IsBudgetExempt(category string) bool {
	return containsAny(strings.ToLower(category), t.BudgetExemptKeywords)
}

// HasLodgingKeyword はカテゴリまたは名前に宿泊系キーワードが含まれるかチェックする
func (t *CategoryTaxonomy) HasLodgingKeyword(category, name string) bool {
	return containsAny(strings.ToLower(category), t.LodgingKeywords) ||
		containsAny(strings.ToLower(name), t.LodgingKeywords)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
