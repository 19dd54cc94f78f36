package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/metrics"
)

const planSystemPrompt = "Sen JSON formatında çıktı veren, hatasız bir seyahat asistanısın."

// TextGenerator はJSONテキストを返す生成AIクライアントの抽象
type TextGenerator interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Provider() string
}

// oraclePlanRepository はTextGeneratorを使用してPlanGenerationRepositoryを実装
type oraclePlanRepository struct {
	generator TextGenerator
	taxonomy  *model.CategoryTaxonomy
}

// NewOraclePlanRepository は新しいoraclePlanRepositoryインスタンスを作成
func NewOraclePlanRepository(generator TextGenerator, taxonomy *model.CategoryTaxonomy) repository.PlanGenerationRepository {
	if taxonomy == nil {
		taxonomy = model.DefaultCategoryTaxonomy()
	}
	return &oraclePlanRepository{
		generator: generator,
		taxonomy:  taxonomy,
	}
}

// GeneratePlan はプロンプトを組み立ててオラクルを1回だけ呼び出し、応答を検証する
func (r *oraclePlanRepository) GeneratePlan(ctx context.Context, activities []*model.Place, prefs *model.RoutePreferences) (*model.RawPlan, error) {
	prompt := r.buildPlanPrompt(activities, prefs)
	provider := r.generator.Provider()

	log.Info().Str("provider", provider).Int("places", len(activities)).Int("days", prefs.Days).
		Msg("🤖 オラクルで日程を生成中...")

	start := time.Now()
	content, err := r.generator.GenerateJSON(ctx, planSystemPrompt, prompt)
	if err != nil {
		metrics.ObserveOracle(provider, "error", time.Since(start))
		log.Error().Err(err).Str("provider", provider).Msg("❌ オラクル呼び出しに失敗")
		return nil, fmt.Errorf("%w: %v", model.ErrOracleFailure, err)
	}

	plan, err := parsePlan(content)
	if err != nil {
		metrics.ObserveOracle(provider, "invalid", time.Since(start))
		log.Error().Err(err).Str("provider", provider).Msg("❌ オラクルの応答が不正です")
		return nil, fmt.Errorf("%w: %v", model.ErrOracleFailure, err)
	}

	metrics.ObserveOracle(provider, "ok", time.Since(start))
	log.Info().Str("provider", provider).Int("days", len(plan.Days)).Dur("elapsed", time.Since(start)).
		Msg("✅ オラクルの日程生成完了")
	return plan, nil
}

// buildPlanPrompt は日程生成用プロンプトを構築
func (r *oraclePlanRepository) buildPlanPrompt(activities []*model.Place, prefs *model.RoutePreferences) string {
	labels := make([]string, 0, len(prefs.Activities))
	for _, a := range prefs.Activities {
		labels = append(labels, r.taxonomy.Label(a))
	}
	interests := strings.Join(labels, ", ")

	var places strings.Builder
	for _, p := range activities {
		fmt.Fprintf(&places, "- %s || ID: %s || Kat: %s || Puan: %s || Konum: %s,%s\n",
			p.Name, p.ID, p.Category,
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
			strconv.FormatFloat(p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Longitude, 'f', -1, 64))
	}

	return fmt.Sprintf(`Verilen mekan listesini kullanarak kurallara tam uyan bir JSON gezi rotası oluştur.

GEZİ:
- %d günlük %s/%s gezisi.
- İlgi alanları: %s
- Konaklama seçimi senin görevin değil, sadece gezilecek yerleri planla.

MEKAN LİSTESİ (yalnızca bunları kullan):
%s
KURALLAR:
1. Her gün için tam olarak 3 aktivite planla. Saatler sırasıyla "10:00", "14:00", "19:00" olmalı; "Sabah" gibi ifadeler kullanma.
2. İlgi alanlarını her güne dağıt. Aynı gün içinde aynı kategoriden iki mekan olamaz.
3. Mekan adlarını ve ID'lerini listeden birebir kopyala.
4. Otel veya konaklama içeren mekanları rotaya asla ekleme.
5. Aynı mekanı farklı günlerde tekrar kullanma.
6. Sadece saf JSON döndür; markdown veya açıklama ekleme. Açıklamalar kısa ve Türkçe olsun.

JSON ŞEMASI (%d gün):
{"days":[{"day":1,"activities":[{"time":"10:00","place":"Mekan adı","place_id":"Mekan ID","description":"Tek cümlelik açıklama","category":"Mekanın kategorisi"}]}]}`,
		prefs.Days, prefs.District, prefs.Province,
		interests,
		places.String(),
		prefs.Days)
}

type planDocument struct {
	Days []planDay `json:"days"`
}

type planDay struct {
	Day        dayNumber      `json:"day"`
	Activities []planActivity `json:"activities"`
}

type planActivity struct {
	Time        string `json:"time"`
	Place       string `json:"place"`
	PlaceID     string `json:"place_id"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// dayNumber は "day": 1 と "day": "1" の両方を受け付ける
type dayNumber int

func (d *dayNumber) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("dayが数値ではありません: %s", string(b))
	}
	*d = dayNumber(n)
	return nil
}

// parsePlan はオラクルの応答を整形・解析し、最低限の構造を検証する
func parsePlan(content string) (*model.RawPlan, error) {
	cleaned := cleanJSONResponse(content)
	if cleaned == "" {
		return nil, fmt.Errorf("応答が空です")
	}

	var doc planDocument
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	plan := &model.RawPlan{Days: make([]model.DayPlan, 0, len(doc.Days))}
	var total int
	for i, d := range doc.Days {
		day := model.DayPlan{Day: int(d.Day), Activities: make([]model.ActivityStop, 0, len(d.Activities))}
		if day.Day <= 0 {
			day.Day = i + 1
		}
		for j, a := range d.Activities {
			if strings.TrimSpace(a.Time) == "" || strings.TrimSpace(a.Place) == "" {
				return nil, fmt.Errorf("day %d の %d 番目のアクティビティにtimeまたはplaceがありません", day.Day, j+1)
			}
			day.Activities = append(day.Activities, model.ActivityStop{
				Time:        strings.TrimSpace(a.Time),
				Place:       strings.TrimSpace(a.Place),
				PlaceID:     strings.TrimSpace(a.PlaceID),
				Description: a.Description,
				Category:    a.Category,
			})
		}
		total += len(day.Activities)
		plan.Days = append(plan.Days, day)
	}

	if total == 0 {
		return nil, fmt.Errorf("アクティビティを含む日がありません")
	}
	return plan, nil
}

// cleanJSONResponse はMarkdownのコードフェンスなどを取り除き、最外側のJSONオブジェクトを取り出す
func cleanJSONResponse(content string) string {
	s := strings.TrimSpace(content)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}
