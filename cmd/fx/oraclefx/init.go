package oraclefx

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"Rota-App/internal/config"
	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/ai"
)

var Module = fx.Provide(
	provideTextGenerator, providePlanGenerator)

// provideTextGenerator はAI_PROVIDERに応じたクライアントを作成する。
// 初期化に失敗した場合は起動を止めず、全リクエストをフォールバックで処理する
func provideTextGenerator(lc fx.Lifecycle, cfg config.Config) ai.TextGenerator {
	switch cfg.AIProvider {
	case config.AIProviderGemini:
		client, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.OracleRPS)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️ Gemini client disabled")
			return ai.NewDisabledGenerator(config.AIProviderGemini, err)
		}
		lc.Append(fx.Hook{OnStop: func(ctx context.Context) error { return client.Close() }})
		return client
	default:
		client, err := ai.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqBaseURL, cfg.OracleRPS)
		if err != nil {
			log.Warn().Err(err).Msg("⚠️ Groq client disabled")
			return ai.NewDisabledGenerator(config.AIProviderGroq, err)
		}
		return client
	}
}

func providePlanGenerator(generator ai.TextGenerator, taxonomy *model.CategoryTaxonomy) repository.PlanGenerationRepository {
	return ai.NewOraclePlanRepository(generator, taxonomy)
}
