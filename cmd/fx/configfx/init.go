package configfx

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"Rota-App/internal/config"
	"Rota-App/internal/domain/model"
	"Rota-App/internal/infrastructure/logging"
	"Rota-App/internal/infrastructure/metrics"
)

var Module = fx.Options(
	fx.Provide(provideConfig, provideLogger, provideRegistry, provideTaxonomy),
	// 他のモジュールより先にグローバルロガーを差し替える
	fx.Invoke(func(zerolog.Logger) {}),
)

func provideConfig() config.Config {
	return config.Load()
}

func provideLogger(cfg config.Config) zerolog.Logger {
	return logging.Setup(cfg.AppEnv, cfg.LogLevel)
}

func provideRegistry() *prometheus.Registry {
	return metrics.InitRegistry()
}

func provideTaxonomy() *model.CategoryTaxonomy {
	return model.DefaultCategoryTaxonomy()
}
