package httpfx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"Rota-App/internal/config"
	"Rota-App/internal/handler"
	"Rota-App/internal/infrastructure/metrics"
	"Rota-App/internal/usecase"
)

var Module = fx.Options(
	fx.Provide(provideItineraryHandler, provideRouter),
	fx.Invoke(startServer),
)

func provideItineraryHandler(uc usecase.ItineraryUseCase) *handler.ItineraryHandler {
	return handler.NewItineraryHandler(uc)
}

func provideRouter(cfg config.Config, h *handler.ItineraryHandler, reg *prometheus.Registry, logger zerolog.Logger) *gin.Engine {
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	return handler.NewRouter(h, metrics.MetricsHandler(reg), logger)
}

func startServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("🚀 Rota-App server starting")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal().Err(err).Msg("❌ HTTP server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
