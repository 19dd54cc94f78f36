package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"Rota-App/cmd/fx/configfx"
	"Rota-App/cmd/fx/httpfx"
	"Rota-App/cmd/fx/oraclefx"
	"Rota-App/cmd/fx/placesfx"
	"Rota-App/cmd/fx/planningfx"
	"Rota-App/cmd/fx/proposalfx"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("⚠️ .env file not found, using system environment variables")
	}

	app := fx.New(
		fx.NopLogger,
		configfx.Module,
		placesfx.Module,
		oraclefx.Module,
		proposalfx.Module,
		planningfx.Module,
		httpfx.Module,
	)

	app.Run()
}
