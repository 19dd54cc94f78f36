package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter はミドルウェアとルーティングを設定したgin.Engineを返す
func NewRouter(itineraryHandler *ItineraryHandler, metricsHandler http.Handler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(TraceIDMiddleware())
	r.Use(MetricsMiddleware())
	r.Use(LoggerMiddleware(logger))

	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	api := r.Group("/api")
	api.GET("/health", Health)
	api.POST("/generate-route", itineraryHandler.PostGenerateRoute)
	api.GET("/itineraries/:id", itineraryHandler.GetItinerary)

	return r
}
