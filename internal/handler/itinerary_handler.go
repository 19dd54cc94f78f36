package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/usecase"
)

// レスポンスに載せるエラーメッセージ（クライアント表示用のためトルコ語）
const (
	msgNoCandidates   = "Bu kriterlere uygun mekan bulunamadı."
	msgInternalError  = "Rota oluşturulurken hata oluştu."
	msgInvalidRequest = "Geçersiz istek."
	msgNotFound       = "Rota bulunamadı."
)

// ItineraryHandler は旅程APIのハンドラー
type ItineraryHandler struct {
	itineraryUseCase usecase.ItineraryUseCase
}

// NewItineraryHandler は新しいItineraryHandlerインスタンスを作成
func NewItineraryHandler(itineraryUseCase usecase.ItineraryUseCase) *ItineraryHandler {
	return &ItineraryHandler{itineraryUseCase: itineraryUseCase}
}

// PostGenerateRoute は旅程を生成するエンドポイント
// POST /api/generate-route
func (h *ItineraryHandler) PostGenerateRoute(c *gin.Context) {
	var req model.RoutePreferences

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   msgInvalidRequest,
			"details": err.Error(),
			"route":   nil,
		})
		return
	}

	response, err := h.itineraryUseCase.GenerateItinerary(c.Request.Context(), &req)
	if err != nil {
		var verr *model.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   msgInvalidRequest,
				"details": verr.Error(),
				"field":   verr.Field,
				"route":   nil,
			})
		case errors.Is(err, model.ErrNoCandidates):
			c.JSON(http.StatusNotFound, gin.H{
				"error": msgNoCandidates,
				"route": nil,
			})
		default:
			log.Error().Err(err).Str("trace_id", c.GetString(traceIDKey)).Msg("❌ 旅程生成に失敗しました")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": msgInternalError,
				"route": nil,
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetItinerary は保存済みの旅程を取得するエンドポイント
// GET /api/itineraries/:id
func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	proposalID := c.Param("id")
	if proposalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "proposal_idが指定されていません",
		})
		return
	}

	proposal, err := h.itineraryUseCase.GetItinerary(c.Request.Context(), proposalID)
	if err != nil {
		if errors.Is(err, model.ErrProposalNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   msgNotFound,
				"details": err.Error(),
			})
			return
		}
		log.Error().Err(err).Str("proposal_id", proposalID).Msg("❌ 旅程の取得に失敗しました")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": msgInternalError,
		})
		return
	}

	c.JSON(http.StatusOK, proposal)
}

// Health はヘルスチェック用エンドポイント
// GET /api/health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "Rota-App"})
}
