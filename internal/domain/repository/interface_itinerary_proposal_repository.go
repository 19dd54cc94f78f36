package repository

import (
	"Rota-App/internal/domain/model"
	"context"
	"time"
)

// ItineraryProposalRepository は生成済み旅程の一時保存を担当する
type ItineraryProposalRepository interface {
	SaveItinerary(ctx context.Context, prefs *model.RoutePreferences, itinerary *model.Itinerary, ttl time.Duration) (*model.ItineraryProposal, error)
	// GetItinerary は存在しない・期限切れの場合 model.ErrProposalNotFound を返す
	GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error)
}
