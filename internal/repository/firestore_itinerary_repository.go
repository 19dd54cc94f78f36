package repository

import (
	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const itineraryProposalsCollection = "itineraryProposals"

// FirestoreItineraryRepository Firestoreを使用した旅程提案の一時保存リポジトリ
type FirestoreItineraryRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreItineraryRepository 新しいFirestoreItineraryRepositoryインスタンスを作成
func NewFirestoreItineraryRepository(client *firestore.Client) repository.ItineraryProposalRepository {
	return &FirestoreItineraryRepository{
		client: client,
		now:    time.Now,
	}
}

// SaveItinerary は旅程をFirestoreに保存し、proposal_idを生成して返す。
// expireAtはFirestoreのTTLポリシーで削除に使う
func (r *FirestoreItineraryRepository) SaveItinerary(ctx context.Context, prefs *model.RoutePreferences, itinerary *model.Itinerary, ttl time.Duration) (*model.ItineraryProposal, error) {
	proposal := newItineraryProposal(prefs, itinerary, r.now(), ttl)

	_, err := r.client.Collection(itineraryProposalsCollection).Doc(proposal.ProposalID).Set(ctx, proposal.ToFirestoreItineraryProposal())
	if err != nil {
		log.Error().Err(err).Str("proposal_id", proposal.ProposalID).Msg("❌ Failed to save itinerary proposal")
		return nil, fmt.Errorf("旅程提案の保存に失敗しました: %w", err)
	}

	log.Info().Str("proposal_id", proposal.ProposalID).Dur("ttl", ttl).Msg("💾 Itinerary proposal saved")
	return proposal, nil
}

// GetItinerary は指定されたproposal_idの旅程をFirestoreから取得する
func (r *FirestoreItineraryRepository) GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error) {
	doc, err := r.client.Collection(itineraryProposalsCollection).Doc(proposalID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("%w: %s", model.ErrProposalNotFound, proposalID)
		}
		return nil, fmt.Errorf("旅程提案の取得に失敗しました: %w", err)
	}

	var data model.FirestoreItineraryProposal
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTLによる削除は即時ではないため期限もここで確認する
	if !data.ExpireAt.IsZero() && r.now().After(data.ExpireAt) {
		return nil, fmt.Errorf("%w（有効期限切れ）: %s", model.ErrProposalNotFound, proposalID)
	}

	log.Info().Str("proposal_id", proposalID).Msg("✅ Itinerary proposal retrieved")
	return data.ToItineraryProposal(proposalID), nil
}

func newItineraryProposal(prefs *model.RoutePreferences, itinerary *model.Itinerary, now time.Time, ttl time.Duration) *model.ItineraryProposal {
	source := ""
	if itinerary != nil {
		source = itinerary.Source
	}
	return &model.ItineraryProposal{
		ProposalID:  fmt.Sprintf("itin_%s", uuid.New().String()),
		Preferences: prefs,
		Source:      source,
		Route:       itinerary,
		CreatedAt:   now,
		ExpireAt:    now.Add(ttl),
	}
}
