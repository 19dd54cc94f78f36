package repository

import (
	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryItineraryRepository プロセス内メモリに旅程を保持するリポジトリ（単一インスタンス・開発用）
type MemoryItineraryRepository struct {
	mu        sync.RWMutex
	proposals map[string]*model.ItineraryProposal
	now       func() time.Time
}

// NewMemoryItineraryRepository 新しいMemoryItineraryRepositoryインスタンスを作成
func NewMemoryItineraryRepository() repository.ItineraryProposalRepository {
	return newMemoryItineraryRepository(time.Now)
}

func newMemoryItineraryRepository(now func() time.Time) *MemoryItineraryRepository {
	return &MemoryItineraryRepository{
		proposals: make(map[string]*model.ItineraryProposal),
		now:       now,
	}
}

func (r *MemoryItineraryRepository) SaveItinerary(ctx context.Context, prefs *model.RoutePreferences, itinerary *model.Itinerary, ttl time.Duration) (*model.ItineraryProposal, error) {
	proposal := newItineraryProposal(prefs, itinerary, r.now(), ttl)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.evictExpiredLocked()
	r.proposals[proposal.ProposalID] = proposal
	return proposal, nil
}

func (r *MemoryItineraryRepository) GetItinerary(ctx context.Context, proposalID string) (*model.ItineraryProposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	proposal, ok := r.proposals[proposalID]
	if !ok || r.now().After(proposal.ExpireAt) {
		return nil, fmt.Errorf("%w: %s", model.ErrProposalNotFound, proposalID)
	}
	return proposal, nil
}

func (r *MemoryItineraryRepository) evictExpiredLocked() {
	now := r.now()
	for id, p := range r.proposals {
		if now.After(p.ExpireAt) {
			delete(r.proposals, id)
		}
	}
}
