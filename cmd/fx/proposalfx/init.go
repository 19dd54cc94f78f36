package proposalfx

import (
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"Rota-App/internal/config"
	"Rota-App/internal/domain/repository"
	fsclient "Rota-App/internal/infrastructure/firestore"
	repoImpl "Rota-App/internal/repository"
)

var Module = fx.Provide(
	provideProposalRepo)

// provideProposalRepo はPROPOSAL_STORE=noneの場合nilを返し、旅程は保存されない
func provideProposalRepo(cfg config.Config, fs *fsclient.FirestoreClient) repository.ItineraryProposalRepository {
	switch cfg.ProposalStore {
	case config.ProposalStoreFirestore:
		return repoImpl.NewFirestoreItineraryRepository(fs.GetClient())
	case config.ProposalStoreMemory:
		return repoImpl.NewMemoryItineraryRepository()
	default:
		log.Info().Str("store", cfg.ProposalStore).Msg("ℹ️ Itinerary proposals will not be stored")
		return nil
	}
}
