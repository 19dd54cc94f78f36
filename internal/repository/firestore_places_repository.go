package repository

import (
	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
)

const placesCollection = "places"

// FirestorePlacesRepository Firestoreのplacesコレクションを読むリポジトリ
type FirestorePlacesRepository struct {
	client *firestore.Client
}

// NewFirestorePlacesRepository 新しいFirestorePlacesRepositoryインスタンスを作成
func NewFirestorePlacesRepository(client *firestore.Client) repository.PlacesRepository {
	return &FirestorePlacesRepository{
		client: client,
	}
}

// ListAll はplacesコレクションを上限件数まで読み込む。変換できないドキュメントはスキップする
func (r *FirestorePlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	docs, err := r.client.Collection(placesCollection).Limit(placesSnapshotLimit).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得に失敗しました: %w", err)
	}

	places := make([]*model.Place, 0, len(docs))
	var skipped int
	for _, doc := range docs {
		var p model.Place
		if err := doc.DataTo(&p); err != nil {
			skipped++
			log.Warn().Err(err).Str("id", doc.Ref.ID).Msg("⚠️ スポットデータの変換に失敗")
			continue
		}
		p.ID = doc.Ref.ID
		places = append(places, &p)
	}

	log.Debug().Int("places", len(places)).Int("skipped", skipped).Msg("📖 Firestoreからスポットを読み込み")
	return places, nil
}
