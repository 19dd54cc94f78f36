package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/database"
)

type SupabasePlacesRepository struct {
	client *database.SupabaseClient
}

func NewSupabasePlacesRepository(client *database.SupabaseClient) repository.PlacesRepository {
	return &SupabasePlacesRepository{
		client: client,
	}
}

// supabasePlace PostgRESTが返すplacesテーブルの行
type supabasePlace struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Category         *string  `json:"category"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal *int     `json:"user_ratings_total"`
	Price            *string  `json:"price"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	Address          *string  `json:"address"`
	Province         *string  `json:"province"`
	District         *string  `json:"district"`
	ImageURL         *string  `json:"image_url"`
	Description      *string  `json:"description"`
}

func (r *SupabasePlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	data, _, err := r.client.GetClient().From("places").Select("*", "", false).Limit(placesSnapshotLimit, "").Execute()
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}

	return decodeSupabasePlaces(data)
}

func decodeSupabasePlaces(data []byte) ([]*model.Place, error) {
	var rows []supabasePlace
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("スポットデータのJSONアンマーシャル失敗: %w", err)
	}

	places := make([]*model.Place, 0, len(rows))
	for _, row := range rows {
		places = append(places, &model.Place{
			ID:               row.ID,
			Name:             row.Name,
			Category:         deref(row.Category),
			Rating:           deref(row.Rating),
			UserRatingsTotal: deref(row.UserRatingsTotal),
			Price:            deref(row.Price),
			Latitude:         deref(row.Latitude),
			Longitude:        deref(row.Longitude),
			Address:          deref(row.Address),
			Province:         deref(row.Province),
			District:         deref(row.District),
			ImageURL:         deref(row.ImageURL),
			Description:      deref(row.Description),
		})
	}
	return places, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
