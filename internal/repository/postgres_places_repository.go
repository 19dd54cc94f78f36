package repository

import (
	"Rota-App/internal/domain/model"
	"Rota-App/internal/domain/repository"
	"Rota-App/internal/infrastructure/database"
	"context"
	"database/sql"
	"fmt"
)

// placesSnapshotLimit は1回のスナップショットで読み込むスポット数の上限
const placesSnapshotLimit = 5000

type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesRepository {
	return &PostgresPlacesRepository{
		client: client,
	}
}

// PlaceRow placesテーブルの1行。NULLを許容する列はsql.Null*で受ける
type PlaceRow struct {
	ID               string
	Name             string
	Category         sql.NullString
	Rating           sql.NullFloat64
	UserRatingsTotal sql.NullInt64
	Price            sql.NullString
	Latitude         sql.NullFloat64
	Longitude        sql.NullFloat64
	Address          sql.NullString
	Province         sql.NullString
	District         sql.NullString
	ImageURL         sql.NullString
	Description      sql.NullString
}

// ToPlace PlaceRowをmodel.Placeに変換
func (pr *PlaceRow) ToPlace() *model.Place {
	return &model.Place{
		ID:               pr.ID,
		Name:             pr.Name,
		Category:         pr.Category.String,
		Rating:           pr.Rating.Float64,
		UserRatingsTotal: int(pr.UserRatingsTotal.Int64),
		Price:            pr.Price.String,
		Latitude:         pr.Latitude.Float64,
		Longitude:        pr.Longitude.Float64,
		Address:          pr.Address.String,
		Province:         pr.Province.String,
		District:         pr.District.String,
		ImageURL:         pr.ImageURL.String,
		Description:      pr.Description.String,
	}
}

func (r *PostgresPlacesRepository) ListAll(ctx context.Context) ([]*model.Place, error) {
	query := `
		SELECT id, name, category, rating, user_ratings_total, price,
		       latitude, longitude, address, province, district, image_url, description
		FROM places
		ORDER BY id
		LIMIT $1`

	rows, err := r.client.DB.QueryContext(ctx, query, placesSnapshotLimit)
	if err != nil {
		return nil, fmt.Errorf("スポットデータの取得失敗: %w", err)
	}
	defer rows.Close()

	var places []*model.Place
	for rows.Next() {
		var row PlaceRow
		err := rows.Scan(&row.ID, &row.Name, &row.Category, &row.Rating, &row.UserRatingsTotal, &row.Price,
			&row.Latitude, &row.Longitude, &row.Address, &row.Province, &row.District, &row.ImageURL, &row.Description)
		if err != nil {
			return nil, fmt.Errorf("スポットデータスキャンエラー: %w", err)
		}
		places = append(places, row.ToPlace())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("スポットデータ読み込みエラー: %w", err)
	}

	return places, nil
}
