package repository

import (
	"context"

	"Rota-App/internal/domain/model"
)

// PlacesRepository は旅行先コーパスのスナップショットを提供する
type PlacesRepository interface {
	// ListAll はリクエスト時点のスポット一覧を返す。返却値は呼び出し側が自由に扱ってよいコピー
	ListAll(ctx context.Context) ([]*model.Place, error)
}
