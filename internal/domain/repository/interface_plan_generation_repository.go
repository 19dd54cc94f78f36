package repository

import (
	"Rota-App/internal/domain/model"
	"context"
)

// PlanGenerationRepository は日程・時間枠の割り当てを外部オラクルに委譲するリポジトリインターフェース
type PlanGenerationRepository interface {
	// GeneratePlan はアクティビティ候補から検証済みのRawPlanを生成する。
	// 失敗時は model.ErrOracleFailure をラップしたエラーを返す
	GeneratePlan(ctx context.Context, activities []*model.Place, prefs *model.RoutePreferences) (*model.RawPlan, error)
}
