package model

import "errors"

var (
	// ErrNoCandidates 条件に合うアクティビティ候補が1件もない（フォールバック不可）
	ErrNoCandidates = errors.New("条件に合う候補スポットがありません")
	// ErrOracleFailure オラクルの呼び出し・解析・検証のいずれかに失敗した
	ErrOracleFailure = errors.New("プラン生成オラクルの呼び出しに失敗しました")
	// ErrProposalNotFound 保存済みの旅程が存在しないか有効期限切れ
	ErrProposalNotFound = errors.New("旅程提案が見つかりません")
)

// ValidationError はリクエストのバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
