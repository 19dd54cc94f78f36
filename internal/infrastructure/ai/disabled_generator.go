package ai

import (
	"context"
	"fmt"
)

// disabledGenerator はAPIキー未設定時に使うTextGenerator。常にエラーを返し、旅程はフォールバックで生成される
type disabledGenerator struct {
	provider string
	reason   error
}

// NewDisabledGenerator は常に失敗するTextGeneratorを作成
func NewDisabledGenerator(provider string, reason error) TextGenerator {
	return &disabledGenerator{provider: provider, reason: reason}
}

func (g *disabledGenerator) Provider() string {
	return g.provider
}

func (g *disabledGenerator) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return "", fmt.Errorf("%sクライアントが無効です: %w", g.provider, g.reason)
}
