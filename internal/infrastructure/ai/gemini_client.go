package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-1.5-flash"

// GeminiClient はGemini APIとの通信を担当するクライアント
type GeminiClient struct {
	client    *genai.Client
	model     string
	maxTokens int32
	rl        *rate.Limiter
}

// NewGeminiClient は新しいGeminiClientインスタンスを作成
func NewGeminiClient(ctx context.Context, apiKey, model string, rps int) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEYが設定されていません")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Geminiクライアントの初期化に失敗: %w", err)
	}
	return &GeminiClient{
		client:    client,
		model:     model,
		maxTokens: 4000,
		rl:        newLimiter(rps),
	}, nil
}

// Provider はメトリクス用のプロバイダ名を返す
func (c *GeminiClient) Provider() string {
	return "gemini"
}

// GenerateJSON はJSONのみを返すよう指示してコンテンツを生成する
func (c *GeminiClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", fmt.Errorf("レート制限の待機に失敗: %w", err)
	}

	m := c.client.GenerativeModel(c.model)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.1)
	m.SetMaxOutputTokens(c.maxTokens)
	if systemPrompt != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	}

	resp, err := m.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("Gemini API呼び出しエラー: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("有効なレスポンスが生成されませんでした")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}

// Close はクライアントを閉じる
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
