package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel = "llama-3.3-70b-versatile"
)

// GroqClient はOpenAI互換APIでGroqと通信するクライアント
type GroqClient struct {
	client    *openai.Client
	model     string
	maxTokens int
	rl        *rate.Limiter
}

// NewGroqClient は新しいGroqClientインスタンスを作成。baseURLが空ならGroqの公開エンドポイントを使う
func NewGroqClient(apiKey, model, baseURL string, rps int) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEYが設定されていません")
	}
	if model == "" {
		model = defaultGroqModel
	}
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &GroqClient{
		client:    openai.NewClientWithConfig(config),
		model:     model,
		maxTokens: 4000,
		rl:        newLimiter(rps),
	}, nil
}

// Provider はメトリクス用のプロバイダ名を返す
func (c *GroqClient) Provider() string {
	return "groq"
}

// GenerateJSON はjson_objectレスポンス形式でチャット補完を呼び出す
func (c *GroqClient) GenerateJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", fmt.Errorf("レート制限の待機に失敗: %w", err)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.1,
		MaxTokens:   c.maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("Groq API呼び出しエラー: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("有効なレスポンスが生成されませんでした")
	}
	return resp.Choices[0].Message.Content, nil
}

func newLimiter(rps int) *rate.Limiter {
	if rps <= 0 {
		rps = 2
	}
	return rate.NewLimiter(rate.Limit(rps), rps)
}
