package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	AnalyzePortfolio(ctx context.Context, portfolioText string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const prompt = `
You are reviewing a brokerage portfolio for the account owner. Below is a plain-text export of their current holdings, with per-holding cost basis, gain/loss and sector, plus portfolio totals.

Comment on:
- concentration risk (positions or sectors that dominate the portfolio)
- notable winners and losers by gain/loss percent
- anything unusual in the data (missing quotes, unknown sectors)

Keep it under 300 words. Do not give buy/sell instructions - describe what the numbers show.

`

func (h gptRepositoryHandler) AnalyzePortfolio(ctx context.Context, portfolioText string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: prompt + portfolioText,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("gpt portfolio analysis failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
