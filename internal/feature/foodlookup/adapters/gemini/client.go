// Package gemini はGoogle Gemini APIを使用したカロリー目安推定クライアントを提供します。
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"calorie_backend/internal/feature/foodlookup/usecase"
)

const (
	// DefaultModel はGemini APIのデフォルトモデルです。
	DefaultModel = "gemini-2.5-flash"
)

// GeminiEstimator はGoogle Gemini APIを使用してカロリー目安サマリーを生成します。
type GeminiEstimator struct {
	client *genai.Client
	model  string
}

// GeminiEstimatorがCalorieEstimatorを実装していることをコンパイル時に検証します。
var _ usecase.CalorieEstimator = (*GeminiEstimator)(nil)

// NewGeminiEstimator はADCを使用してGeminiEstimatorの新しいインスタンスを生成します。
// 環境変数 GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT, GOOGLE_CLOUD_LOCATION が必要です。
func NewGeminiEstimator(ctx context.Context) (*GeminiEstimator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiEstimator{client: client, model: DefaultModel}, nil
}

// Estimate はプロンプトを使用して推定サマリーを生成します。
func (g *GeminiEstimator) Estimate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
