// Package usecase はfoodlookupフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"calorie_backend/internal/feature/foodlookup/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
	// EstimatePromptTemplate はカロリー目安推定のプロンプトテンプレートです。
	EstimatePromptTemplate = "日本語で、食品「%s」の100gあたりのカロリーの目安を栄養士の観点から簡潔に教えて。"
	// MaxFoodNameLength は食品名の最大文字数（rune数）です。
	MaxFoodNameLength = 100
)

// validFoodName は食品名に許可される文字パターンです（英数字・日本語・スペース・中黒）。
var validFoodName = regexp.MustCompile(`^[\p{L}\p{N}\s・\-\.&,]+$`)

// FoodDetector は画像から食品を検出するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type FoodDetector interface {
	// DetectFoods は画像バイト列から食品候補を検出し、検出結果を返します。
	DetectFoods(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error)
}

// CalorieEstimator はカロリー目安サマリーを生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CalorieEstimator interface {
	// Estimate はプロンプトから推定サマリーを生成します。
	Estimate(ctx context.Context, prompt string) (string, error)
}

// foodLookupUsecase は食品検出・カロリー目安推定のビジネスロジックを提供します。
type foodLookupUsecase struct {
	foodDetector     FoodDetector
	calorieEstimator CalorieEstimator
}

// NewFoodLookupUsecase はfoodLookupUsecaseの新しいインスタンスを生成します。
func NewFoodLookupUsecase(fd FoodDetector, ce CalorieEstimator) *foodLookupUsecase {
	return &foodLookupUsecase{foodDetector: fd, calorieEstimator: ce}
}

// DetectFoods は画像データから食品候補を検出します。
func (u *foodLookupUsecase) DetectFoods(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	return u.foodDetector.DetectFoods(ctx, imageData)
}

// EstimateCalories は食品名からカロリー目安のサマリーを生成します。
func (u *foodLookupUsecase) EstimateCalories(ctx context.Context, foodName string) (*entity.CalorieEstimate, error) {
	if foodName == "" {
		return nil, fmt.Errorf("food name is required")
	}
	if utf8.RuneCountInString(foodName) > MaxFoodNameLength {
		return nil, fmt.Errorf("food name exceeds maximum length of %d characters", MaxFoodNameLength)
	}
	if !validFoodName.MatchString(foodName) {
		return nil, fmt.Errorf("food name contains invalid characters")
	}
	prompt := fmt.Sprintf(EstimatePromptTemplate, foodName)
	summary, err := u.calorieEstimator.Estimate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("calorie estimator failed for %q: %w", foodName, err)
	}
	return &entity.CalorieEstimate{
		FoodName: foodName,
		Summary:  summary,
	}, nil
}
