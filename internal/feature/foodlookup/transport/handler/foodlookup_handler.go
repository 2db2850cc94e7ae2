// Package handler はfoodlookupフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	"calorie_backend/internal/feature/foodlookup/domain/entity"
)

// FoodLookupUsecase は食品検出・カロリー目安推定のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FoodLookupUsecase interface {
	DetectFoods(ctx context.Context, imageData []byte) ([]entity.DetectedFood, error)
	EstimateCalories(ctx context.Context, foodName string) (*entity.CalorieEstimate, error)
}

// FoodLookupHandler は食品検出・カロリー目安推定のHTTPリクエストを処理します。
type FoodLookupHandler struct {
	uc FoodLookupUsecase
}

// NewFoodLookupHandler はFoodLookupHandlerの新しいインスタンスを生成します。
func NewFoodLookupHandler(uc FoodLookupUsecase) *FoodLookupHandler {
	return &FoodLookupHandler{uc: uc}
}

// DetectFoods は画像をアップロードして食品候補を検出します。
// 検出結果は食品マスタ登録時の名前の候補として利用できます。
//
// エンドポイント: POST /food-lookup/detect
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *FoodLookupHandler) DetectFoods(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return
	}

	foods, err := h.uc.DetectFoods(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("食品検出に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "食品検出に失敗しました"})
		return
	}

	out := make([]api.DetectedFoodResponse, 0, len(foods))
	for _, fd := range foods {
		out = append(out, api.DetectedFoodResponse{
			Name:       fd.Name,
			Confidence: fd.Confidence,
		})
	}
	c.JSON(http.StatusOK, out)
}

// EstimateCalories は食品名から100gあたりのカロリー目安サマリーを生成します。
//
// エンドポイント: POST /food-lookup/estimate
// Content-Type: application/json
func (h *FoodLookupHandler) EstimateCalories(c *gin.Context) {
	var req api.CalorieEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("カロリー推定リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "食品名が必要です"})
		return
	}

	estimate, err := h.uc.EstimateCalories(c.Request.Context(), req.FoodName)
	if err != nil {
		slog.Error("カロリー推定に失敗", "error", err, "food", req.FoodName)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "カロリー推定に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.CalorieEstimateResponse{
		FoodName: estimate.FoodName,
		Summary:  estimate.Summary,
	})
}
