// Package handler はcatalogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	"calorie_backend/internal/feature/catalog/domain/entity"
	"calorie_backend/internal/feature/catalog/usecase"
	jwtmw "calorie_backend/internal/platform/jwt"
)

// CatalogUsecase は食品マスタ操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type CatalogUsecase interface {
	CreateFoodItem(ctx context.Context, userID uint, name string, caloriesPer100g float64) (*entity.FoodItem, error)
	ListFoodItems(ctx context.Context, userID uint) ([]entity.FoodItem, error)
	UpdateFoodItem(ctx context.Context, id, userID uint, in usecase.UpdateFoodItemInput) (*entity.FoodItem, error)
	DeleteFoodItem(ctx context.Context, id, userID uint) error
}

// CatalogHandler は食品マスタのHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しいCatalogHandlerを作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// toFoodItemResponse はFoodItemエンティティをAPIレスポンス表現へ変換します。
func toFoodItemResponse(item *entity.FoodItem) api.FoodItemResponse {
	return api.FoodItemResponse{
		ID:              item.ID,
		UserID:          item.UserID,
		Name:            item.Name,
		CaloriesPer100g: item.CaloriesPer100g,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// pathID は:idパスパラメータをuintとして取り出します。
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// Create は食品マスタへの登録APIです。
//
// エンドポイント: POST /food-items
func (h *CatalogHandler) Create(c *gin.Context) {
	var req api.CreateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create food item validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	item, err := h.uc.CreateFoodItem(c.Request.Context(), userID, req.Name, req.CaloriesPer100g)
	if err != nil {
		h.writeError(c, err, "create food item failed")
		return
	}
	c.JSON(http.StatusCreated, toFoodItemResponse(item))
}

// List はユーザーの食品一覧を名前順で返すAPIです。
//
// エンドポイント: GET /food-items
func (h *CatalogHandler) List(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	items, err := h.uc.ListFoodItems(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err, "list food items failed")
		return
	}
	out := make([]api.FoodItemResponse, 0, len(items))
	for i := range items {
		out = append(out, toFoodItemResponse(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Update は食品の部分更新APIです。リクエストで省略されたフィールドは変更されません。
//
// エンドポイント: PUT /food-items/:id
func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req api.UpdateFoodItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update food item validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	item, err := h.uc.UpdateFoodItem(c.Request.Context(), id, userID, usecase.UpdateFoodItemInput{
		Name:            req.Name,
		CaloriesPer100g: req.CaloriesPer100g,
	})
	if err != nil {
		h.writeError(c, err, "update food item failed")
		return
	}
	c.JSON(http.StatusOK, toFoodItemResponse(item))
}

// Delete は食品の削除APIです。
// 食事記録から参照されている食品は削除できず、409を返します。
//
// エンドポイント: DELETE /food-items/:id
func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	if err := h.uc.DeleteFoodItem(c.Request.Context(), id, userID); err != nil {
		h.writeError(c, err, "delete food item failed")
		return
	}
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

// writeError はユースケースのエラーをHTTPステータスへマッピングします。
func (h *CatalogHandler) writeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound), errors.Is(err, usecase.ErrFoodItemNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrFoodItemInUse):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrNameRequired), errors.Is(err, usecase.ErrInvalidCalories):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(logMsg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
