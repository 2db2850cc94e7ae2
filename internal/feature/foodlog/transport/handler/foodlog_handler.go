// Package handler はfoodlogフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"calorie_backend/internal/api"
	catalogentity "calorie_backend/internal/feature/catalog/domain/entity"
	"calorie_backend/internal/feature/foodlog/domain/entity"
	"calorie_backend/internal/feature/foodlog/usecase"
	jwtmw "calorie_backend/internal/platform/jwt"
)

// FoodLogUsecase は食事記録操作のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type FoodLogUsecase interface {
	CreateEntry(ctx context.Context, userID, foodItemID uint, quantityGrams float64, loggedDate string) (*entity.FoodLogEntry, error)
	UpdateEntry(ctx context.Context, id, userID uint, in usecase.UpdateEntryInput) (*entity.FoodLogEntry, error)
	DeleteEntry(ctx context.Context, id, userID uint) error
	GetDailyLog(ctx context.Context, userID uint, date string) (*entity.DailyLog, error)
}

// FoodLogHandler は食事記録のHTTPリクエストを処理します。
type FoodLogHandler struct {
	uc FoodLogUsecase
}

// NewFoodLogHandler は新しいFoodLogHandlerを作成します。
func NewFoodLogHandler(uc FoodLogUsecase) *FoodLogHandler {
	return &FoodLogHandler{uc: uc}
}

// toEntryResponse はFoodLogEntryエンティティをAPIレスポンス表現へ変換します。
func toEntryResponse(e *entity.FoodLogEntry) api.FoodLogEntryResponse {
	return api.FoodLogEntryResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		FoodItemID:    e.FoodItemID,
		QuantityGrams: e.QuantityGrams,
		TotalCalories: e.TotalCalories,
		LoggedDate:    e.LoggedDate,
		CreatedAt:     e.CreatedAt,
	}
}

// toFoodItemResponse はFoodItemエンティティをAPIレスポンス表現へ変換します。
func toFoodItemResponse(item *catalogentity.FoodItem) api.FoodItemResponse {
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

// Create は食事記録の登録APIです。
// TotalCaloriesはサーバー側で導出され、リクエストからは設定できません。
//
// エンドポイント: POST /food-log
func (h *FoodLogHandler) Create(c *gin.Context) {
	var req api.CreateFoodLogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create food log validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	e, err := h.uc.CreateEntry(c.Request.Context(), userID, req.FoodItemID, req.QuantityGrams,
		req.LoggedDate.Time.Format(entity.DateLayout))
	if err != nil {
		h.writeError(c, err, "create food log entry failed")
		return
	}
	c.JSON(http.StatusCreated, toEntryResponse(e))
}

// Update は食事記録の部分更新APIです。リクエストで省略されたフィールドは変更されません。
//
// エンドポイント: PUT /food-log/:id
func (h *FoodLogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req api.UpdateFoodLogEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update food log validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	in := usecase.UpdateEntryInput{
		FoodItemID:    req.FoodItemID,
		QuantityGrams: req.QuantityGrams,
	}
	if req.LoggedDate != nil {
		d := req.LoggedDate.Time.Format(entity.DateLayout)
		in.LoggedDate = &d
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	e, err := h.uc.UpdateEntry(c.Request.Context(), id, userID, in)
	if err != nil {
		h.writeError(c, err, "update food log entry failed")
		return
	}
	c.JSON(http.StatusOK, toEntryResponse(e))
}

// Delete は食事記録の削除APIです。参照整合性の制約はなく、常に単純削除です。
//
// エンドポイント: DELETE /food-log/:id
func (h *FoodLogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	if err := h.uc.DeleteEntry(c.Request.Context(), id, userID); err != nil {
		h.writeError(c, err, "delete food log entry failed")
		return
	}
	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}

// DailyLog は指定日の食事記録サマリーを返すAPIです。
// 記録が無い日は合計0・空のentriesで200を返します。
//
// エンドポイント: GET /daily-log?date=YYYY-MM-DD
func (h *FoodLogHandler) DailyLog(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query parameter is required"})
		return
	}

	userID := c.GetUint(jwtmw.ContextUserID)
	log, err := h.uc.GetDailyLog(c.Request.Context(), userID, date)
	if err != nil {
		h.writeError(c, err, "get daily log failed")
		return
	}

	entries := make([]api.DailyLogEntryResponse, 0, len(log.Entries))
	for i := range log.Entries {
		entries = append(entries, api.DailyLogEntryResponse{
			FoodLogEntryResponse: toEntryResponse(&log.Entries[i].FoodLogEntry),
			FoodItem:             toFoodItemResponse(&log.Entries[i].FoodItem),
		})
	}
	c.JSON(http.StatusOK, api.DailyLogResponse{
		Date:          log.Date,
		TotalCalories: log.TotalCalories,
		Entries:       entries,
	})
}

// writeError はユースケースのエラーをHTTPステータスへマッピングします。
func (h *FoodLogHandler) writeError(c *gin.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrFoodItemNotFound),
		errors.Is(err, usecase.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: err.Error()})
	case errors.Is(err, usecase.ErrInvalidQuantity), errors.Is(err, usecase.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
	default:
		slog.Error(logMsg, "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal server error"})
	}
}
