// Package api はHTTP APIで共有されるリクエスト/レスポンス型を定義します。
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse はエラーレスポンスの共通フォーマットです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は単純なメッセージレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// SuccessResponse は削除系操作の成功応答です。
type SuccessResponse struct {
	Success bool `json:"success"`
}

// SignupRequest は /signup エンドポイントのリクエストボディです。
// Ginのbindingタグでバリデーション（必須・メール形式・パスワード長）を行います。
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required,min=1"`
}

// LoginRequest は /login エンドポイントのリクエストボディです。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest は /refresh エンドポイントのリクエストボディです。
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse はAPIレスポンス上のユーザー表現です。
// 資格情報ハッシュはクライアントに返しません。
type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse は認証系エンドポイントのレスポンスエンベロープです。
// Tokenにはアクセストークン（JWT）、RefreshTokenにはセッション更新用トークンが入ります。
type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

// TokenResponse はトークン更新時のレスポンスです。
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// CreateFoodItemRequest は食品マスタ作成のリクエストボディです。
type CreateFoodItemRequest struct {
	Name            string  `json:"name" binding:"required,min=1"`
	CaloriesPer100g float64 `json:"calories_per_100g" binding:"required,gt=0"`
}

// UpdateFoodItemRequest は食品マスタの部分更新リクエストです。
// ポインタ型により「未指定」と「指定あり」を区別します。
type UpdateFoodItemRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1"`
	CaloriesPer100g *float64 `json:"calories_per_100g" binding:"omitempty,gt=0"`
}

// FoodItemResponse はAPIレスポンス上の食品マスタ表現です。
type FoodItemResponse struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	Name            string    `json:"name"`
	CaloriesPer100g float64   `json:"calories_per_100g"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CreateFoodLogEntryRequest は食事記録作成のリクエストボディです。
// LoggedDateはYYYY-MM-DD形式のカレンダー日付です。
type CreateFoodLogEntryRequest struct {
	FoodItemID    uint               `json:"food_item_id" binding:"required"`
	QuantityGrams float64            `json:"quantity_grams" binding:"required,gt=0"`
	LoggedDate    openapi_types.Date `json:"logged_date" binding:"required"`
}

// UpdateFoodLogEntryRequest は食事記録の部分更新リクエストです。
type UpdateFoodLogEntryRequest struct {
	FoodItemID    *uint               `json:"food_item_id" binding:"omitempty,gt=0"`
	QuantityGrams *float64            `json:"quantity_grams" binding:"omitempty,gt=0"`
	LoggedDate    *openapi_types.Date `json:"logged_date" binding:"omitempty"`
}

// FoodLogEntryResponse はAPIレスポンス上の食事記録表現です。
// TotalCaloriesはサーバー側で導出した値で、クライアントから設定することはできません。
type FoodLogEntryResponse struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	FoodItemID    uint      `json:"food_item_id"`
	QuantityGrams float64   `json:"quantity_grams"`
	TotalCalories float64   `json:"total_calories"`
	LoggedDate    string    `json:"logged_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// DailyLogEntryResponse は日次サマリー内の1記録（食品詳細付き）です。
type DailyLogEntryResponse struct {
	FoodLogEntryResponse
	FoodItem FoodItemResponse `json:"food_item"`
}

// DailyLogResponse は指定日の食事記録サマリーです。
// 該当記録が無い場合はTotalCalories=0、Entriesは空配列になります。
type DailyLogResponse struct {
	Date          string                  `json:"date"`
	TotalCalories float64                 `json:"total_calories"`
	Entries       []DailyLogEntryResponse `json:"entries"`
}

// DetectedFoodResponse は画像から検出された食品候補です。
type DetectedFoodResponse struct {
	Name       string  `json:"name"`
	Confidence float32 `json:"confidence"`
}

// CalorieEstimateRequest は食品名からカロリー目安を推定するリクエストです。
type CalorieEstimateRequest struct {
	FoodName string `json:"food_name" binding:"required"`
}

// CalorieEstimateResponse はAI生成のカロリー目安サマリーです。
type CalorieEstimateResponse struct {
	FoodName string `json:"food_name"`
	Summary  string `json:"summary"`
}
