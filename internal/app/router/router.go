package router

import (
	authhandler "calorie_backend/internal/feature/auth/transport/handler"
	cataloghandler "calorie_backend/internal/feature/catalog/transport/handler"
	foodloghandler "calorie_backend/internal/feature/foodlog/transport/handler"
	foodlookuphandler "calorie_backend/internal/feature/foodlookup/transport/handler"
	jwtmw "calorie_backend/internal/platform/jwt"
	"calorie_backend/internal/platform/http/handler"

	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *authhandler.AuthHandler, catalog *cataloghandler.CatalogHandler,
	foodLog *foodloghandler.FoodLogHandler, foodLookup *foodlookuphandler.FoodLookupHandler) *gin.Engine {
	r := gin.Default()

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)
	// リフレッシュトークンによるトークン更新
	r.POST("/refresh", authHandler.Refresh)
	// ログアウト（セッション失効）
	r.POST("/logout", authHandler.Logout)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		// 食品マスタ
		auth.POST("/food-items", catalog.Create)
		auth.GET("/food-items", catalog.List)
		auth.PUT("/food-items/:id", catalog.Update)
		auth.DELETE("/food-items/:id", catalog.Delete)

		// 食事記録
		auth.POST("/food-log", foodLog.Create)
		auth.PUT("/food-log/:id", foodLog.Update)
		auth.DELETE("/food-log/:id", foodLog.Delete)
		auth.GET("/daily-log", foodLog.DailyLog)

		// 食品検出・カロリー目安推定
		auth.POST("/food-lookup/detect", foodLookup.DetectFoods)
		auth.POST("/food-lookup/estimate", foodLookup.EstimateCalories)
	}

	return r
}
