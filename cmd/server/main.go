package main

import (
	"context"
	"log"
	"os"
	"time"

	"calorie_backend/internal/app/router"
	authadapters "calorie_backend/internal/feature/auth/adapters"
	authhandler "calorie_backend/internal/feature/auth/transport/handler"
	authusecase "calorie_backend/internal/feature/auth/usecase"
	catalogadapters "calorie_backend/internal/feature/catalog/adapters"
	cataloghandler "calorie_backend/internal/feature/catalog/transport/handler"
	catalogusecase "calorie_backend/internal/feature/catalog/usecase"
	foodlogadapters "calorie_backend/internal/feature/foodlog/adapters"
	foodloghandler "calorie_backend/internal/feature/foodlog/transport/handler"
	foodlogusecase "calorie_backend/internal/feature/foodlog/usecase"
	"calorie_backend/internal/feature/foodlookup/adapters/gemini"
	"calorie_backend/internal/feature/foodlookup/adapters/vision"
	foodlookuphandler "calorie_backend/internal/feature/foodlookup/transport/handler"
	foodlookupusecase "calorie_backend/internal/feature/foodlookup/usecase"
	platformdb "calorie_backend/internal/platform/db"
	jwtmw "calorie_backend/internal/platform/jwt"
	platformredis "calorie_backend/internal/platform/redis"
	"calorie_backend/internal/platform/session"
)

const accessTokenTTL = 24 * time.Hour

func main() {
	ctx := context.Background()

	// db
	db := platformdb.OpenDB()

	// Redis（セッションストアなので必須）
	rdb, err := platformredis.NewRedisClient()
	if err != nil {
		log.Fatal("[ERROR] Redis unavailable. Sessions require Redis:", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("[ERROR] Failed to close Redis client:", err)
		}
	}()

	// 外部APIクライアント
	visionClient, err := vision.NewVisionFoodDetector(ctx)
	if err != nil {
		log.Fatal("failed to create vision client:", err)
	}
	defer func() {
		if err := visionClient.Close(); err != nil {
			log.Println("[ERROR] Failed to close Vision client:", err)
		}
	}()
	geminiClient, err := gemini.NewGeminiEstimator(ctx)
	if err != nil {
		log.Fatal("failed to create gemini client:", err)
	}

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	sessionRepo := session.NewSessionRedis(rdb, "session")
	foodItemRepo := catalogadapters.NewFoodItemPostgres(db)
	foodLogRepo := foodlogadapters.NewFoodLogPostgres(db)

	// JWT
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), accessTokenTTL)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, jwtGen)
	catalogUC := catalogusecase.NewCatalogUsecase(
		foodItemRepo,
		catalogadapters.NewUserChecker(db),
		catalogadapters.NewFoodLogCounter(db),
	)
	foodLogUC := foodlogusecase.NewFoodLogUsecase(
		foodLogRepo,
		foodlogadapters.NewFoodItemReader(db),
		foodlogadapters.NewUserChecker(db),
	)
	foodLookupUC := foodlookupusecase.NewFoodLookupUsecase(visionClient, geminiClient)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	catalogH := cataloghandler.NewCatalogHandler(catalogUC)
	foodLogH := foodloghandler.NewFoodLogHandler(foodLogUC)
	foodLookupH := foodlookuphandler.NewFoodLookupHandler(foodLookupUC)

	// ルータ生成
	router := router.NewRouter(authH, catalogH, foodLogH, foodLookupH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
