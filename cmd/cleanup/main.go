package main

import (
	"context"
	"log"
	"time"

	platformredis "calorie_backend/internal/platform/redis"
	"calorie_backend/internal/platform/session"
)

func main() {

	rdb, err := platformredis.NewRedisClient()
	if err != nil {
		log.Fatal("failed to connect to redis:", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Println("failed to close redis client:", err)
		}
	}()

	sessionRepo := session.NewSessionRedis(rdb, "session")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pruned, err := sessionRepo.DeleteExpired(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Println("session cleanup ok, pruned:", pruned)
}
