// Package redis はリフレッシュセッションの保存先となるRedisクライアントの初期化を提供します。
package redis

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// EnvKeyRedisHost はRedisホスト名の環境変数名です。未設定時はlocalhostを使います。
	EnvKeyRedisHost = "REDIS_HOST"
	// EnvKeyRedisPort はRedisポート番号の環境変数名です。未設定時は6379を使います。
	EnvKeyRedisPort = "REDIS_PORT"
	// EnvKeyRedisPassword はRedisパスワードの環境変数名です。
	EnvKeyRedisPassword = "REDIS_PASSWORD"

	defaultHost = "localhost"
	defaultPort = "6379"

	pingTimeout = 5 * time.Second
)

// NewRedisClient は環境変数の接続設定からRedisクライアントを生成し、疎通確認まで行います。
// セッションストアとして必須の依存なので、接続できない場合はエラーを返します。
func NewRedisClient() (*redis.Client, error) {
	host := os.Getenv(EnvKeyRedisHost)
	if host == "" {
		host = defaultHost
	}
	port := os.Getenv(EnvKeyRedisPort)
	if port == "" {
		port = defaultPort
	}
	addr := host + ":" + port

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv(EnvKeyRedisPassword),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
