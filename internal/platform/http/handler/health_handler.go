// Package handler は機能横断のHTTPエンドポイント用ハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// healthBody は /healthz が返す固定レスポンスです。
var healthBody = gin.H{"status": "ok"}

// Health は死活監視用の /healthz エンドポイントを処理します。
// ロードバランサーのプローブ結果が中間キャッシュに乗らないよう、常にno-storeを付与します。
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
	default:
		c.JSON(http.StatusOK, healthBody)
	}
}
