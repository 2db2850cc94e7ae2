package jwtmw

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ContextUserID は認証済みユーザーIDを保持するGinコンテキストキーです。
// 保護下のハンドラーは c.GetUint(ContextUserID) で取得します。
const ContextUserID = "userID"

// AuthRequired は保護対象のルートグループに適用するJWT検証ミドルウェアを返します。
// 検証に成功した場合、subクレームのユーザーIDをコンテキストに設定して次のハンドラーへ渡します。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "認証トークンがありません"})
			return
		}

		secret := os.Getenv(EnvKeyJWTSecret)
		if secret == "" {
			// JWT_SECRET未設定はデプロイ時の設定ミス
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "サーバー設定エラー"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// HS256系以外（特にnoneアルゴリズム）は鍵を渡さず拒否する
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無効なトークンです"})
			return
		}

		// subクレームの無いトークンではユーザーを特定できない
		userID, ok := subjectUserID(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無効なトークンです"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// bearerToken はAuthorizationヘッダーからBearerトークンを取り出します。
func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimPrefix(header, prefix), true
}

// subjectUserID はsubクレームからユーザーIDを取り出します。
// JWTの数値クレームはfloat64としてデコードされます。
func subjectUserID(token *jwt.Token) (uint, bool) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, false
	}
	return uint(sub), true
}
