package jwtmw

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// protectedRouter は認証必須のルートを1つ持つテスト用ルーターを返します。
// ハンドラーはコンテキストに設定されたユーザーIDをそのまま返します。
func protectedRouter() *gin.Engine {
	r := gin.New()
	r.GET("/food-items", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(ContextUserID)})
	})
	return r
}

// signAccessToken は指定クレームをHS256で署名したトークン文字列を返します。
func signAccessToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

// accessClaims はアプリのアクセストークンと同じ形のクレームを生成します。
func accessClaims(userID uint, ttl time.Duration) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":   float64(userID),
		"email": "taro@example.com",
		"exp":   now.Add(ttl).Unix(),
		"iat":   now.Unix(),
	}
}

// doRequest は保護ルートへAuthorizationヘッダー付きのGETを送ります。
func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/food-items", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_MissingOrMalformedHeader(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "middleware-test-secret")

	tests := []struct {
		name       string
		authHeader string
	}{
		{"no header", ""},
		{"basic auth instead of bearer", "Basic dGFybzpwYXNz"},
		{"lowercase bearer", "bearer sometoken"},
		{"no space after Bearer", "Bearersometoken"},
	}

	router := protectedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.authHeader)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAuthRequired_MissingSecretIsServerError(t *testing.T) {
	t.Setenv(EnvKeyJWTSecret, "")

	w := doRequest(protectedRouter(), "Bearer sometoken")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestAuthRequired_RejectsBadTokens(t *testing.T) {
	const secret = "middleware-test-secret"
	t.Setenv(EnvKeyJWTSecret, secret)

	// noneアルゴリズム（未署名）のトークン
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, accessClaims(1, time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	// subクレームを欠いたトークン
	noSubject := signAccessToken(t, secret, jwt.MapClaims{
		"email": "taro@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	})

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.jwt"},
		{"signed with another key", signAccessToken(t, "another-secret", accessClaims(1, time.Hour))},
		{"expired", signAccessToken(t, secret, accessClaims(1, -time.Hour))},
		{"none algorithm", unsigned},
		{"missing sub claim", noSubject},
	}

	router := protectedRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "Bearer "+tt.token)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
			}
		})
	}
}

func TestAuthRequired_PassesUserIDToHandler(t *testing.T) {
	const secret = "middleware-test-secret"
	t.Setenv(EnvKeyJWTSecret, secret)

	router := protectedRouter()
	for _, userID := range []uint{1, 42, 999} {
		token := signAccessToken(t, secret, accessClaims(userID, time.Hour))
		w := doRequest(router, "Bearer "+token)

		if w.Code != http.StatusOK {
			t.Fatalf("user %d: expected status %d, got %d (body: %s)", userID, http.StatusOK, w.Code, w.Body.String())
		}

		var body map[string]uint
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to unmarshal body: %v", err)
		}
		if body["user_id"] != userID {
			t.Errorf("expected user_id %d, got %d", userID, body["user_id"])
		}
	}
}
