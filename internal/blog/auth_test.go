package blog

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nao1215/blog/pkg/middleware"
)

// TestLogin はログインエンドポイントを検証する。
func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("正常系: アクセストークンが発行されること", func(t *testing.T) {
		t.Parallel()
		s, router, _ := setupTestServer(t)

		createTestUser(t, s, "user-1", "alice@example.com", "secret123")

		w := doFormRequest(router, "/login", url.Values{
			"username": {"alice@example.com"},
			"password": {"secret123"},
		})

		if w.Code != http.StatusOK {
			t.Fatalf("ステータスコード: got %d, want %d, body=%s", w.Code, http.StatusOK, w.Body.String())
		}

		result := parseJSON(t, w)
		if result["token_type"] != "bearer" {
			t.Errorf("token_type: got %v, want bearer", result["token_type"])
		}

		tokenString, ok := result["access_token"].(string)
		if !ok || tokenString == "" {
			t.Fatal("access_tokenが空です")
		}

		// 発行されたトークンが正しいユーザーを指していること
		claims := &middleware.JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(testJWTSecret), nil
		})
		if err != nil || !token.Valid {
			t.Fatalf("トークンの検証に失敗: %v", err)
		}
		if claims.UserID != "user-1" {
			t.Errorf("user_id: got %s, want user-1", claims.UserID)
		}
		if claims.Email != "alice@example.com" {
			t.Errorf("email: got %s, want alice@example.com", claims.Email)
		}
	})

	t.Run("パスワードが違う場合はUnauthorized", func(t *testing.T) {
		t.Parallel()
		s, router, _ := setupTestServer(t)

		createTestUser(t, s, "user-1", "alice@example.com", "secret123")

		w := doFormRequest(router, "/login", url.Values{
			"username": {"alice@example.com"},
			"password": {"wrong-password"},
		})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("未登録のメールアドレスはUnauthorized", func(t *testing.T) {
		t.Parallel()
		_, router, _ := setupTestServer(t)

		w := doFormRequest(router, "/login", url.Values{
			"username": {"nobody@example.com"},
			"password": {"secret123"},
		})

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("フォームフィールドが欠けている場合はBadRequest", func(t *testing.T) {
		t.Parallel()
		_, router, _ := setupTestServer(t)

		w := doFormRequest(router, "/login", url.Values{
			"username": {"alice@example.com"},
		})

		if w.Code != http.StatusBadRequest {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
