package blog

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/blog/pkg/middleware"
	"github.com/nao1215/blog/pkg/password"
)

// handleLogin はログインを処理するハンドラを返す。
// リクエストはフォームエンコードで、usernameフィールドにメールアドレスを受け取る。
// 認証に成功するとアクセストークンを発行する。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.PostForm("username")
		plain := c.PostForm("password")
		if email == "" || plain == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "usernameとpasswordが必要です"})
			return
		}

		user, err := s.queries.GetUserByEmail(c.Request.Context(), email)
		if err == sql.ErrNoRows {
			// ユーザーの存在有無を区別できるメッセージは返さない
			c.JSON(http.StatusUnauthorized, gin.H{"error": "メールアドレスまたはパスワードが正しくありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		if !password.Verify(plain, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "メールアドレスまたはパスワードが正しくありません"})
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, user.ID, user.Email, s.tokenExpiry)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークン生成に失敗しました"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}
