package blog

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blogdb "github.com/nao1215/blog/internal/blog/db"
	"github.com/nao1215/blog/pkg/password"
)

// createUserRequest はユーザー登録リクエストのJSON構造。
type createUserRequest struct {
	// Email はメールアドレス。形式検証あり。
	Email string `json:"email" binding:"required,email"`
	// Password は平文パスワード。保存前にハッシュ化される。
	Password string `json:"password" binding:"required"`
}

// userResponse はユーザーのJSONレスポンス構造。
// パスワードハッシュは決して含めない。
type userResponse struct {
	// ID はユーザーの一意識別子。
	ID string `json:"id"`
	// Email はメールアドレス。
	Email string `json:"email"`
}

// handleCreateUser はユーザー登録を処理するハンドラを返す。
// パスワードはbcryptでハッシュ化してから保存する。
// メールアドレスが既に登録済みの場合は409を返す。
func (s *Server) handleCreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		digest, err := password.Hash(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "パスワードの処理に失敗しました"})
			log.Printf("パスワードハッシュ化エラー: %v", err)
			return
		}

		userID := uuid.New().String()
		if err := s.queries.CreateUser(c.Request.Context(), blogdb.CreateUserParams{
			ID:           userID,
			Email:        req.Email,
			PasswordHash: digest,
		}); err != nil {
			// メールの一意性はUNIQUE制約にのみ委ねる。事前チェックはしない
			if strings.Contains(err.Error(), "UNIQUE constraint failed") {
				c.JSON(http.StatusConflict, gin.H{"error": "このメールアドレスは既に登録されています"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの作成に失敗しました"})
			log.Printf("ユーザー作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, userResponse{ID: userID, Email: req.Email})
	}
}

// handleGetUser はユーザー参照を処理するハンドラを返す。認証は不要。
func (s *Server) handleGetUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")
		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "ユーザーが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, userResponse{ID: user.ID, Email: user.Email})
	}
}
