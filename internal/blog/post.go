package blog

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	blogdb "github.com/nao1215/blog/internal/blog/db"
)

// defaultListLimit は一覧取得のデフォルト件数。
const defaultListLimit = 2

// createPostRequest は投稿作成・全置換更新リクエストのJSON構造。
type createPostRequest struct {
	// Title は投稿タイトル。
	Title string `json:"title" binding:"required"`
	// Content は投稿本文。
	Content string `json:"content" binding:"required"`
	// Published は公開フラグ。省略時は公開として扱う。
	Published *bool `json:"published"`
}

// patchPostRequest は部分更新リクエストのJSON構造。
// ポインタ型でフィールドの有無を表現し、リクエストに含まれる
// フィールドだけを上書きする。
type patchPostRequest struct {
	// Title は投稿タイトル。
	Title *string `json:"title"`
	// Content は投稿本文。
	Content *string `json:"content"`
	// Published は公開フラグ。
	Published *bool `json:"published"`
}

// postResponse は投稿のJSONレスポンス構造。
type postResponse struct {
	// ID は投稿の一意識別子。
	ID string `json:"id"`
	// Title は投稿タイトル。
	Title string `json:"title"`
	// Content は投稿本文。
	Content string `json:"content"`
	// Published は公開フラグ。
	Published bool `json:"published"`
	// CreatedAt は作成日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
	// OwnerID は所有者のユーザーID。
	OwnerID string `json:"owner_id"`
	// Owner は所有者の要約情報。
	Owner userResponse `json:"owner"`
}

// toPostResponse はDB行をJSONレスポンスに変換する。
func toPostResponse(p blogdb.GetPostByIDRow) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Published: p.Published != 0,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		OwnerID:   p.OwnerID,
		Owner:     userResponse{ID: p.OwnerID, Email: p.OwnerEmail},
	}
}

// publishedFlag は公開フラグをDBに保存するINTEGER値へ変換する。
// nilは「公開」として扱う。
func publishedFlag(published *bool) int64 {
	if published != nil && !*published {
		return 0
	}
	return 1
}

// handleCreatePost は投稿作成を処理するハンドラを返す。
// 所有者は認証済みユーザーに固定される。作成後に通知キューへ
// メッセージを送信するが、送信の成否はレスポンスに影響しない。
func (s *Server) handleCreatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーが取得できません"})
			return
		}

		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		postID := uuid.New().String()
		if err := s.queries.CreatePost(c.Request.Context(), blogdb.CreatePostParams{
			ID:        postID,
			Title:     req.Title,
			Content:   req.Content,
			Published: publishedFlag(req.Published),
			OwnerID:   user.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の作成に失敗しました"})
			log.Printf("投稿作成エラー: %v", err)
			return
		}

		// 通知はベストエフォート。ブローカー障害で投稿作成は失敗させない
		s.publisher.Publish(fmt.Sprintf("New post created: %s", req.Title))

		created, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "作成した投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, toPostResponse(created))
	}
}

// handleListPosts は投稿一覧取得を処理するハンドラを返す。
// searchはタイトルの部分一致（大文字小文字を区別しない）。
// limit/skipでページングする。所有者によるフィルタは行わない。
func (s *Server) handleListPosts() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)), 10, 64)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limitが不正です"})
			return
		}
		skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
		if err != nil || skip < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "skipが不正です"})
			return
		}

		posts, err := s.queries.ListPosts(c.Request.Context(), blogdb.ListPostsParams{
			Search: c.Query("search"),
			Limit:  limit,
			Offset: skip,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿一覧の取得に失敗しました"})
			log.Printf("投稿一覧取得エラー: %v", err)
			return
		}

		responses := make([]postResponse, 0, len(posts))
		for _, p := range posts {
			responses = append(responses, toPostResponse(blogdb.GetPostByIDRow(p)))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleGetPost は投稿の単体取得を処理するハンドラを返す。
// 認証済みであれば所有者でなくても参照できる。
func (s *Server) handleGetPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")
		post, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "投稿が見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toPostResponse(post))
	}
}

// findOwnedPost は投稿の存在確認と所有者チェックを行う共通処理。
// 存在しない場合は404、所有者でない場合は403をレスポンスに書き込み、
// okにfalseを返す。存在確認が所有者チェックより先である順序はAPI契約の一部。
func (s *Server) findOwnedPost(c *gin.Context, postID string) (blogdb.GetPostByIDRow, bool) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーが取得できません"})
		return blogdb.GetPostByIDRow{}, false
	}

	post, err := s.queries.GetPostByID(c.Request.Context(), postID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "投稿が見つかりません"})
		return blogdb.GetPostByIDRow{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の取得に失敗しました"})
		log.Printf("投稿取得エラー: %v", err)
		return blogdb.GetPostByIDRow{}, false
	}

	if post.OwnerID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "この投稿を操作する権限がありません"})
		return blogdb.GetPostByIDRow{}, false
	}

	return post, true
}

// handleUpdatePost は投稿の全置換更新を処理するハンドラを返す。
// 所有者のみが更新できる。publishedを省略した場合は公開として扱う。
func (s *Server) handleUpdatePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")

		// 存在確認と所有者チェックはペイロードの検証より先に行う
		if _, ok := s.findOwnedPost(c, postID); !ok {
			return
		}

		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		if err := s.queries.UpdatePost(c.Request.Context(), blogdb.UpdatePostParams{
			Title:     req.Title,
			Content:   req.Content,
			Published: publishedFlag(req.Published),
			ID:        postID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の更新に失敗しました"})
			log.Printf("投稿更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後の投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toPostResponse(updated))
	}
}

// handlePatchPost は投稿の部分更新を処理するハンドラを返す。
// リクエストに含まれるフィールドだけを上書きし、省略された
// フィールドは保存済みの値を維持する。
func (s *Server) handlePatchPost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")

		post, ok := s.findOwnedPost(c, postID)
		if !ok {
			return
		}

		var req patchPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		// 保存済みの値にリクエストで指定されたフィールドだけを重ねる
		title := post.Title
		if req.Title != nil {
			title = *req.Title
		}
		content := post.Content
		if req.Content != nil {
			content = *req.Content
		}
		published := post.Published
		if req.Published != nil {
			published = publishedFlag(req.Published)
		}

		if err := s.queries.UpdatePost(c.Request.Context(), blogdb.UpdatePostParams{
			Title:     title,
			Content:   content,
			Published: published,
			ID:        postID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の更新に失敗しました"})
			log.Printf("投稿更新エラー: %v", err)
			return
		}

		updated, err := s.queries.GetPostByID(c.Request.Context(), postID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "更新後の投稿の取得に失敗しました"})
			log.Printf("投稿取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toPostResponse(updated))
	}
}

// handleDeletePost は投稿削除を処理するハンドラを返す。
// 所有者のみが削除できる。削除は即時で、論理削除は行わない。
func (s *Server) handleDeletePost() gin.HandlerFunc {
	return func(c *gin.Context) {
		postID := c.Param("id")

		if _, ok := s.findOwnedPost(c, postID); !ok {
			return
		}

		if err := s.queries.DeletePost(c.Request.Context(), postID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "投稿の削除に失敗しました"})
			log.Printf("投稿削除エラー: %v", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
