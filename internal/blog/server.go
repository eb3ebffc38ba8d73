package blog

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	blogdb "github.com/nao1215/blog/internal/blog/db"
	"github.com/nao1215/blog/pkg/config"
	"github.com/nao1215/blog/pkg/middleware"
)

// Publisher は投稿作成時の通知送信先。ベストエフォートで送信され、
// 送信の成否が投稿作成の成否に影響することはない。
type Publisher interface {
	// Publish はメッセージを送信キューに積む。ブロックしない。
	Publish(message string)
}

// Server はブログAPIサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *blogdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
	// tokenExpiry はアクセストークンの有効期間。
	tokenExpiry time.Duration
	// publisher は投稿作成通知の送信先。
	publisher Publisher
}

// NewServer は新しいブログサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
func NewServer(cfg *config.Config, publisher Publisher) (*Server, error) {
	sqlDB, err := sql.Open("sqlite", cfg.DBPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))
	router.Use(middleware.Metrics(prometheus.DefaultRegisterer))

	s := &Server{
		router:      router,
		port:        cfg.Port,
		queries:     blogdb.New(sqlDB),
		db:          sqlDB,
		jwtSecret:   cfg.JWTSecret,
		tokenExpiry: cfg.TokenExpiry,
		publisher:   publisher,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// ログイン（認証不要）
	s.router.POST("/login", s.handleLogin())

	// ユーザー登録・参照（認証不要）
	users := s.router.Group("/users")
	{
		users.POST("", s.handleCreateUser())
		users.GET("/:id", s.handleGetUser())
	}

	// 投稿のCRUD（認証必須）
	posts := s.router.Group("/posts")
	posts.Use(middleware.JWTAuth(s.jwtSecret))
	posts.Use(s.requireUser())
	{
		posts.GET("", s.handleListPosts())
		posts.POST("", s.handleCreatePost())
		posts.GET("/:id", s.handleGetPost())
		posts.PUT("/:id", s.handleUpdatePost())
		posts.PATCH("/:id", s.handlePatchPost())
		posts.DELETE("/:id", s.handleDeletePost())
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "yet another boring root phrase"})
	})

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "blog"})
	})

	// Prometheusメトリクス
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// requireUser はトークンのサブジェクトをユーザーエンティティに解決するミドルウェアを返す。
// JWTAuthの後段に適用する。ユーザーが既に削除されている場合は401を返す。
func (s *Server) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if err == sql.ErrNoRows {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "ユーザーが存在しません"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "ユーザーの取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		c.Set("current_user", user)
		c.Next()
	}
}

// currentUser はrequireUserミドルウェアが解決したユーザーを取得する。
func currentUser(c *gin.Context) (blogdb.User, bool) {
	v, ok := c.Get("current_user")
	if !ok {
		return blogdb.User{}, false
	}
	user, ok := v.(blogdb.User)
	return user, ok
}
