// Package config はブログAPIサービスの設定を環境変数から読み込む。
//
// .envファイルが存在する場合はgodotenvで読み込み、環境変数が未設定の
// 項目にはデフォルト値を適用する。設定はmainで構築し、依存するコンポーネント
// へ明示的に渡す。パッケージグローバルな設定状態は持たない。
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config はブログAPIサービスの全設定値。
type Config struct {
	// Port はHTTPサーバーのリッスンポート。
	Port string
	// DBPath はSQLiteデータベースファイルのパス。
	DBPath string
	// JWTSecret はJWT署名用の秘密鍵。
	JWTSecret string
	// TokenExpiry はアクセストークンの有効期間。
	TokenExpiry time.Duration
	// RabbitMQURL はメッセージブローカーへのAMQP接続URL。
	RabbitMQURL string
	// QueueName は投稿通知の送信先キュー名。
	QueueName string
	// FrontendURL はCORSで許可するオリジン。"*" はすべて許可。
	FrontendURL string
}

// Load は.envと環境変数から設定を読み込む。
// .envファイルが存在しない場合は環境変数のみを使用する。
func Load() *Config {
	// .envが無いのは通常運用なのでエラーは無視する
	_ = godotenv.Load()

	expiryMinutes := 30
	if v := os.Getenv("TOKEN_EXPIRY_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			expiryMinutes = n
		}
	}

	return &Config{
		Port:        getEnvOr("PORT", "8080"),
		DBPath:      getEnvOr("BLOG_DB", "blog.db"),
		JWTSecret:   getEnvOr("JWT_SECRET", "dev-secret-key"),
		TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
		RabbitMQURL: amqpURL(),
		QueueName:   getEnvOr("QUEUE_NAME", "posts"),
		FrontendURL: getEnvOr("FRONTEND_URL", "*"),
	}
}

// amqpURL はRabbitMQの接続情報を環境変数から組み立てる。
func amqpURL() string {
	host := getEnvOr("RABBITMQ_HOST", "localhost")
	port := getEnvOr("RABBITMQ_PORT", "5672")
	user := getEnvOr("RABBITMQ_USER", "guest")
	password := getEnvOr("RABBITMQ_PASSWORD", "guest")
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", user, password, host, port)
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
