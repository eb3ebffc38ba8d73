// ブログAPIサービスのエントリポイント。
// ユーザー登録、ログイン、投稿のCRUDを提供し、
// 投稿作成時にRabbitMQへ通知を送信する。
package main

import (
	"log"

	"github.com/nao1215/blog/internal/blog"
	"github.com/nao1215/blog/pkg/config"
	"github.com/nao1215/blog/pkg/queue"
)

func main() {
	cfg := config.Load()

	publisher := queue.NewPublisher(cfg.RabbitMQURL, cfg.QueueName)
	defer publisher.Close()

	server, err := blog.NewServer(cfg, publisher)
	if err != nil {
		log.Fatalf("ブログサーバーの初期化に失敗: %v", err)
	}

	log.Printf("ブログAPIサービスを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("ブログAPIサービスの起動に失敗: %v", err)
	}
}
