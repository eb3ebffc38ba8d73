// 投稿通知コンシューマのエントリポイント。
// RabbitMQのキューを購読し、受信したメッセージ本文をログに出力する。
// 接続が切れた場合は一定間隔で再接続を試みる。
package main

import (
	"log"

	"github.com/nao1215/blog/pkg/config"
	"github.com/nao1215/blog/pkg/queue"
)

func main() {
	cfg := config.Load()

	consumer := queue.NewConsumer(cfg.RabbitMQURL, cfg.QueueName, nil)
	log.Printf("通知コンシューマを起動します: queue=%s", cfg.QueueName)
	consumer.Run()
}
