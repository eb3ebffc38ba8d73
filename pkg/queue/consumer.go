package queue

import (
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// reconnectWait は接続失敗から再接続までの待ち時間。
const reconnectWait = 5 * time.Second

// Consumer はキューからメッセージを受信し続けるワーカー。
type Consumer struct {
	// url はAMQP接続URL。
	url string
	// queueName は購読するキュー名。
	queueName string
	// handler は受信した1メッセージの本文を処理する。
	handler func(body []byte)
}

// NewConsumer は新しいConsumerを生成する。
// handlerがnilの場合は受信内容をログに出力するだけのハンドラを使用する。
func NewConsumer(url, queueName string, handler func(body []byte)) *Consumer {
	if handler == nil {
		handler = func(body []byte) {
			log.Printf("メッセージを受信: %s", body)
		}
	}
	return &Consumer{
		url:       url,
		queueName: queueName,
		handler:   handler,
	}
}

// Run はメッセージの受信を開始する。接続が切れた場合は
// 一定時間待ってから再接続を試みる。このメソッドは戻らない。
func (c *Consumer) Run() {
	for {
		if err := c.consume(); err != nil {
			log.Printf("キューへの接続に失敗: %v", err)
		}
		time.Sleep(reconnectWait)
	}
}

// consume は1接続分の受信処理。接続が切れるまでメッセージを処理し続ける。
func (c *Consumer) consume() error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return fmt.Errorf("ブローカーへの接続に失敗: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("チャネルのオープンに失敗: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(c.queueName, false, false, false, false, nil); err != nil {
		return fmt.Errorf("キュー %q の宣言に失敗: %w", c.queueName, err)
	}

	deliveries, err := ch.Consume(c.queueName, "", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("キュー %q の購読に失敗: %w", c.queueName, err)
	}

	log.Printf("キュー %q の購読を開始しました", c.queueName)
	for d := range deliveries {
		c.handler(d.Body)
	}
	return fmt.Errorf("キュー %q との接続が切断されました", c.queueName)
}
