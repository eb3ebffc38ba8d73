package queue

import (
	"context"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// defaultBuffer は送信待ちメッセージの最大保持数。
const defaultBuffer = 64

// publishTimeout は1メッセージあたりのブローカー往復の上限時間。
const publishTimeout = 10 * time.Second

// Publisher はRabbitMQへ通知メッセージを非同期に送信する。
// Publishはリクエスト処理をブロックしない。送信はバックグラウンドワーカーが
// 1件ずつ行い、失敗したメッセージはログに記録して破棄する。
type Publisher struct {
	// url はAMQP接続URL。
	url string
	// queueName は送信先キュー名。
	queueName string
	// messages は送信待ちメッセージのバッファ。
	messages chan string
	// done はワーカー終了の通知チャネル。
	done chan struct{}
	// send は1メッセージの送信処理。テストで差し替える。
	send func(message string) error
}

// NewPublisher は新しいPublisherを生成し、送信ワーカーを起動する。
func NewPublisher(url, queueName string) *Publisher {
	p := &Publisher{
		url:       url,
		queueName: queueName,
		messages:  make(chan string, defaultBuffer),
		done:      make(chan struct{}),
	}
	p.send = p.sendOnce
	go p.run()
	return p
}

// Publish はメッセージを送信キューに積む。ブロックしない。
// バッファが満杯の場合はメッセージをログに記録して破棄する。
func (p *Publisher) Publish(message string) {
	select {
	case p.messages <- message:
	default:
		log.Printf("通知バッファが満杯のためメッセージを破棄: %q", message)
	}
}

// Close は受付を終了し、バッファに残ったメッセージの送信完了を待つ。
func (p *Publisher) Close() {
	close(p.messages)
	<-p.done
}

// run は送信ワーカーのメインループ。
func (p *Publisher) run() {
	defer close(p.done)
	for message := range p.messages {
		if err := p.send(message); err != nil {
			// 通知はベストエフォートなので失敗しても破棄するだけ
			log.Printf("通知の送信に失敗（破棄します）: %v", err)
		}
	}
}

// sendOnce は1メッセージをRabbitMQへ送信する。
// 接続・キュー宣言・送信・切断を毎回行う。キュー宣言は冪等。
func (p *Publisher) sendOnce(message string) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("ブローカーへの接続に失敗: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("チャネルのオープンに失敗: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(p.queueName, false, false, false, false, nil); err != nil {
		return fmt.Errorf("キュー %q の宣言に失敗: %w", p.queueName, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := ch.PublishWithContext(ctx, "", p.queueName, false, false, amqp.Publishing{
		ContentType: "text/plain",
		Body:        []byte(message),
	}); err != nil {
		return fmt.Errorf("キュー %q への送信に失敗: %w", p.queueName, err)
	}
	return nil
}
