// Package queue はRabbitMQへの投稿通知の送信と受信を提供する。
//
// Publisherは有限バッファを持つバックグラウンドワーカーで送信する。
// ブローカー障害やバッファ溢れはログに記録して破棄し、
// 投稿作成リクエスト自体を失敗させることはない。
// ConsumerはキューをAuto-Ackで購読し、受信したメッセージ本文をログに出力する。
// 接続が切れた場合は一定間隔で再接続を試みる。
package queue
