// Package middleware はGinベースのブログAPIで使用する共通ミドルウェアを提供する。
//
// JWT認証トークンの発行と検証、パニックリカバリ、CORS設定、
// Prometheusメトリクス収集など、HTTPレイヤ横断の関心事を含む。
package middleware
