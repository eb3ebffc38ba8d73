// Package blog はブログAPIサービスの本体を提供する。
//
// ユーザー登録、JWTによるログイン、投稿のCRUDを1つのGinサーバーで扱う。
// 投稿の作成・更新・削除は認証必須で、更新と削除は所有者のみが行える。
// 投稿作成時にはメッセージキューへ通知を送信する。
package blog
