package blog

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。db/schema.sql と同期すること。
const schema = `
CREATE TABLE IF NOT EXISTS users (
    -- ユーザーの一意識別子
    id TEXT PRIMARY KEY,
    -- メールアドレス。ログインIDを兼ねる
    email TEXT NOT NULL UNIQUE,
    -- bcryptでハッシュ化されたパスワード
    password_hash TEXT NOT NULL,
    -- 登録日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS posts (
    -- 投稿の一意識別子
    id TEXT PRIMARY KEY,
    -- 投稿タイトル
    title TEXT NOT NULL,
    -- 投稿本文
    content TEXT NOT NULL,
    -- 公開フラグ。デフォルトは公開
    published INTEGER NOT NULL DEFAULT 1,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 投稿の所有者。作成後は変更されない
    owner_id TEXT NOT NULL REFERENCES users(id)
);

-- 所有者での検索を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_posts_owner_id
    ON posts(owner_id);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
