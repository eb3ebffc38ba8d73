// Package password はbcryptによるパスワードのハッシュ化と検証を提供する。
//
// 平文パスワードはユーザー登録時にハッシュ化して保存し、
// ログイン時にVerifyで照合する。平文を保存することは決してない。
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash は平文パスワードをbcryptでハッシュ化する。
// ソルトはbcryptが内部で生成するため、同じ平文でも毎回異なるダイジェストになる。
func Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("パスワードのハッシュ化に失敗: %w", err)
	}
	return string(digest), nil
}

// Verify は平文パスワードが保存済みダイジェストと一致するかを検証する。
func Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
