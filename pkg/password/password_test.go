package password

import (
	"strings"
	"testing"
)

// TestHash はHash関数を検証する。
func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("ダイジェストが平文と一致しないこと", func(t *testing.T) {
		t.Parallel()

		digest, err := Hash("s3cret-password")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		if digest == "s3cret-password" {
			t.Error("ダイジェストが平文のまま")
		}
		if !strings.HasPrefix(digest, "$2") {
			t.Errorf("bcrypt形式のダイジェストではない: %q", digest)
		}
	})

	t.Run("同じ平文でも毎回異なるダイジェストになること", func(t *testing.T) {
		t.Parallel()

		first, err := Hash("same-input")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		second, err := Hash("same-input")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		if first == second {
			t.Error("ソルトが効いておらずダイジェストが同一")
		}
	})
}

// TestVerify はVerify関数を検証する。
func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("元の平文で検証が成功すること", func(t *testing.T) {
		t.Parallel()

		digest, err := Hash("correct-horse")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		if !Verify("correct-horse", digest) {
			t.Error("元の平文での検証に失敗")
		}
	})

	t.Run("異なる平文で検証が失敗すること", func(t *testing.T) {
		t.Parallel()

		digest, err := Hash("correct-horse")
		if err != nil {
			t.Fatalf("Hash()でエラーが発生: %v", err)
		}
		if Verify("battery-staple", digest) {
			t.Error("異なる平文での検証が成功してしまった")
		}
	})

	t.Run("不正なダイジェストで検証が失敗すること", func(t *testing.T) {
		t.Parallel()

		if Verify("anything", "not-a-bcrypt-digest") {
			t.Error("不正なダイジェストでの検証が成功してしまった")
		}
	})
}
