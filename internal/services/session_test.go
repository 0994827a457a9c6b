package services

import (
	"encoding/base64"
	"testing"
)

func TestGenerateToken(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}

		raw, err := base64.URLEncoding.DecodeString(token)
		if err != nil {
			t.Fatalf("token is not URL-safe base64: %v", err)
		}
		if len(raw) != 32 {
			t.Fatalf("expected 32 random bytes, got %d", len(raw))
		}

		if _, dup := seen[token]; dup {
			t.Fatal("duplicate token generated")
		}
		seen[token] = struct{}{}
	}
}
