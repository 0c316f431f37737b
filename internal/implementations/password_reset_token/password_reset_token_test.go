package passwordresettoken

import (
	"storemap/internal/core/domain/user"
	"testing"
)

func TestResetTokenGenerator(t *testing.T) {
	generator := NewGenerator()
	tokens := make(map[user.PasswordResetToken]struct{})
	for i := 0; i < 100; i++ {
		token := generator.GenerateResetToken()
		if len(string(token)) != tokenByteLength*2 {
			t.Fatalf("unexpected token length: %v", token)
		}
		if _, ok := tokens[token]; ok {
			t.Fatalf("token %v already exists", token)
		}
		tokens[token] = struct{}{}
	}
}
