package passwordresettoken

import (
	"crypto/rand"
	"encoding/hex"
	"storemap/internal/core/domain/user"
)

const tokenByteLength = 20

// Generator produces opaque hex encoded reset tokens. The token itself
// carries no user information, validity lives in the credential store.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateResetToken() user.PasswordResetToken {
	b := make([]byte, tokenByteLength)
	if _, err := rand.Read(b); err != nil {
		panic("could not read random bytes for password reset token")
	}
	return user.PasswordResetToken(hex.EncodeToString(b))
}
