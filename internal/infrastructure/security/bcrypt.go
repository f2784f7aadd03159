package security

import (
	"github.com/llOrtegall/backend-app-full-stack/internal/application"
	"github.com/llOrtegall/backend-app-full-stack/pkg/helpers"
)

// BcryptEncryptor implements the PasswordEncryptor port with bcrypt.
type BcryptEncryptor struct{}

func NewBcryptEncryptor() *BcryptEncryptor {
	return &BcryptEncryptor{}
}

func (e *BcryptEncryptor) Hash(plain string) (string, error) {
	return helpers.HashPassword(plain)
}

func (e *BcryptEncryptor) Compare(plain, hash string) bool {
	return helpers.CompareHashAndPassword(hash, plain)
}

var _ application.PasswordEncryptor = (*BcryptEncryptor)(nil)
