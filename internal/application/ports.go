package application

import (
	"context"
	"io"
)

// PasswordEncryptor is the one-way hashing port used during registration.
type PasswordEncryptor interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}

// ImageUpload is an in-memory image payload handed to the storage port.
type ImageUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

// FileStorage is the object-storage port for product images. UploadImage
// returns the public reference of the stored object.
type FileStorage interface {
	UploadImage(ctx context.Context, img ImageUpload) (string, error)
	DeleteImage(ctx context.Context, url string) error
}
