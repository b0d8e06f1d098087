package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound qidirilgan obyekt topilmadi
	ErrNotFound = errors.New("not found")
	// ErrConflict kalit allaqachon mavjud
	ErrConflict = errors.New("already exists")
	// ErrInvalid noto'g'ri kiritilgan ma'lumot
	ErrInvalid = errors.New("invalid input")
	// ErrUnauthorized sessiya yo'q yoki muddati o'tgan
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUnsupported imkoniyat ushbu provayderda yo'q
	ErrUnsupported = errors.New("unsupported")
)

// BusinessError is an API-reported failure ({"success": false, "error": "..."}).
type BusinessError struct {
	Endpoint string
	Message  string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}
