package repository

import (
	"context"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// ChatRepository chat history bilan ishlash uchun interface
type ChatRepository interface {
	// SaveMessage xabarni saqlash
	SaveMessage(ctx context.Context, message entity.Message) error

	// GetHistory sessiya chat tarixini olish (eski -> yangi)
	GetHistory(ctx context.Context, sessionID string, limit int) ([]entity.Message, error)

	// GetAllMessages barcha xabarlarni olish (so'nggi limit ta)
	GetAllMessages(ctx context.Context, limit int) ([]entity.Message, error)

	// ClearHistory sessiya tarixini tozalash
	ClearHistory(ctx context.Context, sessionID string) error

	// ClearAll barcha tarixni o'chirish
	ClearAll(ctx context.Context) error

	// PurgeBefore oxirgi xabari before dan eski sessiyalarni o'chiradi, o'chirilgan sessiyalar sonini qaytaradi
	PurgeBefore(ctx context.Context, before time.Time) (int, error)
}
