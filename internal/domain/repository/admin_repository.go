package repository

import (
	"context"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// SessionStore admin va mijoz sessiyalarini saqlash uchun interface
type SessionStore interface {
	// Create sessiyani saqlash
	Create(ctx context.Context, session entity.Session) error

	// Get token bo'yicha sessiyani olish (muddati o'tgan bo'lsa ErrUnauthorized)
	Get(ctx context.Context, token string) (*entity.Session, error)

	// Touch LastActivity ni yangilash
	Touch(ctx context.Context, token string) error

	// Delete sessiyani o'chirish (logout)
	Delete(ctx context.Context, token string) error

	// PurgeExpired muddati o'tgan sessiyalarni tozalash
	PurgeExpired(ctx context.Context) (int, error)
}

// AdminRepository admin bilan ishlash uchun interface
type AdminRepository interface {
	Create(ctx context.Context, admin entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	List(ctx context.Context) ([]entity.Admin, error)
	Delete(ctx context.Context, id string) error

	// LogAction admin harakatini loglash
	LogAction(ctx context.Context, action entity.AdminAction) error

	// Actions so'nggi harakatlar
	Actions(ctx context.Context, limit int) ([]entity.AdminAction, error)
}

// CustomerRepository mijozlar bilan ishlash uchun interface
type CustomerRepository interface {
	Create(ctx context.Context, customer entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
}
