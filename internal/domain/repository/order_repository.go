package repository

import (
	"context"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// OrderRepository buyurtmalar uchun interface
type OrderRepository interface {
	// Create buyurtmani saqlash va tartib raqamini berish
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)

	// List holat bo'yicha (bo'sh = hammasi), yangi -> eski
	List(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)

	// ListSince since dan keyin yaratilgan buyurtmalar, eski -> yangi
	ListSince(ctx context.Context, since time.Time) ([]entity.Order, error)

	// ListAfter tartib raqami number dan katta buyurtmalar, o'sish tartibida
	ListAfter(ctx context.Context, number int64) ([]entity.Order, error)
}

// OrderNotifier yangi buyurtmalar haqida xabar beruvchi
type OrderNotifier interface {
	NotifyNewOrder(ctx context.Context, order entity.Order) error
}

// StoreRepository kompaniya, karusel va sozlamalar
type StoreRepository interface {
	GetCompany(ctx context.Context) (*entity.Company, error)
	SaveCompany(ctx context.Context, company entity.Company) error

	SaveSlide(ctx context.Context, slide entity.CarouselSlide) error
	GetSlide(ctx context.Context, id string) (*entity.CarouselSlide, error)
	ListSlides(ctx context.Context) ([]entity.CarouselSlide, error)
	DeleteSlide(ctx context.Context, id string) error

	GetSettings(ctx context.Context) (entity.Settings, error)
	SaveSettings(ctx context.Context, settings entity.Settings) error
}
