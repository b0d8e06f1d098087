package repository

import (
	"context"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// ProductFilter mahsulotlar ro'yxati filtri
type ProductFilter struct {
	Query       string
	Category    string
	ProductType entity.ProductType
	Featured    *bool
}

// ProductRepository mahsulotlar bilan ishlash uchun interface
type ProductRepository interface {
	// Save mahsulotni saqlash (create yoki update)
	Save(ctx context.Context, product entity.Product) error

	// SaveMany ko'p mahsulotlarni saqlash
	SaveMany(ctx context.Context, products []entity.Product) error

	// GetByID ID bo'yicha mahsulotni olish
	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// List filtr bo'yicha mahsulotlar (CreatedAt bo'yicha yangi -> eski)
	List(ctx context.Context, filter ProductFilter) ([]entity.Product, error)

	// Delete mahsulotni o'chirish
	Delete(ctx context.Context, id string) error

	// Clear barcha mahsulotlarni o'chirish
	Clear(ctx context.Context) error
}

// HardwareRepository hardware katalogi uchun interface
type HardwareRepository interface {
	Save(ctx context.Context, item entity.HardwareItem) error
	SaveMany(ctx context.Context, items []entity.HardwareItem) error
	GetByID(ctx context.Context, id string) (*entity.HardwareItem, error)

	// List kategoriya bo'yicha (bo'sh = hammasi), narx bo'yicha o'sish tartibida
	List(ctx context.Context, category entity.HardwareCategory) ([]entity.HardwareItem, error)

	// Search model/brand bo'yicha qidirish
	Search(ctx context.Context, query string) ([]entity.HardwareItem, error)

	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// CategoryRepository do'kon kategoriyalari
type CategoryRepository interface {
	Create(ctx context.Context, category entity.Category) error
	Update(ctx context.Context, category entity.Category) error
	Get(ctx context.Context, key string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, key string) error
}

// HardwareCategoryRepository hardware kategoriya yorliqlari
type HardwareCategoryRepository interface {
	Create(ctx context.Context, category entity.HardwareCategoryInfo) error
	Update(ctx context.Context, category entity.HardwareCategoryInfo) error
	Get(ctx context.Context, key string) (*entity.HardwareCategoryInfo, error)
	List(ctx context.Context) ([]entity.HardwareCategoryInfo, error)
	Delete(ctx context.Context, key string) error
}
