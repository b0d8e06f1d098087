package repository

import (
	"context"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// ExcelParser Excel fayllarni parse qilish uchun interface
type ExcelParser interface {
	// ParseHardware .xlsx dan hardware qismlarini o'qish
	ParseHardware(ctx context.Context, data []byte, filename string) ([]entity.HardwareItem, error)

	// ParseProducts .xlsx dan mahsulotlarni o'qish
	ParseProducts(ctx context.Context, data []byte, filename string) ([]entity.Product, error)
}

// ExcelExporter backup uchun .xlsx yozish
type ExcelExporter interface {
	ExportHardware(ctx context.Context, items []entity.HardwareItem) ([]byte, error)
	ExportProducts(ctx context.Context, products []entity.Product) ([]byte, error)
}
