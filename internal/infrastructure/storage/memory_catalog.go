package storage

import (
	"context"
	"fmt"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type memoryProductRepository struct {
	table *memoryTable[entity.Product]
}

// NewMemoryProductRepository in-memory product repository yaratish
func NewMemoryProductRepository() repository.ProductRepository {
	return &memoryProductRepository{table: newMemoryTable(entity.Product.Clone)}
}

// Save mahsulotni saqlash
func (r *memoryProductRepository) Save(ctx context.Context, product entity.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product id: %w", repository.ErrInvalid)
	}
	r.table.put(product.ID, product)
	return nil
}

// SaveMany ko'p mahsulotlarni saqlash
func (r *memoryProductRepository) SaveMany(ctx context.Context, products []entity.Product) error {
	for _, p := range products {
		if err := r.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// GetByID ID bo'yicha mahsulotni olish
func (r *memoryProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

// List filtr bo'yicha mahsulotlar
func (r *memoryProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	return filterProducts(r.table.all(), filter), nil
}

// Delete mahsulotni o'chirish
func (r *memoryProductRepository) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// Clear barcha mahsulotlarni o'chirish
func (r *memoryProductRepository) Clear(ctx context.Context) error {
	r.table.reset()
	return nil
}

type memoryHardwareRepository struct {
	table *memoryTable[entity.HardwareItem]
}

// NewMemoryHardwareRepository in-memory hardware repository yaratish
func NewMemoryHardwareRepository() repository.HardwareRepository {
	return &memoryHardwareRepository{table: newMemoryTable(entity.HardwareItem.Clone)}
}

func (r *memoryHardwareRepository) Save(ctx context.Context, item entity.HardwareItem) error {
	if item.ID == "" {
		return fmt.Errorf("hardware id: %w", repository.ErrInvalid)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("hardware category %q: %w", item.Category, repository.ErrInvalid)
	}
	r.table.put(item.ID, item)
	return nil
}

func (r *memoryHardwareRepository) SaveMany(ctx context.Context, items []entity.HardwareItem) error {
	for _, it := range items {
		if err := r.Save(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

func (r *memoryHardwareRepository) GetByID(ctx context.Context, id string) (*entity.HardwareItem, error) {
	it, ok := r.table.get(id)
	if !ok {
		return nil, fmt.Errorf("hardware %s: %w", id, repository.ErrNotFound)
	}
	return &it, nil
}

func (r *memoryHardwareRepository) List(ctx context.Context, category entity.HardwareCategory) ([]entity.HardwareItem, error) {
	return filterHardware(r.table.all(), category), nil
}

// Search model/brand bo'yicha qidirish
func (r *memoryHardwareRepository) Search(ctx context.Context, query string) ([]entity.HardwareItem, error) {
	return searchHardware(r.table.all(), query), nil
}

func (r *memoryHardwareRepository) Delete(ctx context.Context, id string) error {
	if !r.table.remove(id) {
		return fmt.Errorf("hardware %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (r *memoryHardwareRepository) Clear(ctx context.Context) error {
	r.table.reset()
	return nil
}
