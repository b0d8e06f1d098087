package storage

import (
	"context"
	"fmt"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type memoryCategoryRepository struct {
	table *memoryTable[entity.Category]
}

// NewMemoryCategoryRepository do'kon kategoriyalari uchun in-memory repository
func NewMemoryCategoryRepository() repository.CategoryRepository {
	return &memoryCategoryRepository{table: newMemoryTable[entity.Category](nil)}
}

func (r *memoryCategoryRepository) Create(ctx context.Context, category entity.Category) error {
	if !r.table.insert(category.Key, category) {
		return fmt.Errorf("category %s: %w", category.Key, repository.ErrConflict)
	}
	return nil
}

func (r *memoryCategoryRepository) Update(ctx context.Context, category entity.Category) error {
	if !r.table.replace(category.Key, category) {
		return fmt.Errorf("category %s: %w", category.Key, repository.ErrNotFound)
	}
	return nil
}

func (r *memoryCategoryRepository) Get(ctx context.Context, key string) (*entity.Category, error) {
	c, ok := r.table.get(key)
	if !ok {
		return nil, fmt.Errorf("category %s: %w", key, repository.ErrNotFound)
	}
	return &c, nil
}

func (r *memoryCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	cats := r.table.all()
	sortCategories(cats)
	return cats, nil
}

func (r *memoryCategoryRepository) Delete(ctx context.Context, key string) error {
	if !r.table.remove(key) {
		return fmt.Errorf("category %s: %w", key, repository.ErrNotFound)
	}
	return nil
}

type memoryHardwareCategoryRepository struct {
	table *memoryTable[entity.HardwareCategoryInfo]
}

// NewMemoryHardwareCategoryRepository hardware kategoriya yorliqlari uchun in-memory repository
func NewMemoryHardwareCategoryRepository() repository.HardwareCategoryRepository {
	return &memoryHardwareCategoryRepository{table: newMemoryTable[entity.HardwareCategoryInfo](nil)}
}

func (r *memoryHardwareCategoryRepository) Create(ctx context.Context, category entity.HardwareCategoryInfo) error {
	if !r.table.insert(category.Key, category) {
		return fmt.Errorf("hardware category %s: %w", category.Key, repository.ErrConflict)
	}
	return nil
}

func (r *memoryHardwareCategoryRepository) Update(ctx context.Context, category entity.HardwareCategoryInfo) error {
	if !r.table.replace(category.Key, category) {
		return fmt.Errorf("hardware category %s: %w", category.Key, repository.ErrNotFound)
	}
	return nil
}

func (r *memoryHardwareCategoryRepository) Get(ctx context.Context, key string) (*entity.HardwareCategoryInfo, error) {
	c, ok := r.table.get(key)
	if !ok {
		return nil, fmt.Errorf("hardware category %s: %w", key, repository.ErrNotFound)
	}
	return &c, nil
}

func (r *memoryHardwareCategoryRepository) List(ctx context.Context) ([]entity.HardwareCategoryInfo, error) {
	cats := r.table.all()
	sortHardwareCategories(cats)
	return cats, nil
}

func (r *memoryHardwareCategoryRepository) Delete(ctx context.Context, key string) error {
	if !r.table.remove(key) {
		return fmt.Errorf("hardware category %s: %w", key, repository.ErrNotFound)
	}
	return nil
}
