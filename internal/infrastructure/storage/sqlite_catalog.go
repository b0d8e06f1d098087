package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type sqliteProductRepository struct {
	docs sqliteCollection[entity.Product]
}

// NewSQLiteProductRepository SQLite asosidagi mahsulotlar repository
func NewSQLiteProductRepository(db *sql.DB) repository.ProductRepository {
	return &sqliteProductRepository{docs: newCollection[entity.Product](db, "products")}
}

func (s *sqliteProductRepository) Save(ctx context.Context, product entity.Product) error {
	if product.ID == "" {
		return fmt.Errorf("product id: %w", repository.ErrInvalid)
	}
	return s.docs.upsert(ctx, product.ID, product)
}

func (s *sqliteProductRepository) SaveMany(ctx context.Context, products []entity.Product) error {
	for _, p := range products {
		if err := s.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok, err := s.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	return &p, nil
}

func (s *sqliteProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	all, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	return filterProducts(all, filter), nil
}

func (s *sqliteProductRepository) Delete(ctx context.Context, id string) error {
	ok, err := s.docs.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("product %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (s *sqliteProductRepository) Clear(ctx context.Context) error {
	return s.docs.clear(ctx)
}

type sqliteHardwareRepository struct {
	docs sqliteCollection[entity.HardwareItem]
}

// NewSQLiteHardwareRepository SQLite asosidagi hardware repository
func NewSQLiteHardwareRepository(db *sql.DB) repository.HardwareRepository {
	return &sqliteHardwareRepository{docs: newCollection[entity.HardwareItem](db, "hardware")}
}

func (s *sqliteHardwareRepository) Save(ctx context.Context, item entity.HardwareItem) error {
	if item.ID == "" {
		return fmt.Errorf("hardware id: %w", repository.ErrInvalid)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("hardware category %q: %w", item.Category, repository.ErrInvalid)
	}
	return s.docs.upsert(ctx, item.ID, item)
}

func (s *sqliteHardwareRepository) SaveMany(ctx context.Context, items []entity.HardwareItem) error {
	for _, it := range items {
		if err := s.Save(ctx, it); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteHardwareRepository) GetByID(ctx context.Context, id string) (*entity.HardwareItem, error) {
	it, ok, err := s.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("hardware %s: %w", id, repository.ErrNotFound)
	}
	return &it, nil
}

func (s *sqliteHardwareRepository) List(ctx context.Context, category entity.HardwareCategory) ([]entity.HardwareItem, error) {
	all, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	return filterHardware(all, category), nil
}

func (s *sqliteHardwareRepository) Search(ctx context.Context, query string) ([]entity.HardwareItem, error) {
	all, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	return searchHardware(all, query), nil
}

func (s *sqliteHardwareRepository) Delete(ctx context.Context, id string) error {
	ok, err := s.docs.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("hardware %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (s *sqliteHardwareRepository) Clear(ctx context.Context) error {
	return s.docs.clear(ctx)
}

type sqliteCategoryRepository struct {
	docs sqliteCollection[entity.Category]
}

// NewSQLiteCategoryRepository do'kon kategoriyalari (SQLite)
func NewSQLiteCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &sqliteCategoryRepository{docs: newCollection[entity.Category](db, "categories")}
}

func (s *sqliteCategoryRepository) Create(ctx context.Context, category entity.Category) error {
	ok, err := s.docs.insert(ctx, category.Key, category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("category %s: %w", category.Key, repository.ErrConflict)
	}
	return nil
}

func (s *sqliteCategoryRepository) Update(ctx context.Context, category entity.Category) error {
	ok, err := s.docs.update(ctx, category.Key, category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("category %s: %w", category.Key, repository.ErrNotFound)
	}
	return nil
}

func (s *sqliteCategoryRepository) Get(ctx context.Context, key string) (*entity.Category, error) {
	c, ok, err := s.docs.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("category %s: %w", key, repository.ErrNotFound)
	}
	return &c, nil
}

func (s *sqliteCategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	cats, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	sortCategories(cats)
	return cats, nil
}

func (s *sqliteCategoryRepository) Delete(ctx context.Context, key string) error {
	ok, err := s.docs.remove(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("category %s: %w", key, repository.ErrNotFound)
	}
	return nil
}

type sqliteHardwareCategoryRepository struct {
	docs sqliteCollection[entity.HardwareCategoryInfo]
}

// NewSQLiteHardwareCategoryRepository hardware kategoriya yorliqlari (SQLite)
func NewSQLiteHardwareCategoryRepository(db *sql.DB) repository.HardwareCategoryRepository {
	return &sqliteHardwareCategoryRepository{docs: newCollection[entity.HardwareCategoryInfo](db, "hardware_categories")}
}

func (s *sqliteHardwareCategoryRepository) Create(ctx context.Context, category entity.HardwareCategoryInfo) error {
	ok, err := s.docs.insert(ctx, category.Key, category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("hardware category %s: %w", category.Key, repository.ErrConflict)
	}
	return nil
}

func (s *sqliteHardwareCategoryRepository) Update(ctx context.Context, category entity.HardwareCategoryInfo) error {
	ok, err := s.docs.update(ctx, category.Key, category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("hardware category %s: %w", category.Key, repository.ErrNotFound)
	}
	return nil
}

func (s *sqliteHardwareCategoryRepository) Get(ctx context.Context, key string) (*entity.HardwareCategoryInfo, error) {
	c, ok, err := s.docs.get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("hardware category %s: %w", key, repository.ErrNotFound)
	}
	return &c, nil
}

func (s *sqliteHardwareCategoryRepository) List(ctx context.Context) ([]entity.HardwareCategoryInfo, error) {
	cats, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	sortHardwareCategories(cats)
	return cats, nil
}

func (s *sqliteHardwareCategoryRepository) Delete(ctx context.Context, key string) error {
	ok, err := s.docs.remove(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("hardware category %s: %w", key, repository.ErrNotFound)
	}
	return nil
}
