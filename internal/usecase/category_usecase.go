package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// CategoryUseCase do'kon kategoriyalari
type CategoryUseCase interface {
	Create(ctx context.Context, category entity.Category) (*entity.Category, error)
	Update(ctx context.Context, category entity.Category) (*entity.Category, error)
	Get(ctx context.Context, key string) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, key string) error
}

type categoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase yangi CategoryUseCase yaratish
func NewCategoryUseCase(repo repository.CategoryRepository) CategoryUseCase {
	return &categoryUseCase{repo: repo}
}

func prepareCategory(c *entity.Category) error {
	c.Key = normalizeKey(c.Key)
	c.Name = strings.TrimSpace(c.Name)
	if c.Key == "" {
		c.Key = normalizeKey(c.Name)
	}
	if c.Key == "" {
		return invalidf("category key is required")
	}
	if c.Name == "" {
		c.Name = c.Key
	}
	return nil
}

// Create kalit takrorlansa ErrConflict
func (u *categoryUseCase) Create(ctx context.Context, category entity.Category) (*entity.Category, error) {
	if err := prepareCategory(&category); err != nil {
		return nil, err
	}
	if category.Position == 0 {
		position, err := u.nextPosition(ctx)
		if err != nil {
			return nil, err
		}
		category.Position = position
	}
	if err := u.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (u *categoryUseCase) nextPosition(ctx context.Context) (int, error) {
	existing, err := u.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list categories: %w", err)
	}
	highest := 0
	for _, c := range existing {
		if c.Position > highest {
			highest = c.Position
		}
	}
	return highest + 1, nil
}

// Update kategoriyani yangilash
func (u *categoryUseCase) Update(ctx context.Context, category entity.Category) (*entity.Category, error) {
	if err := prepareCategory(&category); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Get kalit bo'yicha
func (u *categoryUseCase) Get(ctx context.Context, key string) (*entity.Category, error) {
	return u.repo.Get(ctx, normalizeKey(key))
}

// List position, keyin key bo'yicha
func (u *categoryUseCase) List(ctx context.Context) ([]entity.Category, error) {
	return u.repo.List(ctx)
}

// Delete kategoriyani o'chirish
func (u *categoryUseCase) Delete(ctx context.Context, key string) error {
	return u.repo.Delete(ctx, normalizeKey(key))
}

// HardwareCategoryUseCase hardware kategoriya yorliqlari
type HardwareCategoryUseCase interface {
	// SeedDefaults creates labels for known categories that have none yet.
	SeedDefaults(ctx context.Context) (int, error)

	Create(ctx context.Context, category entity.HardwareCategoryInfo) (*entity.HardwareCategoryInfo, error)
	Update(ctx context.Context, category entity.HardwareCategoryInfo) (*entity.HardwareCategoryInfo, error)
	Get(ctx context.Context, key string) (*entity.HardwareCategoryInfo, error)
	List(ctx context.Context) ([]entity.HardwareCategoryInfo, error)
	Delete(ctx context.Context, key string) error
}

type hardwareCategoryUseCase struct {
	repo repository.HardwareCategoryRepository
}

// NewHardwareCategoryUseCase yangi HardwareCategoryUseCase yaratish
func NewHardwareCategoryUseCase(repo repository.HardwareCategoryRepository) HardwareCategoryUseCase {
	return &hardwareCategoryUseCase{repo: repo}
}

func prepareHardwareCategory(c *entity.HardwareCategoryInfo) error {
	key, ok := entity.ParseHardwareCategory(c.Key)
	if !ok {
		return invalidf("unknown hardware category %q", c.Key)
	}
	c.Key = string(key)
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = key.Label()
	}
	return nil
}

// SeedDefaults ma'lum kategoriyalar uchun yorliq yaratish
func (u *hardwareCategoryUseCase) SeedDefaults(ctx context.Context) (int, error) {
	all := append(entity.ComponentCategories(), entity.PeripheralCategories()...)
	created := 0
	for i, key := range all {
		err := u.repo.Create(ctx, entity.HardwareCategoryInfo{
			Key:      string(key),
			Name:     key.Label(),
			Position: i + 1,
		})
		switch {
		case err == nil:
			created++
		case isConflict(err):
		default:
			return created, fmt.Errorf("failed to seed %s: %w", key, err)
		}
	}
	return created, nil
}

// Create kalit takrorlansa ErrConflict
func (u *hardwareCategoryUseCase) Create(ctx context.Context, category entity.HardwareCategoryInfo) (*entity.HardwareCategoryInfo, error) {
	if err := prepareHardwareCategory(&category); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update yorliqni yangilash
func (u *hardwareCategoryUseCase) Update(ctx context.Context, category entity.HardwareCategoryInfo) (*entity.HardwareCategoryInfo, error) {
	if err := prepareHardwareCategory(&category); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Get kalit bo'yicha
func (u *hardwareCategoryUseCase) Get(ctx context.Context, key string) (*entity.HardwareCategoryInfo, error) {
	return u.repo.Get(ctx, normalizeKey(key))
}

// List position bo'yicha
func (u *hardwareCategoryUseCase) List(ctx context.Context) ([]entity.HardwareCategoryInfo, error) {
	return u.repo.List(ctx)
}

// Delete yorliqni o'chirish
func (u *hardwareCategoryUseCase) Delete(ctx context.Context, key string) error {
	return u.repo.Delete(ctx, normalizeKey(key))
}
