package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// HardwareUseCase hardware katalogi bilan bog'liq business logic
type HardwareUseCase interface {
	Create(ctx context.Context, item entity.HardwareItem) (*entity.HardwareItem, error)
	Update(ctx context.Context, item entity.HardwareItem) (*entity.HardwareItem, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.HardwareItem, error)

	// List kategoriya bo'yicha (bo'sh = hammasi)
	List(ctx context.Context, category entity.HardwareCategory) ([]entity.HardwareItem, error)

	// Search model/brand bo'yicha qidirish
	Search(ctx context.Context, query string) ([]entity.HardwareItem, error)

	// Catalog kategoriya bo'yicha guruhlangan katalog
	Catalog(ctx context.Context) (map[entity.HardwareCategory][]entity.HardwareItem, error)

	// BulkEdit har bir qismga patchlarni qo'llash
	BulkEdit(ctx context.Context, ids []string, patches []entity.HardwarePatch) (BulkResult, error)

	// Import Excel fayldan qismlarni yuklash; replace katalogni avval tozalaydi
	Import(ctx context.Context, data []byte, filename string, replace bool) (BulkResult, error)

	// Export katalogni .xlsx ga yozish
	Export(ctx context.Context) ([]byte, error)
}

type hardwareUseCase struct {
	repo     repository.HardwareRepository
	parser   repository.ExcelParser
	exporter repository.ExcelExporter
}

// NewHardwareUseCase yangi HardwareUseCase yaratish
func NewHardwareUseCase(
	repo repository.HardwareRepository,
	parser repository.ExcelParser,
	exporter repository.ExcelExporter,
) HardwareUseCase {
	return &hardwareUseCase{
		repo:     repo,
		parser:   parser,
		exporter: exporter,
	}
}

func prepareHardware(h *entity.HardwareItem) error {
	category, ok := entity.ParseHardwareCategory(string(h.Category))
	if !ok {
		return invalidf("unknown hardware category %q", h.Category)
	}
	h.Category = category
	h.Brand = strings.TrimSpace(h.Brand)
	h.Model = strings.TrimSpace(h.Model)
	if h.Model == "" {
		return invalidf("model is required")
	}
	if h.Price < 0 {
		return invalidf("price must be >= 0")
	}
	if h.Stock < 0 {
		return invalidf("stock must be >= 0")
	}
	if h.TDP < 0 {
		return invalidf("tdp must be >= 0")
	}
	return nil
}

// Create yangi qism qo'shish
func (u *hardwareUseCase) Create(ctx context.Context, item entity.HardwareItem) (*entity.HardwareItem, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	} else if _, err := u.repo.GetByID(ctx, item.ID); err == nil {
		return nil, fmt.Errorf("hardware %s: %w", item.ID, repository.ErrConflict)
	}
	if err := prepareHardware(&item); err != nil {
		return nil, err
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := u.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save hardware: %w", err)
	}
	return &item, nil
}

// Update mavjud qismni yangilash
func (u *hardwareUseCase) Update(ctx context.Context, item entity.HardwareItem) (*entity.HardwareItem, error) {
	existing, err := u.repo.GetByID(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if err := prepareHardware(&item); err != nil {
		return nil, err
	}
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	if err := u.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to save hardware: %w", err)
	}
	return &item, nil
}

// Delete qismni o'chirish
func (u *hardwareUseCase) Delete(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}

// Get ID bo'yicha
func (u *hardwareUseCase) Get(ctx context.Context, id string) (*entity.HardwareItem, error) {
	return u.repo.GetByID(ctx, id)
}

// List kategoriya bo'yicha
func (u *hardwareUseCase) List(ctx context.Context, category entity.HardwareCategory) ([]entity.HardwareItem, error) {
	if category != "" {
		parsed, ok := entity.ParseHardwareCategory(string(category))
		if !ok {
			return nil, invalidf("unknown hardware category %q", category)
		}
		category = parsed
	}
	return u.repo.List(ctx, category)
}

// Search model/brand bo'yicha qidirish
func (u *hardwareUseCase) Search(ctx context.Context, query string) ([]entity.HardwareItem, error) {
	if strings.TrimSpace(query) == "" {
		return u.repo.List(ctx, "")
	}
	return u.repo.Search(ctx, query)
}

// Catalog kategoriya bo'yicha guruhlangan katalog
func (u *hardwareUseCase) Catalog(ctx context.Context) (map[entity.HardwareCategory][]entity.HardwareItem, error) {
	items, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	catalog := make(map[entity.HardwareCategory][]entity.HardwareItem)
	for _, item := range items {
		catalog[item.Category] = append(catalog[item.Category], item)
	}
	return catalog, nil
}

// BulkEdit har bir qismga patchlarni qo'llash
func (u *hardwareUseCase) BulkEdit(ctx context.Context, ids []string, patches []entity.HardwarePatch) (BulkResult, error) {
	var result BulkResult
	if len(patches) == 0 {
		return result, invalidf("no patches given")
	}

	for _, id := range dedupe(ids) {
		if err := u.applyPatches(ctx, id, patches); err != nil {
			result.fail(id, err)
			continue
		}
		result.ok()
	}
	return result, nil
}

func (u *hardwareUseCase) applyPatches(ctx context.Context, id string, patches []entity.HardwarePatch) error {
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	for _, patch := range patches {
		if err := entity.ApplyHardwarePatch(item, patch); err != nil {
			return fmt.Errorf("%s: %w", patch.Kind(), err)
		}
	}
	item.UpdatedAt = time.Now()
	return u.repo.Save(ctx, *item)
}

// Import Excel fayldan qismlarni yuklash
func (u *hardwareUseCase) Import(ctx context.Context, data []byte, filename string, replace bool) (BulkResult, error) {
	var result BulkResult

	items, err := u.parser.ParseHardware(ctx, data, filename)
	if err != nil {
		return result, fmt.Errorf("failed to parse excel: %w", err)
	}
	if len(items) == 0 {
		return result, invalidf("no hardware found in %s", filename)
	}

	if replace {
		if err := u.repo.Clear(ctx); err != nil {
			return result, fmt.Errorf("failed to clear hardware: %w", err)
		}
	}

	now := time.Now()
	for _, item := range items {
		if err := prepareHardware(&item); err != nil {
			result.fail(item.DisplayName(), err)
			continue
		}
		if existing, err := u.repo.GetByID(ctx, item.ID); err == nil {
			item.CreatedAt = existing.CreatedAt
		} else {
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		if err := u.repo.Save(ctx, item); err != nil {
			result.fail(item.ID, err)
			continue
		}
		result.ok()
	}

	zap.S().Infow("hardware imported",
		"file", filename,
		"replace", replace,
		"succeeded", result.Succeeded,
		"failed", result.Failed)
	return result, nil
}

// Export katalogni .xlsx ga yozish
func (u *hardwareUseCase) Export(ctx context.Context) ([]byte, error) {
	items, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	return u.exporter.ExportHardware(ctx, items)
}
