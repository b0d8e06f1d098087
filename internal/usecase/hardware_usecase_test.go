package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/parser"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
)

func newHardwareFixture(t *testing.T) (HardwareUseCase, repository.HardwareRepository) {
	t.Helper()
	repo := storage.NewMemoryHardwareRepository()
	seedHardware(t, repo)
	return NewHardwareUseCase(repo, parser.NewExcelParser(), parser.NewExcelExporter()), repo
}

func TestHardwareUseCase_CreateValidates(t *testing.T) {
	ctx := context.Background()
	uc, _ := newHardwareFixture(t)

	_, err := uc.Create(ctx, entity.HardwareItem{Category: "toaster", Model: "x"})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.Create(ctx, entity.HardwareItem{Category: entity.CategoryGPU})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.Create(ctx, entity.HardwareItem{ID: "cpu-am5", Category: entity.CategoryProcessor, Model: "dup"})
	assert.ErrorIs(t, err, repository.ErrConflict)

	item, err := uc.Create(ctx, entity.HardwareItem{Category: " GPU ", Brand: "NVIDIA", Model: "RTX 4070", Price: 599})
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryGPU, item.Category)
	assert.NotEmpty(t, item.ID)
}

func TestHardwareUseCase_CatalogGroupsByCategory(t *testing.T) {
	uc, _ := newHardwareFixture(t)

	catalog, err := uc.Catalog(context.Background())
	require.NoError(t, err)
	assert.Len(t, catalog[entity.CategoryProcessor], 2)
	assert.Len(t, catalog[entity.CategoryMotherboard], 2)
	assert.Len(t, catalog[entity.CategoryMonitor], 1)

	// price ascending inside a category
	cpus := catalog[entity.CategoryProcessor]
	assert.Equal(t, "cpu-1700", cpus[0].ID)

	_, err = uc.List(context.Background(), "toaster")
	assert.ErrorIs(t, err, repository.ErrInvalid)
}

func TestHardwareUseCase_BulkEdit(t *testing.T) {
	ctx := context.Background()
	uc, repo := newHardwareFixture(t)

	result, err := uc.BulkEdit(ctx, []string{"cpu-am5", "ram-ddr5", "ghost"}, []entity.HardwarePatch{
		entity.AdjustHardwarePrice{Percent: 10},
		entity.SetHardwareStock{Stock: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)

	cpu, err := repo.GetByID(ctx, "cpu-am5")
	require.NoError(t, err)
	assert.InDelta(t, 330, cpu.Price, 1e-9)
	assert.Equal(t, 3, cpu.Stock)
}

func TestHardwareUseCase_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, _ := newHardwareFixture(t)

	data, err := uc.Export(ctx)
	require.NoError(t, err)

	target := storage.NewMemoryHardwareRepository()
	require.NoError(t, target.Save(ctx, part("old", entity.CategoryCase, 50)))
	other := NewHardwareUseCase(target, parser.NewExcelParser(), parser.NewExcelExporter())

	result, err := other.Import(ctx, data, "backup.xlsx", true)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Succeeded)
	assert.Zero(t, result.Failed)

	_, err = target.GetByID(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrNotFound, "replace clears the catalog first")

	mb, err := target.GetByID(ctx, "mb-am5")
	require.NoError(t, err)
	assert.Equal(t, "AM5", mb.Socket)
	assert.Equal(t, "DDR5", mb.MemoryType)
	assert.InDelta(t, 180, mb.Price, 1e-9)
}

func TestHardwareUseCase_ImportRejectsGarbage(t *testing.T) {
	uc, _ := newHardwareFixture(t)
	_, err := uc.Import(context.Background(), []byte("not a workbook"), "x.xlsx", false)
	assert.Error(t, err)
}
