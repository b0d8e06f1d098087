package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

func TestProductUseCase_CreateValidates(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newProductFixture()

	_, err := uc.Create(ctx, entity.Product{Title: "  "})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.Create(ctx, entity.Product{Title: "Mouse", Price: -1})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.Create(ctx, entity.Product{Title: "Mouse", ProductType: "laptop"})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.Create(ctx, entity.Product{Title: "Gaming PC", ProductType: entity.ProductTypePC, Price: 999})
	assert.ErrorIs(t, err, repository.ErrInvalid, "pc without components")

	_, err = uc.Create(ctx, entity.Product{Title: "Half Kit", ProductType: entity.ProductTypeKit, Components: map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: part("cpu-am5", entity.CategoryProcessor, 300),
	}})
	assert.ErrorIs(t, err, repository.ErrInvalid, "kit without motherboard and memory")

	kit, err := uc.Create(ctx, entity.Product{Title: "AM5 Kit", ProductType: entity.ProductTypeKit, Components: map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor:   part("cpu-am5", entity.CategoryProcessor, 300),
		entity.CategoryMotherboard: part("mb-am5", entity.CategoryMotherboard, 180),
		entity.CategoryMemory:      part("ram-ddr5", entity.CategoryMemory, 110),
	}})
	require.NoError(t, err)
	assert.InDelta(t, 590, kit.TotalPrice, 1e-9)

	p, err := uc.Create(ctx, entity.Product{Title: " Mouse ", Price: 25, Categories: []string{"Peripherals", "peripherals"}})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Mouse", p.Title)
	assert.Equal(t, entity.ProductTypeSimple, p.ProductType)
	assert.Equal(t, []string{"peripherals"}, p.Categories)
	assert.InDelta(t, 25, p.TotalPrice, 1e-9)
	assert.False(t, p.CreatedAt.IsZero())

	_, err = uc.Create(ctx, entity.Product{ID: p.ID, Title: "Again"})
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestProductUseCase_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newProductFixture()

	created, err := uc.Create(ctx, entity.Product{Title: "Keyboard", Price: 40})
	require.NoError(t, err)

	changed := *created
	changed.Title = "Keyboard TKL"
	changed.CreatedAt = changed.CreatedAt.AddDate(-1, 0, 0)
	updated, err := uc.Update(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Keyboard TKL", updated.Title)

	_, err = uc.Update(ctx, entity.Product{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductUseCase_BulkEditCountsEachProduct(t *testing.T) {
	ctx := context.Background()
	uc, repo, _, _ := newProductFixture()

	a, err := uc.Create(ctx, entity.Product{Title: "A", Price: 100})
	require.NoError(t, err)
	b, err := uc.Create(ctx, entity.Product{Title: "B", Price: 200})
	require.NoError(t, err)

	patches := []entity.ProductPatch{
		entity.AddCategory{Key: "sale"},
		entity.AdjustPrice{Percent: -10},
		entity.SetFeatured{Featured: true},
	}
	result, err := uc.BulkEdit(ctx, []string{a.ID, b.ID, "ghost", a.ID}, patches)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "ghost")

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.InDelta(t, 180, got.Price, 1e-9)
	assert.True(t, got.Featured)
	assert.True(t, got.HasCategory("sale"))

	// a failing patch leaves the product untouched, others still succeed
	result, err = uc.BulkEdit(ctx, []string{a.ID}, []entity.ProductPatch{
		entity.SetStock{Stock: 5},
		entity.SetPrice{Price: -1},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	got, err = repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Stock)

	// setType to a configured type needs the required components
	result, err = uc.BulkEdit(ctx, []string{b.ID}, []entity.ProductPatch{entity.SetProductType{Type: entity.ProductTypeKit}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ProductTypeSimple, got.ProductType)

	_, err = uc.BulkEdit(ctx, []string{a.ID}, nil)
	assert.ErrorIs(t, err, repository.ErrInvalid)
}

func TestProductUseCase_BulkDelete(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newProductFixture()

	a, err := uc.Create(ctx, entity.Product{Title: "A"})
	require.NoError(t, err)

	result, err := uc.BulkDelete(ctx, []string{a.ID, "ghost"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, result.Total())

	_, err = uc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductUseCase_ClassifyAddsKnownCategories(t *testing.T) {
	ctx := context.Background()
	uc, repo, categories, suggestions := newProductFixture()

	require.NoError(t, categories.Create(ctx, entity.Category{Key: "gaming", Name: "Gaming"}))
	require.NoError(t, categories.Create(ctx, entity.Category{Key: "office", Name: "Office"}))

	a, err := uc.Create(ctx, entity.Product{Title: "RTX Rig"})
	require.NoError(t, err)
	b, err := uc.Create(ctx, entity.Product{Title: "Quiet Box"})
	require.NoError(t, err)
	c, err := uc.Create(ctx, entity.Product{Title: "Mystery"})
	require.NoError(t, err)

	suggestions.classify = func(req entity.ClassifyRequest) (*entity.ClassifyResponse, error) {
		assert.Len(t, req.Products, 3)
		assert.Len(t, req.Categories, 2)
		return &entity.ClassifyResponse{
			Success: true,
			Classifications: []entity.Classification{
				{ProductID: a.ID, Categories: []string{"gaming", "unknown"}},
				{ProductID: b.ID, Categories: []string{"Office"}},
			},
		}, nil
	}

	result, err := uc.Classify(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, result.Errors[0], c.ID)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"gaming"}, got.Categories)

	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"office"}, got.Categories)
}

func TestProductUseCase_ClassifyWithoutProvider(t *testing.T) {
	uc := NewProductUseCase(nil, nil, nil)
	_, err := uc.Classify(context.Background(), nil)
	assert.ErrorIs(t, err, repository.ErrUnsupported)
}

func TestProductUseCase_SaveConfiguration(t *testing.T) {
	ctx := context.Background()
	uc, _, _, _ := newProductFixture()

	cfg := entity.NewConfiguration(entity.ConfigurationKit)
	cpu := part("cpu", entity.CategoryProcessor, 300)
	cfg.Select(entity.CategoryProcessor, &cpu)

	_, err := uc.SaveConfiguration(ctx, cfg, ProductOverrides{})
	assert.ErrorIs(t, err, repository.ErrInvalid, "incomplete kit")

	mb := part("mb", entity.CategoryMotherboard, 180)
	ram := part("ram", entity.CategoryMemory, 110)
	cfg.Select(entity.CategoryMotherboard, &mb)
	cfg.Select(entity.CategoryMemory, &ram)

	price := 549.0
	p, err := uc.SaveConfiguration(ctx, cfg, ProductOverrides{
		Price:      &price,
		Categories: []string{"Upgrade"},
		Featured:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductTypeKit, p.ProductType)
	assert.InDelta(t, 590, p.TotalPrice, 1e-9)
	assert.InDelta(t, 549, p.Price, 1e-9)
	assert.Equal(t, []string{"kit", "upgrade"}, p.Categories)
	assert.Len(t, p.Components, 3)
	assert.True(t, p.Featured)
	assert.Contains(t, p.Title, "Kit Upgrade")
}

func TestProductUseCase_ListRejectsUnknownType(t *testing.T) {
	uc, _, _, _ := newProductFixture()
	_, err := uc.List(context.Background(), repository.ProductFilter{ProductType: "tablet"})
	assert.ErrorIs(t, err, repository.ErrInvalid)
}
