package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
)

func slideIDs(slides []entity.CarouselSlide) []string {
	out := make([]string, len(slides))
	for i, s := range slides {
		out[i] = s.ID
	}
	return out
}

func TestStoreUseCase_Company(t *testing.T) {
	ctx := context.Background()
	uc := NewStoreUseCase(storage.NewMemoryStoreRepository())

	_, err := uc.UpdateCompany(ctx, entity.Company{Name: " "})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.UpdateCompany(ctx, entity.Company{Name: "PC Center", PrimaryColor: "#ff0000"})
	require.NoError(t, err)
	company, err := uc.Company(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PC Center", company.Name)
	assert.Equal(t, "#ff0000", company.PrimaryColor)
}

func TestStoreUseCase_CarouselReorder(t *testing.T) {
	ctx := context.Background()
	uc := NewStoreUseCase(storage.NewMemoryStoreRepository())

	var ids []string
	for _, title := range []string{"a", "b", "c"} {
		s, err := uc.CreateSlide(ctx, entity.CarouselSlide{Title: title, ImageURL: "/media/" + title + ".jpg", Active: title != "b"})
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}
	_, err := uc.CreateSlide(ctx, entity.CarouselSlide{Title: "no image"})
	assert.ErrorIs(t, err, repository.ErrInvalid)

	ordered, err := uc.Reorder(ctx, []string{ids[2], ids[0]})
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2], ids[0], ids[1]}, slideIDs(ordered))

	slides, err := uc.Slides(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2], ids[0], ids[1]}, slideIDs(slides))
	for i, s := range slides {
		assert.Equal(t, i, s.Position)
	}

	active, err := uc.Slides(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2], ids[0]}, slideIDs(active))

	_, err = uc.Reorder(ctx, []string{"ghost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// update keeps the position
	updated, err := uc.UpdateSlide(ctx, entity.CarouselSlide{ID: ids[1], Title: "b2", ImageURL: "/media/b2.jpg", Position: 99})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Position)

	require.NoError(t, uc.DeleteSlide(ctx, ids[1]))
	_, err = uc.Slide(ctx, ids[1])
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStoreUseCase_MergeSettings(t *testing.T) {
	ctx := context.Background()
	uc := NewStoreUseCase(storage.NewMemoryStoreRepository())

	_, err := uc.MergeSettings(ctx, entity.Settings{"currency": "BRL", "freeShipping": "500"})
	require.NoError(t, err)

	merged, err := uc.MergeSettings(ctx, entity.Settings{"currency": "USD", "freeShipping": ""})
	require.NoError(t, err)
	assert.Equal(t, entity.Settings{"currency": "USD"}, merged)

	stored, err := uc.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, merged, stored)

	_, err = uc.MergeSettings(ctx, entity.Settings{" ": "x"})
	assert.ErrorIs(t, err, repository.ErrInvalid)
}
