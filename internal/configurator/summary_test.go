package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

func TestBuildTitleAndSubtitle(t *testing.T) {
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: {Brand: "AMD", Model: "Ryzen 5 7600"},
		entity.CategoryGPU:       {Brand: "NVIDIA", Model: "RTX 4060"},
		entity.CategoryMemory:    {Brand: "Kingston", Model: "Fury 32GB DDR5"},
		entity.CategoryStorage:   {Brand: "Lexar", Model: "NM790 1TB"},
	}

	assert.Equal(t, "PC AMD Ryzen 5 7600 + NVIDIA RTX 4060", BuildTitle(entity.ConfigurationPC, selected))
	assert.Equal(t, "Kingston Fury 32GB DDR5 | Lexar NM790 1TB", BuildSubtitle(selected))

	delete(selected, entity.CategoryGPU)
	assert.Equal(t, "Kit Upgrade AMD Ryzen 5 7600", BuildTitle(entity.ConfigurationKit, selected))
}

func TestToProduct(t *testing.T) {
	result, err := Allocate(1000, entity.ConfigurationKit, sampleCatalog())
	require.NoError(t, err)

	p := ToProduct(result.Configuration)

	assert.Equal(t, entity.ProductTypeKit, p.ProductType)
	assert.Len(t, p.Components, 3)
	assert.InDelta(t, result.Configuration.TotalPrice, p.TotalPrice, 1e-9)
	assert.InDelta(t, p.TotalPrice, p.Price, 1e-9)
	assert.Equal(t, result.Title, p.Title)
	assert.Contains(t, p.Specs, "Processor")

	missing, err := MissingComponents(entity.ConfigurationKit, p.Components)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestMissingComponents(t *testing.T) {
	missing, err := MissingComponents(entity.ConfigurationKit, map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: {},
	})
	require.NoError(t, err)
	assert.Equal(t, []entity.HardwareCategory{entity.CategoryMotherboard, entity.CategoryMemory}, missing)
}

func TestEstimatedPower(t *testing.T) {
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: {TDP: 65},
		entity.CategoryGPU:       {TDP: 115},
		entity.CategoryPSU:       {TDP: 650},
	}
	assert.Equal(t, 180, EstimatedPower(selected))
}
