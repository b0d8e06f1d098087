package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

func TestRequiredCategories(t *testing.T) {
	kit, err := RequiredCategories(entity.ConfigurationKit)
	require.NoError(t, err)
	assert.ElementsMatch(t, []entity.HardwareCategory{
		entity.CategoryProcessor, entity.CategoryMotherboard, entity.CategoryMemory,
	}, kit)

	for _, typ := range []entity.ConfigurationType{entity.ConfigurationPC, entity.ConfigurationSetupCompleto} {
		steps, err := RequiredCategories(typ)
		require.NoError(t, err)
		assert.ElementsMatch(t, entity.ComponentCategories(), steps)
	}

	_, err = RequiredCategories("laptop")
	assert.ErrorIs(t, err, ErrUnknownConfigurationType)
}

func TestBudgetSharesSumToOne(t *testing.T) {
	for _, typ := range []entity.ConfigurationType{entity.ConfigurationKit, entity.ConfigurationPC} {
		shares, err := BudgetShares(typ)
		require.NoError(t, err)
		sum := 0.0
		for _, s := range shares {
			sum += s
		}
		assert.InDelta(t, 1.0, sum, 1e-9, typ)
	}
}

func TestAllocate_KitOnlyReturnsKitCategories(t *testing.T) {
	result, err := Allocate(1000, entity.ConfigurationKit, sampleCatalog())
	require.NoError(t, err)

	assert.Len(t, result.Configuration.Selected, 3)
	for key := range result.Configuration.Selected {
		assert.Contains(t, []entity.HardwareCategory{
			entity.CategoryProcessor, entity.CategoryMotherboard, entity.CategoryMemory,
		}, key)
	}
	assert.InDelta(t, 450, result.SubBudgets[entity.CategoryProcessor], 1e-9)
	assert.InDelta(t, 350, result.SubBudgets[entity.CategoryMotherboard], 1e-9)
	assert.InDelta(t, 200, result.SubBudgets[entity.CategoryMemory], 1e-9)
}

func TestAllocate_PicksMostExpensiveWithinSubBudget(t *testing.T) {
	result, err := Allocate(1000, entity.ConfigurationKit, sampleCatalog())
	require.NoError(t, err)

	sel := result.Configuration.Selected
	// 450 -> cpu-am5 (300) is the most expensive fitting
	assert.Equal(t, "cpu-am5", sel[entity.CategoryProcessor].ID)
	// 350 -> AM5 boards only, the ATX one at 180
	assert.Equal(t, "mb-am5", sel[entity.CategoryMotherboard].ID)
	// 200 -> DDR5 only
	assert.Equal(t, "ram-ddr5", sel[entity.CategoryMemory].ID)
	assert.InDelta(t, 590, result.Configuration.TotalPrice, 1e-9)
	assert.Empty(t, result.OverBudget)
}

func TestAllocate_FallsBackToCheapestWhenNothingFits(t *testing.T) {
	catalog := map[entity.HardwareCategory][]entity.HardwareItem{
		entity.CategoryProcessor: {
			hw("cpu-2000", entity.CategoryProcessor, 2000),
			hw("cpu-1500", entity.CategoryProcessor, 1500),
			hw("cpu-1800", entity.CategoryProcessor, 1800),
		},
		entity.CategoryMotherboard: {hw("mb", entity.CategoryMotherboard, 500)},
		entity.CategoryMemory:      {hw("ram", entity.CategoryMemory, 300)},
	}

	result, err := Allocate(3000, entity.ConfigurationKit, catalog)
	require.NoError(t, err)

	assert.InDelta(t, 1350, result.SubBudgets[entity.CategoryProcessor], 1e-9)
	assert.InDelta(t, 1050, result.SubBudgets[entity.CategoryMotherboard], 1e-9)
	assert.InDelta(t, 600, result.SubBudgets[entity.CategoryMemory], 1e-9)

	cpu := result.Configuration.Selected[entity.CategoryProcessor]
	assert.Equal(t, "cpu-1500", cpu.ID)
	assert.True(t, result.OverBudget[entity.CategoryProcessor])
	assert.InDelta(t, 2300, result.Configuration.TotalPrice, 1e-9)
}

func TestAllocate_NeverExceedsSubBudgetUnlessForced(t *testing.T) {
	for _, budget := range []float64{200, 800, 1500, 3000, 10000} {
		result, err := Allocate(budget, entity.ConfigurationPC, sampleCatalog())
		require.NoError(t, err)

		for key, item := range result.Configuration.Selected {
			limit := result.SubBudgets[key]
			if item.Price <= limit {
				continue
			}
			compatible := FilterCompatible(key, sampleCatalog()[key], result.Configuration.Selected)
			for _, c := range compatible {
				assert.Greater(t, c.Price, limit, "budget %.0f %s: %s fits but was skipped", budget, key, c.ID)
				assert.GreaterOrEqual(t, c.Price, item.Price, "budget %.0f %s: cheaper fallback exists", budget, key)
			}
		}
	}
}

func TestAllocate_RespectsCompatibilityChain(t *testing.T) {
	result, err := Allocate(1200, entity.ConfigurationPC, sampleCatalog())
	require.NoError(t, err)

	sel := result.Configuration.Selected
	cpu := sel[entity.CategoryProcessor]
	board := sel[entity.CategoryMotherboard]
	assert.Equal(t, cpu.Socket, board.Socket)
	assert.Equal(t, board.MemoryType, sel[entity.CategoryMemory].MemoryType)
	assert.Equal(t, board.FormFactor, sel[entity.CategoryCase].FormFactor)
	assert.Contains(t, []string{cpu.Socket, entity.UniversalSocket}, sel[entity.CategoryCooler].Socket)
}

func TestAllocate_EmptyCategoryIsOmitted(t *testing.T) {
	catalog := sampleCatalog()
	delete(catalog, entity.CategoryGPU)

	result, err := Allocate(1500, entity.ConfigurationPC, catalog)
	require.NoError(t, err)

	_, hasGPU := result.Configuration.Selected[entity.CategoryGPU]
	assert.False(t, hasGPU)
	assert.Equal(t, []entity.HardwareCategory{entity.CategoryGPU}, result.Missing)
	assert.Len(t, result.Configuration.Selected, 7)
}

func TestAllocate_TotalMatchesSum(t *testing.T) {
	result, err := Allocate(2500, entity.ConfigurationSetupCompleto, sampleCatalog())
	require.NoError(t, err)

	sum := 0.0
	for _, item := range result.Configuration.Selected {
		sum += item.Price
	}
	assert.InDelta(t, sum, result.Configuration.TotalPrice, 1e-9)
}

func TestAllocate_InvalidInput(t *testing.T) {
	_, err := Allocate(-1, entity.ConfigurationPC, sampleCatalog())
	assert.ErrorIs(t, err, ErrInvalidBudget)

	_, err = Allocate(100, "server", sampleCatalog())
	assert.ErrorIs(t, err, ErrUnknownConfigurationType)
}

func TestAllocate_TitleFromProcessorAndGPU(t *testing.T) {
	result, err := Allocate(1200, entity.ConfigurationPC, sampleCatalog())
	require.NoError(t, err)

	sel := result.Configuration.Selected
	assert.Equal(t, "PC "+sel[entity.CategoryProcessor].DisplayName()+" + "+sel[entity.CategoryGPU].DisplayName(), result.Title)
}
