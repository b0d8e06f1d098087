package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

func TestFilterCompatible_MotherboardBySocket(t *testing.T) {
	boards := sampleCatalog()[entity.CategoryMotherboard]
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: hw("cpu", entity.CategoryProcessor, 300, socket("AM5")),
	}

	got := FilterCompatible(entity.CategoryMotherboard, boards, selected)

	assert.Equal(t, []string{"mb-am5", "mb-am5-mini"}, ids(got))
	for _, item := range got {
		assert.Equal(t, "AM5", item.Socket)
	}
}

func TestFilterCompatible_FallbackToUnfiltered(t *testing.T) {
	boards := sampleCatalog()[entity.CategoryMotherboard]
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: hw("cpu", entity.CategoryProcessor, 300, socket("TR5")),
	}

	got := FilterCompatible(entity.CategoryMotherboard, boards, selected)

	assert.Equal(t, ids(boards), ids(got))
}

func TestFilterCompatible_NoRuleWithoutPriorSelection(t *testing.T) {
	catalog := sampleCatalog()

	t.Run("no processor", func(t *testing.T) {
		got := FilterCompatible(entity.CategoryMotherboard, catalog[entity.CategoryMotherboard], nil)
		assert.Len(t, got, 4)
	})

	t.Run("processor without socket", func(t *testing.T) {
		selected := map[entity.HardwareCategory]entity.HardwareItem{
			entity.CategoryProcessor: hw("cpu", entity.CategoryProcessor, 300),
		}
		got := FilterCompatible(entity.CategoryCooler, catalog[entity.CategoryCooler], selected)
		assert.Len(t, got, 3)
	})

	t.Run("unfiltered category", func(t *testing.T) {
		selected := map[entity.HardwareCategory]entity.HardwareItem{
			entity.CategoryProcessor: hw("cpu", entity.CategoryProcessor, 300, socket("AM5")),
		}
		got := FilterCompatible(entity.CategoryGPU, catalog[entity.CategoryGPU], selected)
		assert.Equal(t, ids(catalog[entity.CategoryGPU]), ids(got))
	})
}

func TestFilterCompatible_MemoryByMotherboard(t *testing.T) {
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryMotherboard: hw("mb", entity.CategoryMotherboard, 100, memType("DDR4")),
	}
	got := FilterCompatible(entity.CategoryMemory, sampleCatalog()[entity.CategoryMemory], selected)
	assert.Equal(t, []string{"ram-ddr4"}, ids(got))
}

func TestFilterCompatible_CoolerAcceptsUniversalAndUnspecified(t *testing.T) {
	coolers := append(sampleCatalog()[entity.CategoryCooler], hw("cool-none", entity.CategoryCooler, 20))
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: hw("cpu", entity.CategoryProcessor, 300, socket("AM5")),
	}

	got := FilterCompatible(entity.CategoryCooler, coolers, selected)

	assert.Equal(t, []string{"cool-am5", "cool-uni", "cool-none"}, ids(got))
}

func TestFilterCompatible_CaseByFormFactor(t *testing.T) {
	cases := append(sampleCatalog()[entity.CategoryCase], hw("case-any", entity.CategoryCase, 50))
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryMotherboard: hw("mb", entity.CategoryMotherboard, 100, formFactor("mATX")),
	}

	got := FilterCompatible(entity.CategoryCase, cases, selected)

	assert.Equal(t, []string{"case-matx", "case-any"}, ids(got))
}

func TestFilterCompatible_DoesNotModifyInput(t *testing.T) {
	boards := sampleCatalog()[entity.CategoryMotherboard]
	before := ids(boards)
	selected := map[entity.HardwareCategory]entity.HardwareItem{
		entity.CategoryProcessor: hw("cpu", entity.CategoryProcessor, 300, socket("AM4")),
	}

	_ = FilterCompatible(entity.CategoryMotherboard, boards, selected)

	assert.Equal(t, before, ids(boards))
}
