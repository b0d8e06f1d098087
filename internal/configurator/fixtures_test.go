package configurator

import "github.com/yourusername/hardware-storefront/internal/domain/entity"

func hw(id string, category entity.HardwareCategory, price float64, opts ...func(*entity.HardwareItem)) entity.HardwareItem {
	item := entity.HardwareItem{
		ID:       id,
		Category: category,
		Brand:    "Brand",
		Model:    id,
		Price:    price,
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}

func socket(s string) func(*entity.HardwareItem) {
	return func(h *entity.HardwareItem) { h.Socket = s }
}

func memType(s string) func(*entity.HardwareItem) {
	return func(h *entity.HardwareItem) { h.MemoryType = s }
}

func formFactor(s string) func(*entity.HardwareItem) {
	return func(h *entity.HardwareItem) { h.FormFactor = s }
}

func ids(items []entity.HardwareItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func sampleCatalog() map[entity.HardwareCategory][]entity.HardwareItem {
	return map[entity.HardwareCategory][]entity.HardwareItem{
		entity.CategoryProcessor: {
			hw("cpu-am5", entity.CategoryProcessor, 300, socket("AM5")),
			hw("cpu-1700", entity.CategoryProcessor, 250, socket("LGA1700")),
			hw("cpu-budget", entity.CategoryProcessor, 90, socket("AM4")),
		},
		entity.CategoryMotherboard: {
			hw("mb-am5", entity.CategoryMotherboard, 180, socket("AM5"), memType("DDR5"), formFactor("ATX")),
			hw("mb-am5-mini", entity.CategoryMotherboard, 140, socket("AM5"), memType("DDR5"), formFactor("mATX")),
			hw("mb-1700", entity.CategoryMotherboard, 150, socket("LGA1700"), memType("DDR4"), formFactor("ATX")),
			hw("mb-am4", entity.CategoryMotherboard, 70, socket("AM4"), memType("DDR4"), formFactor("mATX")),
		},
		entity.CategoryMemory: {
			hw("ram-ddr5", entity.CategoryMemory, 110, memType("DDR5")),
			hw("ram-ddr4", entity.CategoryMemory, 60, memType("DDR4")),
		},
		entity.CategoryStorage: {
			hw("ssd-1tb", entity.CategoryStorage, 80),
			hw("ssd-512", entity.CategoryStorage, 45),
		},
		entity.CategoryGPU: {
			hw("gpu-high", entity.CategoryGPU, 600),
			hw("gpu-mid", entity.CategoryGPU, 320),
			hw("gpu-low", entity.CategoryGPU, 150),
		},
		entity.CategoryCooler: {
			hw("cool-am5", entity.CategoryCooler, 45, socket("AM5")),
			hw("cool-uni", entity.CategoryCooler, 35, socket(entity.UniversalSocket)),
			hw("cool-1700", entity.CategoryCooler, 40, socket("LGA1700")),
		},
		entity.CategoryPSU: {
			hw("psu-750", entity.CategoryPSU, 95),
			hw("psu-550", entity.CategoryPSU, 55),
		},
		entity.CategoryCase: {
			hw("case-atx", entity.CategoryCase, 70, formFactor("ATX")),
			hw("case-matx", entity.CategoryCase, 40, formFactor("mATX")),
		},
	}
}
