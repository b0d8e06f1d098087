// Package configurator holds the PC/kit building rules shared by the manual
// wizard and the budget based generator: compatibility filtering, budget
// allocation and price/title aggregation.
package configurator

import "github.com/yourusername/hardware-storefront/internal/domain/entity"

// FilterCompatible narrows items for key to those compatible with the parts
// already selected. Order is preserved; when nothing matches the original list
// is returned so selection is never blocked.
func FilterCompatible(key entity.HardwareCategory, items []entity.HardwareItem, selected map[entity.HardwareCategory]entity.HardwareItem) []entity.HardwareItem {
	match := compatibilityRule(key, selected)
	if match == nil {
		return items
	}

	filtered := make([]entity.HardwareItem, 0, len(items))
	for _, item := range items {
		if match(item) {
			filtered = append(filtered, item)
		}
	}

	if len(filtered) == 0 {
		return items
	}
	return filtered
}

// compatibilityRule returns nil when no rule applies to key.
func compatibilityRule(key entity.HardwareCategory, selected map[entity.HardwareCategory]entity.HardwareItem) func(entity.HardwareItem) bool {
	processor, hasProcessor := selected[entity.CategoryProcessor]
	motherboard, hasMotherboard := selected[entity.CategoryMotherboard]

	switch key {
	case entity.CategoryMotherboard:
		if !hasProcessor || processor.Socket == "" {
			return nil
		}
		return func(item entity.HardwareItem) bool {
			return item.Socket == processor.Socket
		}

	case entity.CategoryMemory:
		if !hasMotherboard || motherboard.MemoryType == "" {
			return nil
		}
		return func(item entity.HardwareItem) bool {
			return item.MemoryType == motherboard.MemoryType
		}

	case entity.CategoryCooler:
		if !hasProcessor || processor.Socket == "" {
			return nil
		}
		return func(item entity.HardwareItem) bool {
			return item.Socket == "" || item.Socket == processor.Socket || item.Socket == entity.UniversalSocket
		}

	case entity.CategoryCase:
		if !hasMotherboard || motherboard.FormFactor == "" {
			return nil
		}
		return func(item entity.HardwareItem) bool {
			return item.FormFactor == "" || item.FormFactor == motherboard.FormFactor
		}
	}

	return nil
}
