package entity

import (
	"strings"
	"time"
)

// HardwareCategory hardware kategoriyasi kaliti
type HardwareCategory string

const (
	CategoryProcessor   HardwareCategory = "processor"
	CategoryMotherboard HardwareCategory = "motherboard"
	CategoryMemory      HardwareCategory = "memory"
	CategoryStorage     HardwareCategory = "storage"
	CategoryGPU         HardwareCategory = "gpu"
	CategoryCooler      HardwareCategory = "cooler"
	CategoryPSU         HardwareCategory = "psu"
	CategoryCase        HardwareCategory = "case"

	// Peripherals, used by the setup_completo extras phase
	CategoryMonitor  HardwareCategory = "monitor"
	CategoryKeyboard HardwareCategory = "keyboard"
	CategoryMouse    HardwareCategory = "mouse"
	CategoryHeadset  HardwareCategory = "headset"
)

// UniversalSocket coolers fitting any processor socket
const UniversalSocket = "Universal"

var componentCategories = []HardwareCategory{
	CategoryProcessor, CategoryMotherboard, CategoryMemory, CategoryStorage,
	CategoryGPU, CategoryCooler, CategoryPSU, CategoryCase,
}

var peripheralCategories = []HardwareCategory{
	CategoryMonitor, CategoryKeyboard, CategoryMouse, CategoryHeadset,
}

var categoryLabels = map[HardwareCategory]string{
	CategoryProcessor:   "Processor",
	CategoryMotherboard: "Motherboard",
	CategoryMemory:      "Memory",
	CategoryStorage:     "Storage",
	CategoryGPU:         "Graphics Card",
	CategoryCooler:      "Cooler",
	CategoryPSU:         "Power Supply",
	CategoryCase:        "Case",
	CategoryMonitor:     "Monitor",
	CategoryKeyboard:    "Keyboard",
	CategoryMouse:       "Mouse",
	CategoryHeadset:     "Headset",
}

// ComponentCategories PC ichki komponent kategoriyalari
func ComponentCategories() []HardwareCategory {
	return append([]HardwareCategory(nil), componentCategories...)
}

// PeripheralCategories extras bosqichi kategoriyalari
func PeripheralCategories() []HardwareCategory {
	return append([]HardwareCategory(nil), peripheralCategories...)
}

// Valid kategoriya ma'lum ekanligini tekshirish
func (c HardwareCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// IsPeripheral reports whether c belongs to the extras phase.
func (c HardwareCategory) IsPeripheral() bool {
	for _, p := range peripheralCategories {
		if p == c {
			return true
		}
	}
	return false
}

// Label kategoriya nomi
func (c HardwareCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ParseHardwareCategory normalizes free text into a known category.
func ParseHardwareCategory(raw string) (HardwareCategory, bool) {
	c := HardwareCategory(strings.ToLower(strings.TrimSpace(raw)))
	return c, c.Valid()
}

// HardwareItem katalogdagi hardware qism
type HardwareItem struct {
	ID         string            `json:"id"`
	Category   HardwareCategory  `json:"category"`
	Brand      string            `json:"brand"`
	Model      string            `json:"model"`
	Price      float64           `json:"price"`
	Socket     string            `json:"socket,omitempty"`
	MemoryType string            `json:"memoryType,omitempty"`
	FormFactor string            `json:"formFactor,omitempty"`
	TDP        int               `json:"tdp,omitempty"`
	Stock      int               `json:"stock"`
	Specs      map[string]string `json:"specs,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// DisplayName brand va model
func (h HardwareItem) DisplayName() string {
	return strings.TrimSpace(strings.TrimSpace(h.Brand) + " " + strings.TrimSpace(h.Model))
}

// Clone returns a copy with its own Specs map.
func (h HardwareItem) Clone() HardwareItem {
	out := h
	if h.Specs != nil {
		out.Specs = make(map[string]string, len(h.Specs))
		for k, v := range h.Specs {
			out.Specs[k] = v
		}
	}
	return out
}

// HardwareCategoryInfo admin tomonidan boshqariladigan kategoriya yorlig'i
type HardwareCategoryInfo struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
