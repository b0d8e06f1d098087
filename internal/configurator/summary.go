package configurator

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

var titlePrefix = map[entity.ConfigurationType]string{
	entity.ConfigurationKit:           "Kit Upgrade",
	entity.ConfigurationPC:            "PC",
	entity.ConfigurationSetupCompleto: "Setup Completo",
}

// BuildTitle processor va GPU nomlaridan sarlavha yasash
func BuildTitle(t entity.ConfigurationType, selected map[entity.HardwareCategory]entity.HardwareItem) string {
	parts := []string{}
	if prefix, ok := titlePrefix[t]; ok {
		parts = append(parts, prefix)
	}

	if cpu, ok := selected[entity.CategoryProcessor]; ok && cpu.DisplayName() != "" {
		parts = append(parts, cpu.DisplayName())
	}

	title := strings.Join(parts, " ")
	if gpu, ok := selected[entity.CategoryGPU]; ok && gpu.DisplayName() != "" {
		title += " + " + gpu.DisplayName()
	}
	return title
}

// BuildSubtitle memory va storage nomlari
func BuildSubtitle(selected map[entity.HardwareCategory]entity.HardwareItem) string {
	var parts []string
	for _, key := range []entity.HardwareCategory{entity.CategoryMemory, entity.CategoryStorage} {
		if item, ok := selected[key]; ok && item.DisplayName() != "" {
			parts = append(parts, item.DisplayName())
		}
	}
	return strings.Join(parts, " | ")
}

// BuildSpecs returns a spec sheet keyed by category label.
func BuildSpecs(selected map[entity.HardwareCategory]entity.HardwareItem) map[string]string {
	specs := make(map[string]string, len(selected))
	for key, item := range selected {
		value := item.DisplayName()
		if key == entity.CategoryPSU && item.TDP > 0 {
			value = fmt.Sprintf("%s (%dW)", value, item.TDP)
		}
		specs[key.Label()] = value
	}
	return specs
}

// EstimatedPower sums the TDP of the selected parts.
func EstimatedPower(selected map[entity.HardwareCategory]entity.HardwareItem) int {
	total := 0
	for key, item := range selected {
		if key == entity.CategoryPSU {
			continue
		}
		total += item.TDP
	}
	return total
}

// ToProduct konfiguratsiyadan mahsulot qoralamasini yaratish
func ToProduct(cfg *entity.Configuration) entity.Product {
	now := time.Now()
	components := make(map[entity.HardwareCategory]entity.HardwareItem, len(cfg.Selected))
	for k, v := range cfg.Selected {
		components[k] = v
	}

	productType := entity.ProductType(cfg.Type)
	return entity.Product{
		Title:       BuildTitle(cfg.Type, cfg.Selected),
		Subtitle:    BuildSubtitle(cfg.Selected),
		Categories:  []string{string(productType)},
		Media:       []entity.Media{},
		Specs:       BuildSpecs(cfg.Selected),
		Components:  components,
		TotalPrice:  cfg.TotalPrice,
		Price:       cfg.TotalPrice,
		ProductType: productType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MissingComponents returns the required categories absent from components.
func MissingComponents(t entity.ConfigurationType, components map[entity.HardwareCategory]entity.HardwareItem) ([]entity.HardwareCategory, error) {
	required, err := RequiredCategories(t)
	if err != nil {
		return nil, err
	}
	var missing []entity.HardwareCategory
	for _, key := range required {
		if _, ok := components[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
