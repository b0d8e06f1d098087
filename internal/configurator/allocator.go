package configurator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

var (
	// ErrUnknownConfigurationType konfiguratsiya turi noma'lum
	ErrUnknownConfigurationType = errors.New("unknown configuration type")
	// ErrInvalidBudget budjet manfiy
	ErrInvalidBudget = errors.New("budget must be >= 0")
)

// priorityOrder is the order categories are filled in by Allocate.
var priorityOrder = []entity.HardwareCategory{
	entity.CategoryProcessor,
	entity.CategoryGPU,
	entity.CategoryMotherboard,
	entity.CategoryMemory,
	entity.CategoryStorage,
	entity.CategoryPSU,
	entity.CategoryCooler,
	entity.CategoryCase,
}

// stepOrder is the display order of the manual wizard steps.
var stepOrder = map[entity.ConfigurationType][]entity.HardwareCategory{
	entity.ConfigurationKit: {
		entity.CategoryProcessor, entity.CategoryMotherboard, entity.CategoryMemory,
	},
	entity.ConfigurationPC: {
		entity.CategoryProcessor, entity.CategoryMotherboard, entity.CategoryMemory, entity.CategoryStorage,
		entity.CategoryGPU, entity.CategoryCooler, entity.CategoryPSU, entity.CategoryCase,
	},
	entity.ConfigurationSetupCompleto: {
		entity.CategoryProcessor, entity.CategoryMotherboard, entity.CategoryMemory, entity.CategoryStorage,
		entity.CategoryGPU, entity.CategoryCooler, entity.CategoryPSU, entity.CategoryCase,
	},
}

var kitShares = map[entity.HardwareCategory]float64{
	entity.CategoryProcessor:   0.45,
	entity.CategoryMotherboard: 0.35,
	entity.CategoryMemory:      0.20,
}

var pcShares = map[entity.HardwareCategory]float64{
	entity.CategoryProcessor:   0.25,
	entity.CategoryGPU:         0.30,
	entity.CategoryMotherboard: 0.12,
	entity.CategoryMemory:      0.10,
	entity.CategoryStorage:     0.08,
	entity.CategoryPSU:         0.07,
	entity.CategoryCooler:      0.04,
	entity.CategoryCase:        0.04,
}

// RequiredCategories konfiguratsiya turi uchun majburiy kategoriyalar
func RequiredCategories(t entity.ConfigurationType) ([]entity.HardwareCategory, error) {
	steps, ok := stepOrder[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigurationType, t)
	}
	return append([]entity.HardwareCategory(nil), steps...), nil
}

// BudgetShares returns the fraction of the budget given to each required category.
func BudgetShares(t entity.ConfigurationType) (map[entity.HardwareCategory]float64, error) {
	var src map[entity.HardwareCategory]float64
	switch t {
	case entity.ConfigurationKit:
		src = kitShares
	case entity.ConfigurationPC, entity.ConfigurationSetupCompleto:
		src = pcShares
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigurationType, t)
	}

	out := make(map[entity.HardwareCategory]float64, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out, nil
}

// Allocation is the result of a budget driven build.
type Allocation struct {
	Configuration *entity.Configuration               `json:"configuration"`
	Budget        float64                             `json:"budget"`
	SubBudgets    map[entity.HardwareCategory]float64 `json:"subBudgets"`
	Missing       []entity.HardwareCategory           `json:"missing,omitempty"`
	OverBudget    map[entity.HardwareCategory]bool    `json:"overBudget,omitempty"`
	Title         string                              `json:"title"`
	Subtitle      string                              `json:"subtitle"`
}

// Allocate greedily picks one part per required category: the most expensive
// compatible item within the category's share of the budget, or the cheapest
// compatible item when none fits. Categories without candidates are skipped.
// The resulting total may exceed the budget.
func Allocate(budget float64, t entity.ConfigurationType, catalog map[entity.HardwareCategory][]entity.HardwareItem) (*Allocation, error) {
	if budget < 0 {
		return nil, ErrInvalidBudget
	}
	shares, err := BudgetShares(t)
	if err != nil {
		return nil, err
	}

	cfg := entity.NewConfiguration(t)
	result := &Allocation{
		Configuration: cfg,
		Budget:        budget,
		SubBudgets:    make(map[entity.HardwareCategory]float64, len(shares)),
		OverBudget:    make(map[entity.HardwareCategory]bool),
	}

	for _, category := range priorityOrder {
		share, required := shares[category]
		if !required {
			continue
		}

		subBudget := budget * share
		result.SubBudgets[category] = subBudget

		candidates := FilterCompatible(category, catalog[category], cfg.Selected)
		if len(candidates) == 0 {
			result.Missing = append(result.Missing, category)
			continue
		}

		choice, fits := pickWithin(candidates, subBudget)
		if !fits {
			result.OverBudget[category] = true
		}
		cfg.Select(category, &choice)
	}

	result.Title = BuildTitle(t, cfg.Selected)
	result.Subtitle = BuildSubtitle(cfg.Selected)
	return result, nil
}

// pickWithin returns the most expensive candidate priced at or under limit.
// When none fits it returns the cheapest candidate and false.
func pickWithin(candidates []entity.HardwareItem, limit float64) (entity.HardwareItem, bool) {
	sorted := append([]entity.HardwareItem(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})

	for _, item := range sorted {
		if item.Price <= limit {
			return item, true
		}
	}

	cheapest := candidates[0]
	for _, item := range candidates[1:] {
		if item.Price < cheapest.Price {
			cheapest = item
		}
	}
	return cheapest, false
}
