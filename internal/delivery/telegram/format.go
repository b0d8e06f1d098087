package telegram

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/hardware-storefront/internal/configurator"
	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// telegram xabar limiti 4096; zaxira bilan
const maxMessageLen = 4000

func truncateString(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// splitMessage uzun matnni qatorlar bo'yicha bo'laklarga ajratish
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var parts []string
	var sb strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		if sb.Len()+len(line) > limit && sb.Len() > 0 {
			parts = append(parts, sb.String())
			sb.Reset()
		}
		for len(line) > limit {
			parts = append(parts, line[:limit])
			line = line[limit:]
		}
		sb.WriteString(line)
	}
	if sb.Len() > 0 {
		parts = append(parts, sb.String())
	}
	return parts
}

func buildProductPreview(products []entity.Product, limit int) string {
	if limit > 0 && len(products) > limit {
		products = products[:limit]
	}
	var sb strings.Builder
	for i, p := range products {
		sb.WriteString(fmt.Sprintf("%d) %s - $%.2f", i+1, p.Title, p.Price))
		if p.Stock > 0 {
			sb.WriteString(fmt.Sprintf(" (Ombor: %d)", p.Stock))
		}
		if p.Subtitle != "" {
			sb.WriteString(fmt.Sprintf("\n   %s", truncateString(p.Subtitle, 120)))
		}
		if len(p.Specs) > 0 {
			specs := make([]string, 0, len(p.Specs))
			for k, v := range p.Specs {
				specs = append(specs, fmt.Sprintf("%s=%s", k, v))
			}
			sort.Strings(specs)
			sb.WriteString("\n   Specs: ")
			sb.WriteString(truncateString(strings.Join(specs, ", "), 160))
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func buildHardwarePreview(category entity.HardwareCategory, items []entity.HardwareItem, limit int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🧩 %s (%d)\n", category.Label(), len(items)))
	for i, it := range items {
		if limit > 0 && i == limit {
			sb.WriteString(fmt.Sprintf("... yana %d ta\n", len(items)-limit))
			break
		}
		sb.WriteString(fmt.Sprintf("• %s - $%.2f", it.DisplayName(), it.Price))
		if it.Socket != "" {
			sb.WriteString(" [" + it.Socket + "]")
		}
		if it.MemoryType != "" {
			sb.WriteString(" [" + it.MemoryType + "]")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatAllocation avtomatik yig'ilgan konfiguratsiya matni
func formatAllocation(a *configurator.Allocation) string {
	var sb strings.Builder
	sb.WriteString("🛠️ " + a.Title + "\n")
	if a.Subtitle != "" {
		sb.WriteString(a.Subtitle + "\n")
	}
	sb.WriteString("\n")

	categories := make([]entity.HardwareCategory, 0, len(a.Configuration.Selected))
	for c := range a.Configuration.Selected {
		categories = append(categories, c)
	}
	order := categoryOrder()
	sort.Slice(categories, func(i, j int) bool { return order[categories[i]] < order[categories[j]] })

	for _, c := range categories {
		item := a.Configuration.Selected[c]
		line := fmt.Sprintf("• %s: %s - $%.2f", c.Label(), item.DisplayName(), item.Price)
		if a.OverBudget[c] {
			line += " ⚠️"
		}
		sb.WriteString(line + "\n")
	}
	if len(a.Missing) > 0 {
		names := make([]string, len(a.Missing))
		for i, c := range a.Missing {
			names[i] = c.Label()
		}
		sb.WriteString("\n❌ Topilmadi: " + strings.Join(names, ", ") + "\n")
	}
	sb.WriteString(fmt.Sprintf("\n💰 Jami: $%.2f (budjet $%.2f)", a.Configuration.TotalPrice, a.Budget))
	return sb.String()
}

func categoryOrder() map[entity.HardwareCategory]int {
	order := make(map[entity.HardwareCategory]int)
	for i, c := range append(entity.ComponentCategories(), entity.PeripheralCategories()...) {
		order[c] = i
	}
	return order
}

// formatOrder admin chatiga yuboriladigan buyurtma xabari
func formatOrder(o entity.Order) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🛒 Yangi buyurtma #%d\n", o.Number))
	sb.WriteString(fmt.Sprintf("👤 %s\n📞 %s\n", o.CustomerName, o.CustomerPhone))
	sb.WriteString("\n")
	for _, it := range o.Items {
		sb.WriteString(fmt.Sprintf("• %s x%d - $%.2f\n", it.Title, it.Quantity, float64(it.Quantity)*it.UnitPrice))
	}
	sb.WriteString(fmt.Sprintf("\n💰 Jami: $%.2f", o.Total))
	if o.Notes != "" {
		sb.WriteString("\n📝 " + truncateString(o.Notes, 300))
	}
	sb.WriteString("\nID: " + o.ID)
	return sb.String()
}

// parseConfigArgs "/config 1200 pc" -> budjet va tur
func parseConfigArgs(args string) (float64, entity.ConfigurationType, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, "", fmt.Errorf("budjet kiritilmagan")
	}
	budget, err := strconv.ParseFloat(strings.TrimPrefix(fields[0], "$"), 64)
	if err != nil || budget <= 0 {
		return 0, "", fmt.Errorf("budjet noto'g'ri: %q", fields[0])
	}
	t := entity.ConfigurationPC
	if len(fields) > 1 {
		t = entity.ConfigurationType(strings.ToLower(fields[1]))
		if !t.Valid() {
			return 0, "", fmt.Errorf("tur noto'g'ri: %q (kit, pc, setup_completo)", fields[1])
		}
	}
	return budget, t, nil
}
