package storage

import (
	"sort"
	"strings"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// filterProducts applies f and orders the result newest first.
func filterProducts(products []entity.Product, f repository.ProductFilter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && !p.HasCategory(f.Category) {
			continue
		}
		if f.ProductType != "" && p.ProductType != f.ProductType {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if strings.TrimSpace(f.Query) == "" {
		return out
	}

	docs := make([]searchDoc, len(out))
	for i, p := range out {
		docs[i] = searchDoc{
			name:  p.Title + " " + p.Subtitle,
			cat:   strings.Join(p.Categories, " ") + " " + string(p.ProductType),
			desc:  p.Description,
			specs: p.Specs,
			price: p.Price,
		}
	}
	hits := matchDocs(f.Query, docs)
	matched := make([]entity.Product, 0, len(hits))
	for _, idx := range hits {
		matched = append(matched, out[idx])
	}
	return matched
}

// filterHardware keeps items of category (all when empty), cheapest first.
func filterHardware(items []entity.HardwareItem, category entity.HardwareCategory) []entity.HardwareItem {
	out := make([]entity.HardwareItem, 0, len(items))
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	sortHardware(out)
	return out
}

func sortHardware(items []entity.HardwareItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Price == items[j].Price {
			return items[i].ID < items[j].ID
		}
		return items[i].Price < items[j].Price
	})
}

// searchHardware qidiruv; GPU so'rovlarida faqat videokartalar qaytadi
func searchHardware(items []entity.HardwareItem, query string) []entity.HardwareItem {
	sortHardware(items)
	docs := make([]searchDoc, len(items))
	for i, it := range items {
		docs[i] = searchDoc{
			name:  it.DisplayName(),
			cat:   string(it.Category) + " " + it.Category.Label(),
			desc:  strings.Join([]string{it.Socket, it.MemoryType, it.FormFactor}, " "),
			specs: it.Specs,
			price: it.Price,
		}
	}

	hits := matchDocs(query, docs)
	out := make([]entity.HardwareItem, 0, len(hits))
	for _, idx := range hits {
		out = append(out, items[idx])
	}

	if isGPUQuery(query) {
		var gpus []entity.HardwareItem
		for _, it := range out {
			if it.Category == entity.CategoryGPU {
				gpus = append(gpus, it)
			}
		}
		if len(gpus) > 0 {
			return gpus
		}
	}
	return out
}

func sortCategories(cats []entity.Category) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Position == cats[j].Position {
			return cats[i].Key < cats[j].Key
		}
		return cats[i].Position < cats[j].Position
	})
}

func sortHardwareCategories(cats []entity.HardwareCategoryInfo) {
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].Position == cats[j].Position {
			return cats[i].Key < cats[j].Key
		}
		return cats[i].Position < cats[j].Position
	})
}

func sortSlides(slides []entity.CarouselSlide) {
	sort.SliceStable(slides, func(i, j int) bool {
		if slides[i].Position == slides[j].Position {
			return slides[i].ID < slides[j].ID
		}
		return slides[i].Position < slides[j].Position
	})
}

// ordersNewestFirst holat bo'yicha filtr, yangi -> eski
func ordersNewestFirst(orders []entity.Order, status entity.OrderStatus) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if status != "" && o.Status != status {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out
}

func cloneOrder(o entity.Order) entity.Order {
	o.Items = append([]entity.OrderItem(nil), o.Items...)
	return o
}
