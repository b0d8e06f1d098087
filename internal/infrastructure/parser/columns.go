package parser

import (
	"strings"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// columnRule header nomini maydonga bog'lash qoidasi
type columnRule struct {
	field    string
	exact    []string
	keywords []string
}

// Tartib muhim: aniqroq qoidalar birinchi
var hardwareColumns = []columnRule{
	{field: "id", exact: []string{"id", "sku", "codigo", "código", "kod"}},
	{field: "memoryType", keywords: []string{"memory type", "memorytype", "tipo de memória", "tipo de memoria", "xotira turi"}},
	{field: "formFactor", keywords: []string{"form factor", "formfactor", "formato", "форм-фактор"}},
	{field: "socket", keywords: []string{"socket", "soquete", "сокет"}},
	{field: "tdp", keywords: []string{"tdp", "watts", "potência", "potencia"}},
	{field: "brand", keywords: []string{"brand", "marca", "brend", "бренд", "производитель"}},
	{field: "category", keywords: []string{"category", "categoria", "kategoriya", "категория", "тип"}, exact: []string{"type", "tipo", "tur"}},
	{field: "name", keywords: []string{"model", "modelo", "name", "nome", "nomi", "название", "product", "produto", "mahsulot"}},
	{field: "price", keywords: []string{"price", "preço", "preco", "valor", "narx", "цена", "cost", "r$", "$"}},
	{field: "stock", keywords: []string{"stock", "estoque", "soni", "miqdor", "qty", "quantity", "quantidade", "количество"}},
}

var productColumns = []columnRule{
	{field: "id", exact: []string{"id", "sku", "codigo", "código", "kod"}},
	{field: "subtitle", keywords: []string{"subtitle", "subtítulo", "subtitulo"}},
	{field: "productType", keywords: []string{"product type", "tipo de produto"}, exact: []string{"type", "tipo", "tur"}},
	{field: "category", keywords: []string{"categor", "kategoriya", "категория"}},
	{field: "components", keywords: []string{"component", "componente", "komponent", "комплект"}},
	{field: "description", keywords: []string{"description", "descrição", "descricao", "tavsif", "описание", "details"}},
	{field: "featured", keywords: []string{"featured", "destaque"}},
	{field: "name", keywords: []string{"title", "título", "titulo", "name", "nome", "nomi", "название", "product", "produto", "mahsulot"}},
	{field: "price", keywords: []string{"price", "preço", "preco", "valor", "narx", "цена", "cost", "r$", "$"}},
	{field: "stock", keywords: []string{"stock", "estoque", "soni", "miqdor", "qty", "quantity", "quantidade", "количество"}},
}

// mapColumns header qatoridan column mapping yaratish
func mapColumns(header []string, rules []columnRule) map[string]int {
	columns := make(map[string]int)
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		for _, rule := range rules {
			if _, taken := columns[rule.field]; taken {
				continue
			}
			if matchesRule(name, rule) {
				columns[rule.field] = i
				break
			}
		}
	}

	// Asosiy maydon topilmasa 1-ustun nom deb olinadi
	if _, ok := columns["name"]; !ok && len(header) > 0 {
		columns["name"] = 0
	}
	return columns
}

func matchesRule(name string, rule columnRule) bool {
	for _, e := range rule.exact {
		if name == e {
			return true
		}
	}
	for _, k := range rule.keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

var categoryAliases = map[string]entity.HardwareCategory{
	"cpu":            entity.CategoryProcessor,
	"processador":    entity.CategoryProcessor,
	"protsessor":     entity.CategoryProcessor,
	"mobo":           entity.CategoryMotherboard,
	"placa mãe":      entity.CategoryMotherboard,
	"placa-mãe":      entity.CategoryMotherboard,
	"placa mae":      entity.CategoryMotherboard,
	"ram":            entity.CategoryMemory,
	"memória ram":    entity.CategoryMemory,
	"memoria ram":    entity.CategoryMemory,
	"memória":        entity.CategoryMemory,
	"ssd":            entity.CategoryStorage,
	"hdd":            entity.CategoryStorage,
	"armazenamento":  entity.CategoryStorage,
	"video card":     entity.CategoryGPU,
	"placa de vídeo": entity.CategoryGPU,
	"placa de video": entity.CategoryGPU,
	"cooling":        entity.CategoryCooler,
	"refrigeração":   entity.CategoryCooler,
	"fonte":          entity.CategoryPSU,
	"power supply":   entity.CategoryPSU,
	"gabinete":       entity.CategoryCase,
	"korpus":         entity.CategoryCase,
	"teclado":        entity.CategoryKeyboard,
	"headphone":      entity.CategoryHeadset,
	"fone":           entity.CategoryHeadset,
}

// resolveHardwareCategory ustundagi yozuvni enum ga aylantirish
func resolveHardwareCategory(raw string) (entity.HardwareCategory, bool) {
	if raw == "" {
		return "", false
	}
	if c, ok := entity.ParseHardwareCategory(raw); ok {
		return c, true
	}
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(raw))]
	return c, ok
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// detectCategory mahsulot nomidan kategoriyani aniqlash.
// MUHIM: Eng aniq belgilarni birinchi tekshiramiz!
func detectCategory(name string) entity.HardwareCategory {
	n := strings.ToLower(name)

	switch {
	case containsAny(n, "monitor", "монитор", "display", "144hz", "165hz", "240hz", "curved", "ultrawide"):
		return entity.CategoryMonitor
	case containsAny(n, "ssd", "nvme", "hdd", "hard drive", "m.2"):
		return entity.CategoryStorage
	case containsAny(n, "rtx", "gtx", "radeon", "rx ", "geforce", "intel arc", "placa de video", "placa de vídeo"):
		return entity.CategoryGPU
	case containsAny(n, "motherboard", "placa mãe", "placa-mãe", "placa mae",
		"a520", "b450", "b550", "b650", "b760", "h610", "x570", "x670", "x870", "z690", "z790"):
		return entity.CategoryMotherboard
	case containsAny(n, "ddr3", "ddr4", "ddr5", "memória ram", "memoria ram"):
		return entity.CategoryMemory
	case containsAny(n, "ryzen", "core i", "core ultra", "processor", "processador", "xeon", "athlon", "pentium"):
		return entity.CategoryProcessor
	case containsAny(n, "psu", "power supply", "fonte", "блок питания", "80 plus", "80+"):
		return entity.CategoryPSU
	case containsAny(n, "cooler", "cooling", "water cooler", "aio", "air cooler"):
		return entity.CategoryCooler
	case containsAny(n, "case", "gabinete", "корпус", "chassis", "tower"):
		return entity.CategoryCase
	case containsAny(n, "keyboard", "teclado", "клавиатура"):
		return entity.CategoryKeyboard
	case containsAny(n, "mouse", "мышь"):
		return entity.CategoryMouse
	case containsAny(n, "headset", "headphone", "fone", "наушники"):
		return entity.CategoryHeadset
	case containsAny(n, "ram", "memory", "vengeance", "kingston fury"):
		return entity.CategoryMemory
	}
	return ""
}

var knownSockets = []string{"AM4", "AM5", "LGA1851", "LGA1700", "LGA1200", "LGA1151"}

// inferAttributes ustunlar bo'sh bo'lsa nomdan socket, xotira turi va form factor olish
func inferAttributes(item *entity.HardwareItem) {
	name := strings.ToUpper(item.DisplayName())

	if item.Socket == "" {
		switch item.Category {
		case entity.CategoryProcessor, entity.CategoryMotherboard, entity.CategoryCooler:
			for _, s := range knownSockets {
				if strings.Contains(name, s) {
					item.Socket = s
					break
				}
			}
		}
	}

	if item.MemoryType == "" {
		switch item.Category {
		case entity.CategoryMemory, entity.CategoryMotherboard:
			for _, t := range []string{"DDR5", "DDR4", "DDR3"} {
				if strings.Contains(name, t) {
					item.MemoryType = t
					break
				}
			}
		}
	}

	if item.FormFactor == "" {
		switch item.Category {
		case entity.CategoryMotherboard, entity.CategoryCase:
			switch {
			case containsAny(name, "MINI-ITX", "MINI ITX", "ITX"):
				item.FormFactor = "Mini-ITX"
			case containsAny(name, "MICRO-ATX", "MICRO ATX", "MATX", "M-ATX"):
				item.FormFactor = "Micro-ATX"
			case strings.Contains(name, "ATX"):
				item.FormFactor = "ATX"
			}
		}
	}
}
