package entity

import "time"

// ProductType mahsulot turi
type ProductType string

const (
	ProductTypeSimple        ProductType = "simple"
	ProductTypePC            ProductType = "pc"
	ProductTypeKit           ProductType = "kit"
	ProductTypeSetupCompleto ProductType = "setup_completo"
)

// Valid reports whether t is a known product type.
func (t ProductType) Valid() bool {
	switch t {
	case ProductTypeSimple, ProductTypePC, ProductTypeKit, ProductTypeSetupCompleto:
		return true
	}
	return false
}

// ConfigurationType returns the builder type behind a built product.
func (t ProductType) ConfigurationType() (ConfigurationType, bool) {
	switch t {
	case ProductTypePC:
		return ConfigurationPC, true
	case ProductTypeKit:
		return ConfigurationKit, true
	case ProductTypeSetupCompleto:
		return ConfigurationSetupCompleto, true
	}
	return "", false
}

// MediaType media turi
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Media mahsulot rasmi yoki videosi
type Media struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// Product do'kondagi mahsulot
type Product struct {
	ID          string                            `json:"id"`
	Title       string                            `json:"title"`
	Subtitle    string                            `json:"subtitle,omitempty"`
	Description string                            `json:"description,omitempty"`
	Categories  []string                          `json:"categories"`
	Media       []Media                           `json:"media"`
	Specs       map[string]string                 `json:"specs,omitempty"`
	Components  map[HardwareCategory]HardwareItem `json:"components,omitempty"`
	TotalPrice  float64                           `json:"totalPrice"`
	Price       float64                           `json:"price"`
	ProductType ProductType                       `json:"productType"`
	Featured    bool                              `json:"featured"`
	Stock       int                               `json:"stock"`
	CreatedAt   time.Time                         `json:"createdAt"`
	UpdatedAt   time.Time                         `json:"updatedAt"`
}

// HasCategory kategoriya bor-yo'qligini tekshirish
func (p *Product) HasCategory(key string) bool {
	for _, c := range p.Categories {
		if c == key {
			return true
		}
	}
	return false
}

// AddCategory appends key unless already present.
func (p *Product) AddCategory(key string) {
	if key == "" || p.HasCategory(key) {
		return
	}
	p.Categories = append(p.Categories, key)
}

// RemoveCategory kategoriyani olib tashlash
func (p *Product) RemoveCategory(key string) {
	out := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		if c != key {
			out = append(out, c)
		}
	}
	p.Categories = out
}

// Clone returns a copy that shares no slices or maps with p.
func (p Product) Clone() Product {
	out := p
	out.Categories = append([]string(nil), p.Categories...)
	out.Media = append([]Media(nil), p.Media...)
	if p.Specs != nil {
		out.Specs = make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			out.Specs[k] = v
		}
	}
	if p.Components != nil {
		out.Components = make(map[HardwareCategory]HardwareItem, len(p.Components))
		for k, v := range p.Components {
			out.Components[k] = v.Clone()
		}
	}
	return out
}

// ProductCatalog Excel importi natijasi
type ProductCatalog struct {
	Products  []Product
	Hardware  []HardwareItem
	UpdatedAt time.Time
	Source    string // Excel fayl nomi
}

// Category do'kon kategoriyasi
type Category struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Position int    `json:"position"`
}
