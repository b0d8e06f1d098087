package entity

// ConfigurationType konfiguratsiya turi
type ConfigurationType string

const (
	ConfigurationKit           ConfigurationType = "kit"
	ConfigurationPC            ConfigurationType = "pc"
	ConfigurationSetupCompleto ConfigurationType = "setup_completo"
)

// Valid reports whether t is one of the known configuration types.
func (t ConfigurationType) Valid() bool {
	switch t {
	case ConfigurationKit, ConfigurationPC, ConfigurationSetupCompleto:
		return true
	}
	return false
}

// Configuration tanlangan komponentlar va jami narx
type Configuration struct {
	Type       ConfigurationType                 `json:"type"`
	Selected   map[HardwareCategory]HardwareItem `json:"selectedComponents"`
	TotalPrice float64                           `json:"totalPrice"`
}

// NewConfiguration bo'sh konfiguratsiya yaratish
func NewConfiguration(t ConfigurationType) *Configuration {
	return &Configuration{
		Type:     t,
		Selected: make(map[HardwareCategory]HardwareItem),
	}
}

// Select stores item under key; a nil item removes the selection.
func (c *Configuration) Select(key HardwareCategory, item *HardwareItem) {
	if c.Selected == nil {
		c.Selected = make(map[HardwareCategory]HardwareItem)
	}
	if item == nil {
		delete(c.Selected, key)
	} else {
		c.Selected[key] = *item
	}
	c.Recompute()
}

// Deselect tanlovni olib tashlash
func (c *Configuration) Deselect(key HardwareCategory) {
	c.Select(key, nil)
}

// Recompute jami narxni qayta hisoblash
func (c *Configuration) Recompute() {
	total := 0.0
	for _, item := range c.Selected {
		total += item.Price
	}
	c.TotalPrice = total
}

// Get returns the selected item for key.
func (c *Configuration) Get(key HardwareCategory) (HardwareItem, bool) {
	item, ok := c.Selected[key]
	return item, ok
}

// Clone chuqur nusxa
func (c *Configuration) Clone() *Configuration {
	out := NewConfiguration(c.Type)
	for k, v := range c.Selected {
		out.Selected[k] = v
	}
	out.TotalPrice = c.TotalPrice
	return out
}
