package entity

// Company white-label do'kon ma'lumotlari
type Company struct {
	Name           string `json:"name"`
	Logo           string `json:"logo,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Email          string `json:"email,omitempty"`
	Address        string `json:"address,omitempty"`
	Whatsapp       string `json:"whatsapp,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	PrimaryColor   string `json:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty"`
}

// CarouselSlide bosh sahifa karuseli
type CarouselSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl,omitempty"`
	Position int    `json:"position"`
	Active   bool   `json:"active"`
}

// Settings kalit-qiymat sozlamalar
type Settings map[string]string
