package entity

// SuggestionUsage token hisobi
type SuggestionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// ClassifyItem classification uchun yuboriladigan mahsulot
type ClassifyItem struct {
	ProductID   string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ClassifyRequest mahsulotlarni kategoriyalarga ajratish so'rovi
type ClassifyRequest struct {
	Products   []ClassifyItem `json:"products"`
	Categories []Category     `json:"categories"`
}

// Classification bitta mahsulot natijasi
type Classification struct {
	ProductID  string   `json:"id"`
	Categories []string `json:"categories"`
	Confidence float64  `json:"confidence,omitempty"`
}

// ClassifyResponse classify-products javobi
type ClassifyResponse struct {
	Success         bool             `json:"success"`
	Classifications []Classification `json:"classifications"`
	Usage           SuggestionUsage  `json:"usage"`
}

// ChatTurn chat tarixidagi bitta almashinuv
type ChatTurn struct {
	Text     string `json:"text"`
	Response string `json:"response"`
}

// ChatRequest AI chat so'rovi
type ChatRequest struct {
	SessionID string     `json:"sessionId"`
	Message   string     `json:"message"`
	Context   string     `json:"context,omitempty"` // katalog matni
	History   []ChatTurn `json:"history,omitempty"`
}

// ChatResponse AI chat javobi
type ChatResponse struct {
	Success bool            `json:"success"`
	Reply   string          `json:"reply"`
	Usage   SuggestionUsage `json:"usage"`
}

// GenerateRequest mahsulot matnini yaratish so'rovi
type GenerateRequest struct {
	Prompt string            `json:"prompt"`
	Title  string            `json:"title,omitempty"`
	Specs  map[string]string `json:"specs,omitempty"`
}

// GenerateResponse yaratilgan matn
type GenerateResponse struct {
	Success     bool            `json:"success"`
	Title       string          `json:"title,omitempty"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Description string          `json:"description"`
	Usage       SuggestionUsage `json:"usage"`
}

// ImageSearchRequest rasm qidirish
type ImageSearchRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit,omitempty"`
}

// ImageSearchResponse topilgan rasmlar
type ImageSearchResponse struct {
	Success bool     `json:"success"`
	Images  []string `json:"images"`
}

// SpeechRequest matnni ovozga aylantirish
type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// SpeechResponse audio manzili
type SpeechResponse struct {
	Success  bool   `json:"success"`
	AudioURL string `json:"audioUrl"`
}

// MusicRequest musiqa yaratish
type MusicRequest struct {
	Prompt string `json:"prompt"`
	Style  string `json:"style,omitempty"`
}

// MusicResponse yaratilgan musiqa
type MusicResponse struct {
	Success  bool   `json:"success"`
	TaskID   string `json:"taskId,omitempty"`
	AudioURL string `json:"audioUrl,omitempty"`
}
