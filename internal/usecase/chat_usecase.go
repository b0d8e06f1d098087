package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

const (
	chatTimeout      = 20 * time.Second
	chatHistoryLimit = 10
)

// ChatUseCase chat bilan bog'liq business logic
type ChatUseCase interface {
	ProcessMessage(ctx context.Context, sessionID, username, text string) (string, error)
	ClearHistory(ctx context.Context, sessionID string) error
	GetHistory(ctx context.Context, sessionID string) ([]entity.Message, error)
	GetAllMessages(ctx context.Context, limit int) ([]entity.Message, error)

	// CatalogText katalogni matn ko'rinishida olish (AI uchun)
	CatalogText(ctx context.Context) (string, error)
}

type chatUseCase struct {
	suggestions  repository.SuggestionService
	chatRepo     repository.ChatRepository
	productRepo  repository.ProductRepository
	hardwareRepo repository.HardwareRepository
}

// NewChatUseCase yangi ChatUseCase yaratish
func NewChatUseCase(
	suggestions repository.SuggestionService,
	chatRepo repository.ChatRepository,
	productRepo repository.ProductRepository,
	hardwareRepo repository.HardwareRepository,
) ChatUseCase {
	return &chatUseCase{
		suggestions:  suggestions,
		chatRepo:     chatRepo,
		productRepo:  productRepo,
		hardwareRepo: hardwareRepo,
	}
}

// ProcessMessage foydalanuvchi xabarini qayta ishlash
func (u *chatUseCase) ProcessMessage(ctx context.Context, sessionID, username, text string) (string, error) {
	text = strings.TrimSpace(text)
	if sessionID == "" {
		return "", invalidf("session id is required")
	}
	if text == "" {
		return "", invalidf("message is empty")
	}
	if u.suggestions == nil {
		return "", fmt.Errorf("chat: %w", repository.ErrUnsupported)
	}

	// AI so'rovlarini osilib qolmasligi uchun timeout
	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	// Oldingi tarixni olish
	history, err := u.chatRepo.GetHistory(ctx, sessionID, chatHistoryLimit)
	if err != nil {
		return "", fmt.Errorf("failed to get history: %w", err)
	}

	catalog, err := u.CatalogText(ctx)
	if err != nil {
		zap.S().Warnw("catalog context unavailable", "error", err)
	}

	req := entity.ChatRequest{
		SessionID: sessionID,
		Message:   text,
		Context:   catalog,
	}
	for _, m := range history {
		req.History = append(req.History, entity.ChatTurn{Text: m.Text, Response: m.Response})
	}

	zap.S().Debugw("chat request",
		"session", sessionID,
		"history", len(req.History),
		"context_bytes", len(catalog))

	resp, err := u.suggestions.Chat(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	// Original matn saqlanadi, katalog bilan boyitilgani emas
	message := entity.Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Username:  username,
		Text:      text,
		Response:  resp.Reply,
		Timestamp: time.Now(),
	}
	if err := u.chatRepo.SaveMessage(ctx, message); err != nil {
		return "", fmt.Errorf("failed to save message: %w", err)
	}

	return resp.Reply, nil
}

// CatalogText katalogni matn ko'rinishida olish
func (u *chatUseCase) CatalogText(ctx context.Context) (string, error) {
	items, err := u.hardwareRepo.List(ctx, "")
	if err != nil {
		return "", err
	}
	products, err := u.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return "", err
	}
	if len(items) == 0 && len(products) == 0 {
		return "", fmt.Errorf("catalog is empty: %w", repository.ErrNotFound)
	}
	return buildCatalogContext(items, products), nil
}

// buildCatalogContext mahsulotlardan kontekst yaratish
func buildCatalogContext(items []entity.HardwareItem, products []entity.Product) string {
	var sb strings.Builder

	// Kategoriyalar bo'yicha guruhlash
	grouped := make(map[entity.HardwareCategory][]entity.HardwareItem)
	for _, item := range items {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	order := append(entity.ComponentCategories(), entity.PeripheralCategories()...)
	for _, category := range order {
		list := grouped[category]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\n📂 %s:\n", category.Label())
		for i, item := range list {
			fmt.Fprintf(&sb, "  %d. %s - $%.2f", i+1, item.DisplayName(), item.Price)
			if attrs := hardwareAttributes(item); attrs != "" {
				fmt.Fprintf(&sb, " (%s)", attrs)
			}
			if item.Stock > 0 {
				fmt.Fprintf(&sb, " [stock: %d]", item.Stock)
			}
			sb.WriteString("\n")
		}
	}

	if len(products) > 0 {
		sb.WriteString("\n🛒 Products:\n")
		for i, p := range products {
			fmt.Fprintf(&sb, "  %d. %s - $%.2f", i+1, p.Title, p.Price)
			if p.Subtitle != "" {
				fmt.Fprintf(&sb, "\n     └─ %s", p.Subtitle)
			}
			if len(p.Specs) > 0 {
				keys := make([]string, 0, len(p.Specs))
				for k := range p.Specs {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				specs := make([]string, 0, len(keys))
				for _, k := range keys {
					specs = append(specs, fmt.Sprintf("%s: %s", k, p.Specs[k]))
				}
				sb.WriteString("\n     └─ ")
				sb.WriteString(strings.Join(specs, ", "))
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func hardwareAttributes(item entity.HardwareItem) string {
	var attrs []string
	if item.Socket != "" {
		attrs = append(attrs, item.Socket)
	}
	if item.MemoryType != "" {
		attrs = append(attrs, item.MemoryType)
	}
	if item.FormFactor != "" {
		attrs = append(attrs, item.FormFactor)
	}
	if item.TDP > 0 {
		attrs = append(attrs, fmt.Sprintf("%dW", item.TDP))
	}
	return strings.Join(attrs, ", ")
}

// ClearHistory sessiya tarixini tozalash
func (u *chatUseCase) ClearHistory(ctx context.Context, sessionID string) error {
	return u.chatRepo.ClearHistory(ctx, sessionID)
}

// GetHistory sessiya tarixini olish
func (u *chatUseCase) GetHistory(ctx context.Context, sessionID string) ([]entity.Message, error) {
	return u.chatRepo.GetHistory(ctx, sessionID, 0)
}

// GetAllMessages barcha xabarlar (admin uchun)
func (u *chatUseCase) GetAllMessages(ctx context.Context, limit int) ([]entity.Message, error) {
	return u.chatRepo.GetAllMessages(ctx, limit)
}
