package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

const maxUploadSize = 5 * 1024 * 1024

// BotHandler Telegram bot handler
type BotHandler struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	chat        usecase.ChatUseCase
	admins      usecase.AdminUseCase
	products    usecase.ProductUseCase
	hardware    usecase.HardwareUseCase
	builder     usecase.BuilderUseCase

	// chat ID -> admin sessiya tokeni
	mu               sync.RWMutex
	adminTokens      map[int64]string
	awaitingPassword map[int64]string
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	adminChatID int64,
	chat usecase.ChatUseCase,
	admins usecase.AdminUseCase,
	products usecase.ProductUseCase,
	hardware usecase.HardwareUseCase,
	builder usecase.BuilderUseCase,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &BotHandler{
		bot:              bot,
		adminChatID:      adminChatID,
		chat:             chat,
		admins:           admins,
		products:         products,
		hardware:         hardware,
		builder:          builder,
		adminTokens:      make(map[int64]string),
		awaitingPassword: make(map[int64]string),
	}, nil
}

// Notifier admin chatiga buyurtma xabarlarini yuboruvchi
func (h *BotHandler) Notifier() repository.OrderNotifier {
	return NewOrderNotifier(h.bot, h.adminChatID)
}

// Start botni ishga tushirish; ctx bekor qilinganda nil qaytaradi
func (h *BotHandler) Start(ctx context.Context) error {
	zap.S().Infof("Bot @%s ishga tushdi", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			zap.S().Info("Bot to'xtatilmoqda...")
			return nil
		case update, open := <-updates:
			if !open {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Errorw("bot handler panic", "recover", r)
		}
	}()
	if message.From == nil || message.Chat == nil {
		return
	}

	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}
	if username, waiting := h.pendingLogin(message.Chat.ID); waiting && !message.IsCommand() {
		h.handlePasswordInput(ctx, message, username)
		return
	}
	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}
	if strings.TrimSpace(message.Text) != "" {
		h.handleTextMessage(ctx, message)
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.sendMessage(message.Chat.ID, welcomeMessage)
	case "help":
		h.sendMessage(message.Chat.ID, helpMessage)
	case "clear":
		h.handleClearCommand(ctx, message)
	case "catalog":
		h.handleCatalogCommand(ctx, message)
	case "products":
		h.handleProductsCommand(ctx, message)
	case "config":
		h.handleConfigCommand(ctx, message)
	case "admin":
		h.handleAdminCommand(ctx, message)
	case "logout":
		h.handleLogoutCommand(ctx, message)
	case "info":
		h.handleInfoCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Noma'lum komanda. /help yordam uchun.")
	}
}

const welcomeMessage = `👋 Xush kelibsiz! Men kompyuter do'koni yordamchisiman.

Savolingizni yozing yoki komandalardan foydalaning. /help`

const helpMessage = `📖 Komandalar:
/catalog [kategoriya] - qismlar ro'yxati (processor, memory, ...)
/products - tayyor mahsulotlar
/config <budjet> [kit|pc|setup_completo] - avtomatik yig'ish
/clear - chat tarixini tozalash

Admin:
/admin <login> - admin sifatida kirish
/info - katalog statistikasi
/logout - chiqish
Excel fayl yuborish - katalogni yangilash (izohga "products" yozilsa mahsulotlar)`

func sessionID(chatID int64) string {
	return "tg:" + strconv.FormatInt(chatID, 10)
}

func displayName(from *tgbotapi.User) string {
	if from.UserName != "" {
		return from.UserName
	}
	return strings.TrimSpace(from.FirstName + " " + from.LastName)
}

// handleTextMessage oddiy xabarlarni AI ga yuborish
func (h *BotHandler) handleTextMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	h.bot.Send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	reply, err := h.chat.ProcessMessage(ctx, sessionID(chatID), displayName(message.From), message.Text)
	if err != nil {
		zap.S().Warnw("chat failed", "chat_id", chatID, "error", err)
		var business *repository.BusinessError
		switch {
		case errors.Is(err, repository.ErrUnsupported):
			h.sendMessage(chatID, "AI maslahatchi hozircha o'chirilgan. /catalog va /config dan foydalaning.")
		case errors.As(err, &business):
			h.sendMessage(chatID, "AI xizmatida vaqtincha cheklov. Iltimos, 30 soniyadan so'ng qayta urinib ko'ring.")
		default:
			h.sendMessage(chatID, "Kechirasiz, xatolik yuz berdi. Iltimos, qayta urinib ko'ring.")
		}
		return
	}
	h.sendMessage(chatID, reply)
}

// handleClearCommand tarixni tozalash
func (h *BotHandler) handleClearCommand(ctx context.Context, message *tgbotapi.Message) {
	if err := h.chat.ClearHistory(ctx, sessionID(message.Chat.ID)); err != nil {
		h.sendMessage(message.Chat.ID, "Tarixni tozalashda xatolik.")
		return
	}
	h.sendMessage(message.Chat.ID, "✅ Chat tarixi tozalandi! Yangi suhbat boshlashingiz mumkin.")
}

// handleCatalogCommand kategoriya bo'yicha qismlar
func (h *BotHandler) handleCatalogCommand(ctx context.Context, message *tgbotapi.Message) {
	arg := strings.TrimSpace(message.CommandArguments())
	if arg == "" {
		catalog, err := h.hardware.Catalog(ctx)
		if err != nil {
			h.sendMessage(message.Chat.ID, "❌ Katalogni yuklashda xatolik.")
			return
		}
		var sb strings.Builder
		for _, c := range append(entity.ComponentCategories(), entity.PeripheralCategories()...) {
			if n := len(catalog[c]); n > 0 {
				sb.WriteString(fmt.Sprintf("• %s (%s): %d ta\n", c.Label(), c, n))
			}
		}
		if sb.Len() == 0 {
			h.sendMessage(message.Chat.ID, "❌ Katalog bo'sh.")
			return
		}
		h.sendMessage(message.Chat.ID, "📦 Katalog:\n"+sb.String()+"\nBatafsil: /catalog <kategoriya>")
		return
	}

	category, valid := entity.ParseHardwareCategory(arg)
	if !valid {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Noma'lum kategoriya: %s", arg))
		return
	}
	items, err := h.hardware.List(ctx, category)
	if err != nil {
		h.sendMessage(message.Chat.ID, "❌ Katalogni yuklashda xatolik.")
		return
	}
	if len(items) == 0 {
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ %s topilmadi.", category.Label()))
		return
	}
	h.sendMessage(message.Chat.ID, buildHardwarePreview(category, items, 30))
}

// handleProductsCommand mahsulotlar ro'yxati
func (h *BotHandler) handleProductsCommand(ctx context.Context, message *tgbotapi.Message) {
	products, err := h.products.List(ctx, repository.ProductFilter{})
	if err != nil || len(products) == 0 {
		h.sendMessage(message.Chat.ID, "❌ Mahsulotlar topilmadi.")
		return
	}
	text := fmt.Sprintf("📦 Jami %d ta mahsulot:\n\n", len(products)) + buildProductPreview(products, 20)
	h.sendMessage(message.Chat.ID, text)
}

// handleConfigCommand budjet bo'yicha avtomatik yig'ish
func (h *BotHandler) handleConfigCommand(ctx context.Context, message *tgbotapi.Message) {
	budget, t, err := parseConfigArgs(message.CommandArguments())
	if err != nil {
		h.sendMessage(message.Chat.ID, "⚠️ "+err.Error()+"\nMisol: /config 1200 pc")
		return
	}
	allocation, err := h.builder.Generate(ctx, budget, t)
	if err != nil {
		zap.S().Warnw("config generate failed", "budget", budget, "type", t, "error", err)
		h.sendMessage(message.Chat.ID, "❌ Konfiguratsiyani yig'ib bo'lmadi.")
		return
	}
	h.sendMessage(message.Chat.ID, formatAllocation(allocation))
}

// handleAdminCommand admin login boshlash; parol keyingi xabarda
func (h *BotHandler) handleAdminCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if h.isAdmin(ctx, chatID) {
		h.sendMessage(chatID, "Siz allaqachon admin sifatida tizimga kirgansiz!")
		return
	}
	username := strings.TrimSpace(message.CommandArguments())
	if username == "" {
		h.sendMessage(chatID, "Foydalanish: /admin <login>")
		return
	}

	h.mu.Lock()
	h.awaitingPassword[chatID] = username
	h.mu.Unlock()
	h.sendMessage(chatID, "🔐 Admin parolini kiriting:")
}

// handlePasswordInput parol kiritilganini qayta ishlash
func (h *BotHandler) handlePasswordInput(ctx context.Context, message *tgbotapi.Message, username string) {
	chatID := message.Chat.ID
	h.mu.Lock()
	delete(h.awaitingPassword, chatID)
	h.mu.Unlock()

	// xavfsizlik uchun parolli xabarni o'chiramiz
	h.bot.Request(tgbotapi.NewDeleteMessage(chatID, message.MessageID))

	session, err := h.admins.Login(ctx, username, message.Text)
	if err != nil {
		if errors.Is(err, repository.ErrUnauthorized) {
			h.sendMessage(chatID, "❌ Noto'g'ri login yoki parol!")
			return
		}
		zap.S().Errorw("bot login failed", "error", err)
		h.sendMessage(chatID, "❌ Login xatosi yuz berdi.")
		return
	}

	h.mu.Lock()
	h.adminTokens[chatID] = session.Token
	h.mu.Unlock()
	h.sendMessage(chatID, "✅ Admin panelga xush kelibsiz!\n\nExcel fayl yuboring yoki /info, /logout.")
}

func (h *BotHandler) pendingLogin(chatID int64) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	username, waiting := h.awaitingPassword[chatID]
	return username, waiting
}

func (h *BotHandler) adminToken(chatID int64) string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.adminTokens[chatID]
}

// isAdmin sessiya hali amal qilyaptimi
func (h *BotHandler) isAdmin(ctx context.Context, chatID int64) bool {
	token := h.adminToken(chatID)
	if token == "" {
		return false
	}
	admin, err := h.admins.IsAdmin(ctx, token)
	if err != nil || !admin {
		h.mu.Lock()
		delete(h.adminTokens, chatID)
		h.mu.Unlock()
		return false
	}
	return true
}

// handleLogoutCommand admin sessiyasini yopish
func (h *BotHandler) handleLogoutCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	token := h.adminToken(chatID)
	if token == "" {
		h.sendMessage(chatID, "Siz admin emassiz.")
		return
	}
	if err := h.admins.Logout(ctx, token); err != nil {
		zap.S().Warnw("bot logout failed", "error", err)
	}
	h.mu.Lock()
	delete(h.adminTokens, chatID)
	h.mu.Unlock()
	h.sendMessage(chatID, "👋 Admin paneldan chiqdingiz.")
}

// handleInfoCommand katalog statistikasi (admin)
func (h *BotHandler) handleInfoCommand(ctx context.Context, message *tgbotapi.Message) {
	if !h.isAdmin(ctx, message.Chat.ID) {
		h.sendMessage(message.Chat.ID, "❌ Bu komanda faqat adminlar uchun.")
		return
	}
	info, err := h.admins.CatalogInfo(ctx)
	if err != nil {
		h.sendMessage(message.Chat.ID, "❌ Katalog ma'lumotini olib bo'lmadi.")
		return
	}
	h.sendMessage(message.Chat.ID, info)
}

// handleDocumentMessage admin Excel faylini yuborganda
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.isAdmin(ctx, chatID) {
		h.sendMessage(chatID, "❌ Fayllarni faqat adminlar yuklashi mumkin. /admin komandasi bilan kiring.")
		return
	}

	doc := message.Document
	if doc.FileSize > maxUploadSize {
		h.sendMessage(chatID, "❌ Fayl hajmi 5MB dan oshmasligi kerak!")
		return
	}
	name := strings.ToLower(doc.FileName)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".xls") {
		h.sendMessage(chatID, "❌ Faqat Excel fayllari (.xlsx, .xls) qabul qilinadi!")
		return
	}

	kind := usecase.CatalogHardware
	if strings.Contains(strings.ToLower(message.Caption), "product") {
		kind = usecase.CatalogProducts
	}
	replace := strings.Contains(strings.ToLower(message.Caption), "replace")

	h.sendMessage(chatID, "⏳ Fayl yuklanmoqda va qayta ishlanmoqda...")
	data, err := h.downloadFile(ctx, doc.FileID)
	if err != nil {
		zap.S().Errorw("file download failed", "file", doc.FileName, "error", err)
		h.sendMessage(chatID, "❌ Faylni yuklashda xatolik yuz berdi.")
		return
	}

	session, err := h.admins.Authenticate(ctx, h.adminToken(chatID))
	if err != nil {
		h.sendMessage(chatID, "❌ Sessiya muddati tugagan. /admin bilan qayta kiring.")
		return
	}
	result, err := h.admins.UploadCatalog(ctx, session.Subject, kind, data, doc.FileName, replace)
	if err != nil {
		zap.S().Errorw("upload catalog failed", "file", doc.FileName, "error", err)
		h.sendMessage(chatID, fmt.Sprintf("❌ Katalogni yangilashda xatolik: %v", err))
		return
	}

	text := fmt.Sprintf("✅ Katalog yangilandi (%s)\n\n📦 Yuklandi: %d ta\n⚠️ Xato: %d ta\n📄 Fayl: %s",
		kind, result.Succeeded, result.Failed, doc.FileName)
	if len(result.Errors) > 0 {
		text += "\n\n" + truncateString(strings.Join(result.Errors, "\n"), 1000)
	}
	h.sendMessage(chatID, text)
}

// downloadFile Telegram dan faylni yuklash
func (h *BotHandler) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := h.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(h.bot.Token), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxUploadSize+1))
}

// sendMessage oddiy xabar yuborish; uzun matn bo'laklanadi
func (h *BotHandler) sendMessage(chatID int64, text string) {
	for _, part := range splitMessage(text, maxMessageLen) {
		if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, part)); err != nil {
			zap.S().Warnw("Xabar yuborishda xatolik", "chat_id", chatID, "error", err)
			return
		}
	}
}
