package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// CatalogKind import/export qilinadigan katalog turi
type CatalogKind string

const (
	CatalogHardware CatalogKind = "hardware"
	CatalogProducts CatalogKind = "products"
)

// ParseCatalogKind matndan katalog turini aniqlash
func ParseCatalogKind(raw string) (CatalogKind, error) {
	switch kind := CatalogKind(strings.ToLower(strings.TrimSpace(raw))); kind {
	case CatalogHardware, CatalogProducts:
		return kind, nil
	}
	return "", invalidf("unknown catalog %q (want hardware or products)", raw)
}

const minPasswordLength = 6

// AdminUseCase admin bilan bog'liq business logic
type AdminUseCase interface {
	// Bootstrap admin bo'lmasa boshlang'ich adminni yaratish
	Bootstrap(ctx context.Context, username, password string) error

	// Login admin login qilish, sessiya tokenini qaytaradi
	Login(ctx context.Context, username, password string) (*entity.Session, error)

	// Logout admin logout qilish
	Logout(ctx context.Context, token string) error

	// Authenticate tokenni tekshirish va faollikni yangilash (admin va mijoz)
	Authenticate(ctx context.Context, token string) (*entity.Session, error)

	// IsAdmin admin ekanligini tekshirish
	IsAdmin(ctx context.Context, token string) (bool, error)

	CreateAdmin(ctx context.Context, subject, username, password string) (*entity.Admin, error)
	ListAdmins(ctx context.Context) ([]entity.Admin, error)
	DeleteAdmin(ctx context.Context, subject, id string) error

	// LogAction admin harakatini loglash
	LogAction(ctx context.Context, subject, action, details string)
	Actions(ctx context.Context, limit int) ([]entity.AdminAction, error)

	// UploadCatalog Excel fayldan katalogni yuklash
	UploadCatalog(ctx context.Context, subject string, kind CatalogKind, fileData []byte, filename string, replace bool) (BulkResult, error)

	// ExportCatalog katalogni .xlsx ga yozish
	ExportCatalog(ctx context.Context, kind CatalogKind) ([]byte, error)

	// CatalogInfo katalog haqida ma'lumot
	CatalogInfo(ctx context.Context) (string, error)

	// CleanAll barcha mahsulotlar, hardware va chat tarixlarini tozalash
	CleanAll(ctx context.Context, subject string) error
}

type adminUseCase struct {
	adminRepo    repository.AdminRepository
	sessions     repository.SessionStore
	productRepo  repository.ProductRepository
	hardware     HardwareUseCase
	hardwareRepo repository.HardwareRepository
	excelParser  repository.ExcelParser
	exporter     repository.ExcelExporter
	chatRepo     repository.ChatRepository
}

// NewAdminUseCase yangi AdminUseCase yaratish
func NewAdminUseCase(
	adminRepo repository.AdminRepository,
	sessions repository.SessionStore,
	productRepo repository.ProductRepository,
	hardwareRepo repository.HardwareRepository,
	excelParser repository.ExcelParser,
	exporter repository.ExcelExporter,
	chatRepo repository.ChatRepository,
) AdminUseCase {
	return &adminUseCase{
		adminRepo:    adminRepo,
		sessions:     sessions,
		productRepo:  productRepo,
		hardware:     NewHardwareUseCase(hardwareRepo, excelParser, exporter),
		hardwareRepo: hardwareRepo,
		excelParser:  excelParser,
		exporter:     exporter,
		chatRepo:     chatRepo,
	}
}

// Bootstrap admin bo'lmasa boshlang'ich adminni yaratish
func (u *adminUseCase) Bootstrap(ctx context.Context, username, password string) error {
	admins, err := u.adminRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list admins: %w", err)
	}
	if len(admins) > 0 {
		return nil
	}
	if password == "" {
		zap.S().Warn("no admins exist and ADMIN_PASSWORD is empty, admin panel is locked")
		return nil
	}

	admin, err := u.CreateAdmin(ctx, "bootstrap", username, password)
	if err != nil {
		return err
	}
	zap.S().Infow("bootstrap admin created", "username", admin.Username)
	return nil
}

// Login admin login qilish
func (u *adminUseCase) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	admin, err := u.adminRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("wrong username or password: %w", repository.ErrUnauthorized)
		}
		return nil, err
	}

	// Parolni tekshirish
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("wrong username or password: %w", repository.ErrUnauthorized)
	}

	session, err := openSession(ctx, u.sessions, admin.ID, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	u.LogAction(ctx, admin.ID, "login", "Admin successfully logged in")
	return session, nil
}

// Logout admin logout qilish
func (u *adminUseCase) Logout(ctx context.Context, token string) error {
	return u.sessions.Delete(ctx, token)
}

// Authenticate tokenni tekshirish va faollikni yangilash
func (u *adminUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	return authenticate(ctx, u.sessions, token)
}

// IsAdmin admin ekanligini tekshirish
func (u *adminUseCase) IsAdmin(ctx context.Context, token string) (bool, error) {
	session, err := u.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return session.Role == entity.RoleAdmin, nil
}

// CreateAdmin yangi admin qo'shish
func (u *adminUseCase) CreateAdmin(ctx context.Context, subject, username, password string) (*entity.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, invalidf("username is required")
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := entity.Admin{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := u.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	u.LogAction(ctx, subject, "create_admin", fmt.Sprintf("Created admin %s", username))
	return &admin, nil
}

// ListAdmins barcha adminlar
func (u *adminUseCase) ListAdmins(ctx context.Context) ([]entity.Admin, error) {
	return u.adminRepo.List(ctx)
}

// DeleteAdmin o'zini yoki oxirgi adminni o'chirib bo'lmaydi
func (u *adminUseCase) DeleteAdmin(ctx context.Context, subject, id string) error {
	if subject == id {
		return invalidf("admins cannot delete themselves")
	}
	admins, err := u.adminRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(admins) <= 1 {
		return invalidf("cannot delete the last admin")
	}
	if err := u.adminRepo.Delete(ctx, id); err != nil {
		return err
	}

	u.LogAction(ctx, subject, "delete_admin", fmt.Sprintf("Deleted admin %s", id))
	return nil
}

// LogAction admin harakatini loglash; xatolik faqat logga yoziladi
func (u *adminUseCase) LogAction(ctx context.Context, subject, action, details string) {
	err := u.adminRepo.LogAction(ctx, entity.AdminAction{
		ID:        uuid.New().String(),
		Subject:   subject,
		Action:    action,
		Details:   details,
		Timestamp: time.Now(),
	})
	if err != nil {
		zap.S().Warnw("failed to log admin action", "action", action, "error", err)
	}
}

// Actions so'nggi harakatlar
func (u *adminUseCase) Actions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	return u.adminRepo.Actions(ctx, limit)
}

// UploadCatalog Excel fayldan katalogni yuklash
func (u *adminUseCase) UploadCatalog(ctx context.Context, subject string, kind CatalogKind, fileData []byte, filename string, replace bool) (BulkResult, error) {
	var (
		result BulkResult
		err    error
	)
	switch kind {
	case CatalogHardware:
		result, err = u.hardware.Import(ctx, fileData, filename, replace)
	case CatalogProducts:
		result, err = u.importProducts(ctx, fileData, filename, replace)
	default:
		return result, invalidf("unknown catalog %q", kind)
	}
	if err != nil {
		return result, err
	}

	// Upload harakatini loglash
	u.LogAction(ctx, subject, "upload_catalog", fmt.Sprintf("Uploaded %d %s from %s (%d failed)",
		result.Succeeded, kind, filename, result.Failed))
	return result, nil
}

func (u *adminUseCase) importProducts(ctx context.Context, fileData []byte, filename string, replace bool) (BulkResult, error) {
	var result BulkResult

	// Excel faylni parse qilish
	products, err := u.excelParser.ParseProducts(ctx, fileData, filename)
	if err != nil {
		return result, fmt.Errorf("failed to parse excel: %w", err)
	}
	if len(products) == 0 {
		return result, invalidf("no products found in %s", filename)
	}

	if replace {
		if err := u.productRepo.Clear(ctx); err != nil {
			return result, fmt.Errorf("failed to clear products: %w", err)
		}
	}

	now := time.Now()
	for _, product := range products {
		if err := u.resolveComponents(ctx, &product); err != nil {
			result.fail(product.Title, err)
			continue
		}
		if err := prepareProduct(&product); err != nil {
			result.fail(product.Title, err)
			continue
		}
		if existing, err := u.productRepo.GetByID(ctx, product.ID); err == nil {
			product.CreatedAt = existing.CreatedAt
		} else {
			product.CreatedAt = now
		}
		product.UpdatedAt = now
		if err := u.productRepo.Save(ctx, product); err != nil {
			result.fail(product.ID, err)
			continue
		}
		result.ok()
	}
	return result, nil
}

// resolveComponents Excel dagi qism ID larini katalogdagi to'liq yozuvlar bilan almashtiradi
func (u *adminUseCase) resolveComponents(ctx context.Context, product *entity.Product) error {
	for category, ref := range product.Components {
		item, err := u.hardwareRepo.GetByID(ctx, ref.ID)
		if err != nil {
			return fmt.Errorf("component %s: %w", category, err)
		}
		if item.Category != category {
			return invalidf("component %s is a %s", item.ID, item.Category)
		}
		product.Components[category] = *item
	}
	return nil
}

// ExportCatalog katalogni .xlsx ga yozish
func (u *adminUseCase) ExportCatalog(ctx context.Context, kind CatalogKind) ([]byte, error) {
	switch kind {
	case CatalogHardware:
		return u.hardware.Export(ctx)
	case CatalogProducts:
		products, err := u.productRepo.List(ctx, repository.ProductFilter{})
		if err != nil {
			return nil, err
		}
		return u.exporter.ExportProducts(ctx, products)
	}
	return nil, invalidf("unknown catalog %q", kind)
}

// CatalogInfo katalog haqida ma'lumot
func (u *adminUseCase) CatalogInfo(ctx context.Context) (string, error) {
	products, err := u.productRepo.List(ctx, repository.ProductFilter{})
	if err != nil {
		return "", err
	}
	items, err := u.hardwareRepo.List(ctx, "")
	if err != nil {
		return "", err
	}

	// Kategoriyalarni sanash
	perType := make(map[entity.ProductType]int)
	for _, p := range products {
		perType[p.ProductType]++
	}
	perCategory := make(map[entity.HardwareCategory]int)
	var updated time.Time
	for _, item := range items {
		perCategory[item.Category]++
		if item.UpdatedAt.After(updated) {
			updated = item.UpdatedAt
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📊 Products: %d\n", len(products))
	for _, t := range []entity.ProductType{entity.ProductTypeSimple, entity.ProductTypePC, entity.ProductTypeKit, entity.ProductTypeSetupCompleto} {
		if perType[t] > 0 {
			fmt.Fprintf(&sb, "  • %s: %d\n", t, perType[t])
		}
	}

	fmt.Fprintf(&sb, "\n🔧 Hardware: %d\n", len(items))
	keys := make([]entity.HardwareCategory, 0, len(perCategory))
	for k := range perCategory {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Fprintf(&sb, "  • %s: %d\n", k.Label(), perCategory[k])
	}
	if !updated.IsZero() {
		fmt.Fprintf(&sb, "\n📅 Updated: %s\n", updated.Format("2006-01-02 15:04"))
	}
	return sb.String(), nil
}

// CleanAll barcha mahsulotlar, hardware va chat tarixlarini tozalash
func (u *adminUseCase) CleanAll(ctx context.Context, subject string) error {
	if err := u.productRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	if err := u.hardwareRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear hardware: %w", err)
	}
	if err := u.chatRepo.ClearAll(ctx); err != nil {
		return fmt.Errorf("failed to clear chats: %w", err)
	}

	u.LogAction(ctx, subject, "clean_all", "Cleared products, hardware and chat histories")
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", invalidf("password must be at least %d characters", minPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func openSession(ctx context.Context, store repository.SessionStore, subject string, role entity.SessionRole) (*entity.Session, error) {
	now := time.Now()
	session := entity.Session{
		Token:        uuid.New().String(),
		Subject:      subject,
		Role:         role,
		CreatedAt:    now,
		LastActivity: now,
	}
	if err := store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &session, nil
}

func authenticate(ctx context.Context, store repository.SessionStore, token string) (*entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("missing token: %w", repository.ErrUnauthorized)
	}
	session, err := store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := store.Touch(ctx, token); err != nil {
		return nil, err
	}
	return session, nil
}
