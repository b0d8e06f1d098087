package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/configurator"
	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// ProductUseCase mahsulot bilan bog'liq business logic
type ProductUseCase interface {
	// Create yangi mahsulot qo'shish
	Create(ctx context.Context, product entity.Product) (*entity.Product, error)

	// Update mavjud mahsulotni yangilash
	Update(ctx context.Context, product entity.Product) (*entity.Product, error)

	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*entity.Product, error)

	// List filtr bo'yicha mahsulotlar
	List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error)

	// BulkEdit har bir mahsulotga patchlarni ketma-ket qo'llash
	BulkEdit(ctx context.Context, ids []string, patches []entity.ProductPatch) (BulkResult, error)

	// BulkDelete ko'p mahsulotlarni o'chirish
	BulkDelete(ctx context.Context, ids []string) (BulkResult, error)

	// Classify AI orqali mahsulotlarga kategoriya qo'shish
	Classify(ctx context.Context, ids []string) (BulkResult, error)

	// SaveConfiguration yig'ilgan konfiguratsiyani mahsulot sifatida saqlash
	SaveConfiguration(ctx context.Context, cfg *entity.Configuration, overrides ProductOverrides) (*entity.Product, error)
}

// ProductOverrides replaces the generated fields of a saved configuration.
// Zero values keep the generated ones.
type ProductOverrides struct {
	Title       string         `json:"title,omitempty"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Description string         `json:"description,omitempty"`
	Price       *float64       `json:"price,omitempty"`
	Categories  []string       `json:"categories,omitempty"`
	Media       []entity.Media `json:"media,omitempty"`
	Featured    bool           `json:"featured,omitempty"`
	Stock       int            `json:"stock,omitempty"`
}

type productUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	suggestions  repository.SuggestionService
}

// NewProductUseCase yangi ProductUseCase yaratish. suggestions nil bo'lishi mumkin.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	suggestions repository.SuggestionService,
) ProductUseCase {
	return &productUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		suggestions:  suggestions,
	}
}

// Create yangi mahsulot qo'shish
func (u *productUseCase) Create(ctx context.Context, product entity.Product) (*entity.Product, error) {
	if product.ID == "" {
		product.ID = uuid.New().String()
	} else if _, err := u.productRepo.GetByID(ctx, product.ID); err == nil {
		return nil, fmt.Errorf("product %s: %w", product.ID, repository.ErrConflict)
	}

	if err := prepareProduct(&product); err != nil {
		return nil, err
	}

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := u.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

// Update mavjud mahsulotni yangilash
func (u *productUseCase) Update(ctx context.Context, product entity.Product) (*entity.Product, error) {
	existing, err := u.productRepo.GetByID(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	if err := prepareProduct(&product); err != nil {
		return nil, err
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()

	if err := u.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return &product, nil
}

// Delete mahsulotni o'chirish
func (u *productUseCase) Delete(ctx context.Context, id string) error {
	return u.productRepo.Delete(ctx, id)
}

// Get ID bo'yicha mahsulot
func (u *productUseCase) Get(ctx context.Context, id string) (*entity.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// List filtr bo'yicha mahsulotlar
func (u *productUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, error) {
	filter.Category = normalizeKey(filter.Category)
	if filter.ProductType != "" && !filter.ProductType.Valid() {
		return nil, invalidf("unknown product type %q", filter.ProductType)
	}
	return u.productRepo.List(ctx, filter)
}

// BulkEdit har bir mahsulotga patchlarni ketma-ket qo'llash
func (u *productUseCase) BulkEdit(ctx context.Context, ids []string, patches []entity.ProductPatch) (BulkResult, error) {
	var result BulkResult
	if len(patches) == 0 {
		return result, invalidf("no patches given")
	}

	for _, id := range dedupe(ids) {
		if err := u.applyPatches(ctx, id, patches); err != nil {
			result.fail(id, err)
			continue
		}
		result.ok()
	}

	zap.S().Infow("bulk edit finished",
		"patches", len(patches),
		"succeeded", result.Succeeded,
		"failed", result.Failed)
	return result, nil
}

func (u *productUseCase) applyPatches(ctx context.Context, id string, patches []entity.ProductPatch) error {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	for _, patch := range patches {
		if err := entity.ApplyProductPatch(product, patch); err != nil {
			return fmt.Errorf("%s: %w", patch.Kind(), err)
		}
	}
	if err := checkComponents(product); err != nil {
		return err
	}
	product.UpdatedAt = time.Now()
	return u.productRepo.Save(ctx, *product)
}

// BulkDelete ko'p mahsulotlarni o'chirish
func (u *productUseCase) BulkDelete(ctx context.Context, ids []string) (BulkResult, error) {
	var result BulkResult
	for _, id := range dedupe(ids) {
		if err := u.productRepo.Delete(ctx, id); err != nil {
			result.fail(id, err)
			continue
		}
		result.ok()
	}
	return result, nil
}

// Classify sends the products to the suggestion service and adds every
// returned category that exists in the store. Products without an answer
// are counted as failed.
func (u *productUseCase) Classify(ctx context.Context, ids []string) (BulkResult, error) {
	var result BulkResult
	if u.suggestions == nil {
		return result, fmt.Errorf("classification: %w", repository.ErrUnsupported)
	}

	products, err := u.classifyTargets(ctx, ids)
	if err != nil {
		return result, err
	}
	if len(products) == 0 {
		return result, nil
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return result, invalidf("no categories to classify into")
	}
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.Key] = struct{}{}
	}

	req := entity.ClassifyRequest{Categories: categories}
	for _, p := range products {
		req.Products = append(req.Products, entity.ClassifyItem{
			ProductID:   p.ID,
			Title:       p.Title,
			Description: p.Description,
		})
	}

	resp, err := u.suggestions.Classify(ctx, req)
	if err != nil {
		return result, fmt.Errorf("classification failed: %w", err)
	}

	answers := make(map[string][]string, len(resp.Classifications))
	for _, c := range resp.Classifications {
		answers[c.ProductID] = append(answers[c.ProductID], c.Categories...)
	}

	for _, p := range products {
		keys, ok := answers[p.ID]
		if !ok {
			result.fail(p.ID, errors.New("not classified"))
			continue
		}

		var patches []entity.ProductPatch
		for _, key := range keys {
			key = normalizeKey(key)
			if _, exists := known[key]; exists {
				patches = append(patches, entity.AddCategory{Key: key})
			}
		}
		if len(patches) == 0 {
			result.ok()
			continue
		}
		if err := u.applyPatches(ctx, p.ID, patches); err != nil {
			result.fail(p.ID, err)
			continue
		}
		result.ok()
	}

	zap.S().Infow("classification finished",
		"products", len(products),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)
	return result, nil
}

func (u *productUseCase) classifyTargets(ctx context.Context, ids []string) ([]entity.Product, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return u.productRepo.List(ctx, repository.ProductFilter{})
	}

	products := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		p, err := u.productRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// SaveConfiguration yig'ilgan konfiguratsiyani mahsulot sifatida saqlash
func (u *productUseCase) SaveConfiguration(ctx context.Context, cfg *entity.Configuration, overrides ProductOverrides) (*entity.Product, error) {
	if cfg == nil {
		return nil, invalidf("configuration is empty")
	}
	missing, err := configurator.MissingComponents(cfg.Type, cfg.Selected)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	if len(missing) > 0 {
		return nil, invalidf("configuration is missing %v", missing)
	}

	product := configurator.ToProduct(cfg)
	if overrides.Title != "" {
		product.Title = overrides.Title
	}
	if overrides.Subtitle != "" {
		product.Subtitle = overrides.Subtitle
	}
	product.Description = overrides.Description
	if overrides.Price != nil {
		product.Price = *overrides.Price
	}
	for _, key := range overrides.Categories {
		product.AddCategory(normalizeKey(key))
	}
	if len(overrides.Media) > 0 {
		product.Media = append(product.Media, overrides.Media...)
	}
	product.Featured = overrides.Featured
	product.Stock = overrides.Stock

	return u.Create(ctx, product)
}

// prepareProduct validates p and fills defaults in place.
func prepareProduct(p *entity.Product) error {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return invalidf("title is required")
	}
	if p.ProductType == "" {
		p.ProductType = entity.ProductTypeSimple
	}
	if !p.ProductType.Valid() {
		return invalidf("unknown product type %q", p.ProductType)
	}
	if p.Price < 0 {
		return invalidf("price must be >= 0")
	}
	if p.Stock < 0 {
		return invalidf("stock must be >= 0")
	}
	if err := checkComponents(p); err != nil {
		return err
	}

	categories := p.Categories
	p.Categories = make([]string, 0, len(categories))
	for _, key := range categories {
		p.AddCategory(normalizeKey(key))
	}
	if p.Media == nil {
		p.Media = []entity.Media{}
	}

	if len(p.Components) > 0 {
		total := 0.0
		for _, item := range p.Components {
			total += item.Price
		}
		p.TotalPrice = total
		if p.Price == 0 {
			p.Price = total
		}
	} else if p.TotalPrice == 0 {
		p.TotalPrice = p.Price
	}
	return nil
}

// checkComponents pc, kit va setup_completo mahsulotlarida har bir majburiy qism bo'lishi shart
func checkComponents(p *entity.Product) error {
	if p.ProductType == "" || p.ProductType == entity.ProductTypeSimple {
		return nil
	}
	missing, err := configurator.MissingComponents(entity.ConfigurationType(p.ProductType), p.Components)
	if err != nil {
		return invalidf("%v", err)
	}
	if len(missing) > 0 {
		return invalidf("%s product is missing components %v", p.ProductType, missing)
	}
	return nil
}
