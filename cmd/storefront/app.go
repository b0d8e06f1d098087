package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/config"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/gemini"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/parser"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/remote"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/suggestion"
	"github.com/yourusername/hardware-storefront/internal/usecase"
)

const suggestionTimeout = 60 * time.Second

// repositories tanlangan storage driver bo'yicha
type repositories struct {
	products     repository.ProductRepository
	hardware     repository.HardwareRepository
	categories   repository.CategoryRepository
	hwCategories repository.HardwareCategoryRepository
	admins       repository.AdminRepository
	customers    repository.CustomerRepository
	orders       repository.OrderRepository
	store        repository.StoreRepository
	chats        repository.ChatRepository
	sessions     repository.SessionStore
}

// app barcha use caselar bir joyda
type app struct {
	cfg         *config.Config
	repos       repositories
	suggestions repository.SuggestionService

	admins             usecase.AdminUseCase
	customers          usecase.CustomerUseCase
	products           usecase.ProductUseCase
	hardware           usecase.HardwareUseCase
	categories         usecase.CategoryUseCase
	hardwareCategories usecase.HardwareCategoryUseCase
	orders             usecase.OrderUseCase
	store              usecase.StoreUseCase
	builder            usecase.BuilderUseCase
	chat               usecase.ChatUseCase
	media              usecase.MediaUseCase

	closers []func() error
}

func openRepositories(cfg *config.Config) (repositories, []func() error, error) {
	repos := repositories{sessions: storage.NewMemorySessionStore(cfg.SessionTTL)}

	switch cfg.StorageDriver {
	case "memory":
		repos.products = storage.NewMemoryProductRepository()
		repos.hardware = storage.NewMemoryHardwareRepository()
		repos.categories = storage.NewMemoryCategoryRepository()
		repos.hwCategories = storage.NewMemoryHardwareCategoryRepository()
		repos.admins = storage.NewMemoryAdminRepository()
		repos.customers = storage.NewMemoryCustomerRepository()
		repos.orders = storage.NewMemoryOrderRepository()
		repos.store = storage.NewMemoryStoreRepository()
		repos.chats = storage.NewMemoryChatRepository(cfg.MaxContextSize)
		return repos, nil, nil
	case "sqlite":
		db, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return repos, nil, err
		}
		chatDB, err := storage.OpenChatSQLite(cfg.ChatDBPath)
		if err != nil {
			db.Close()
			return repos, nil, err
		}
		repos.products = storage.NewSQLiteProductRepository(db)
		repos.hardware = storage.NewSQLiteHardwareRepository(db)
		repos.categories = storage.NewSQLiteCategoryRepository(db)
		repos.hwCategories = storage.NewSQLiteHardwareCategoryRepository(db)
		repos.admins = storage.NewSQLiteAdminRepository(db)
		repos.customers = storage.NewSQLiteCustomerRepository(db)
		repos.orders = storage.NewSQLiteOrderRepository(db)
		repos.store = storage.NewSQLiteStoreRepository(db)
		repos.chats = storage.NewSQLiteChatRepository(chatDB, cfg.MaxContextSize)
		return repos, []func() error{db.Close, chatDB.Close}, nil
	default:
		return repos, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// buildSuggestions Gemini va tashqi API ni routerga yig'adi; hech biri bo'lmasa nil
func buildSuggestions(ctx context.Context, cfg *config.Config) (repository.SuggestionService, []func() error, error) {
	router := suggestion.NewRouter()
	var closers []func() error

	// Gemini birinchi; u qo'llamaydigan turlar (rasm, ovoz, musiqa) remote ga o'tadi
	if cfg.GeminiAPIKey != "" {
		client, err := gemini.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		router.With("gemini", client)
		closers = append(closers, client.Close)
	}
	if cfg.SuggestionAPIURL != "" {
		router.With("remote", remote.NewRemoteClient(cfg.SuggestionAPIURL, cfg.SuggestionAPIKey, suggestionTimeout))
	}

	if router.Empty() {
		zap.S().Warn("AI provider sozlanmagan: chat va classify o'chirilgan")
		return nil, closers, nil
	}
	return router, closers, nil
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	repos, closers, err := openRepositories(cfg)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, repos: repos, closers: closers}

	suggestions, aiClosers, err := buildSuggestions(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.suggestions = suggestions
	a.closers = append(a.closers, aiClosers...)

	excelParser := parser.NewExcelParser()
	exporter := parser.NewExcelExporter()

	a.admins = usecase.NewAdminUseCase(repos.admins, repos.sessions, repos.products, repos.hardware, excelParser, exporter, repos.chats)
	a.customers = usecase.NewCustomerUseCase(repos.customers, repos.sessions)
	a.products = usecase.NewProductUseCase(repos.products, repos.categories, suggestions)
	a.hardware = usecase.NewHardwareUseCase(repos.hardware, excelParser, exporter)
	a.categories = usecase.NewCategoryUseCase(repos.categories)
	a.hardwareCategories = usecase.NewHardwareCategoryUseCase(repos.hwCategories)
	a.store = usecase.NewStoreUseCase(repos.store)
	a.builder = usecase.NewBuilderUseCase(repos.hardware, a.products)
	a.chat = usecase.NewChatUseCase(suggestions, repos.chats, repos.products, repos.hardware)
	a.media = usecase.NewMediaUseCase(cfg.MediaDir, "/media")

	a.orders, err = usecase.NewOrderUseCase(repos.orders, repos.products, repos.customers, cfg.NodeID)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// bootstrap boshlang'ich admin va hardware kategoriya yorliqlari
func (a *app) bootstrap(ctx context.Context) error {
	if err := a.admins.Bootstrap(ctx, a.cfg.AdminUsername, a.cfg.AdminPassword); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	seeded, err := a.hardwareCategories.SeedDefaults(ctx)
	if err != nil {
		return fmt.Errorf("seed hardware categories: %w", err)
	}
	if seeded > 0 {
		zap.S().Infow("hardware categories seeded", "count", seeded)
	}
	return nil
}

func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
