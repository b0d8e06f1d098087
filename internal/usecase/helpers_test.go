package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
)

type fakeSuggestions struct {
	classify func(entity.ClassifyRequest) (*entity.ClassifyResponse, error)
	chats    []entity.ChatRequest
	reply    string
}

func (f *fakeSuggestions) Classify(_ context.Context, req entity.ClassifyRequest) (*entity.ClassifyResponse, error) {
	if f.classify == nil {
		return nil, repository.ErrUnsupported
	}
	return f.classify(req)
}

func (f *fakeSuggestions) Chat(_ context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	f.chats = append(f.chats, req)
	return &entity.ChatResponse{Success: true, Reply: f.reply}, nil
}

func (f *fakeSuggestions) Generate(context.Context, entity.GenerateRequest) (*entity.GenerateResponse, error) {
	return nil, repository.ErrUnsupported
}

func (f *fakeSuggestions) SearchImages(context.Context, entity.ImageSearchRequest) (*entity.ImageSearchResponse, error) {
	return nil, repository.ErrUnsupported
}

func (f *fakeSuggestions) TextToSpeech(context.Context, entity.SpeechRequest) (*entity.SpeechResponse, error) {
	return nil, repository.ErrUnsupported
}

func (f *fakeSuggestions) GenerateMusic(context.Context, entity.MusicRequest) (*entity.MusicResponse, error) {
	return nil, repository.ErrUnsupported
}

func part(id string, category entity.HardwareCategory, price float64) entity.HardwareItem {
	return entity.HardwareItem{ID: id, Category: category, Brand: "Brand", Model: id, Price: price}
}

// seedHardware fills repo with a small AM5/LGA1700 catalog.
func seedHardware(t *testing.T, repo repository.HardwareRepository) {
	t.Helper()
	cpu := part("cpu-am5", entity.CategoryProcessor, 300)
	cpu.Socket = "AM5"
	cpuIntel := part("cpu-1700", entity.CategoryProcessor, 250)
	cpuIntel.Socket = "LGA1700"
	mb := part("mb-am5", entity.CategoryMotherboard, 180)
	mb.Socket = "AM5"
	mb.MemoryType = "DDR5"
	mbIntel := part("mb-1700", entity.CategoryMotherboard, 150)
	mbIntel.Socket = "LGA1700"
	mbIntel.MemoryType = "DDR4"
	ram := part("ram-ddr5", entity.CategoryMemory, 110)
	ram.MemoryType = "DDR5"
	ram4 := part("ram-ddr4", entity.CategoryMemory, 70)
	ram4.MemoryType = "DDR4"
	monitor := part("mon-27", entity.CategoryMonitor, 220)

	items := []entity.HardwareItem{cpu, cpuIntel, mb, mbIntel, ram, ram4, monitor}
	require.NoError(t, repo.SaveMany(context.Background(), items))
}

func newProductFixture() (ProductUseCase, repository.ProductRepository, repository.CategoryRepository, *fakeSuggestions) {
	products := storage.NewMemoryProductRepository()
	categories := storage.NewMemoryCategoryRepository()
	suggestions := &fakeSuggestions{}
	return NewProductUseCase(products, categories, suggestions), products, categories, suggestions
}
