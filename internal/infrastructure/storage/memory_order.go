package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type memoryOrderRepository struct {
	mu     sync.Mutex
	table  *memoryTable[entity.Order]
	number int64
}

// NewMemoryOrderRepository in-memory buyurtmalar repository
func NewMemoryOrderRepository() repository.OrderRepository {
	return &memoryOrderRepository{table: newMemoryTable(cloneOrder)}
}

// Create buyurtmaga navbatdagi raqamni berib saqlaydi
func (m *memoryOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		return fmt.Errorf("order id: %w", repository.ErrInvalid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.number + 1
	order.Number = next
	if !m.table.insert(order.ID, *order) {
		order.Number = 0
		return fmt.Errorf("order %s: %w", order.ID, repository.ErrConflict)
	}
	m.number = next
	return nil
}

func (m *memoryOrderRepository) Update(ctx context.Context, order entity.Order) error {
	if !m.table.replace(order.ID, order) {
		return fmt.Errorf("order %s: %w", order.ID, repository.ErrNotFound)
	}
	return nil
}

func (m *memoryOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o, ok := m.table.get(id)
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id, repository.ErrNotFound)
	}
	return &o, nil
}

func (m *memoryOrderRepository) List(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	return ordersNewestFirst(m.table.all(), status), nil
}

// ListSince since dan keyin yaratilganlar, eski -> yangi
func (m *memoryOrderRepository) ListSince(ctx context.Context, since time.Time) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range m.table.all() {
		if o.CreatedAt.After(since) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *memoryOrderRepository) ListAfter(ctx context.Context, number int64) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range m.table.all() {
		if o.Number > number {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

type memoryStoreRepository struct {
	mu       sync.RWMutex
	company  entity.Company
	slides   *memoryTable[entity.CarouselSlide]
	settings entity.Settings
}

// NewMemoryStoreRepository kompaniya, karusel va sozlamalar uchun in-memory repository
func NewMemoryStoreRepository() repository.StoreRepository {
	return &memoryStoreRepository{
		slides:   newMemoryTable[entity.CarouselSlide](nil),
		settings: entity.Settings{},
	}
}

func (m *memoryStoreRepository) GetCompany(ctx context.Context) (*entity.Company, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := m.company
	return &c, nil
}

func (m *memoryStoreRepository) SaveCompany(ctx context.Context, company entity.Company) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.company = company
	return nil
}

func (m *memoryStoreRepository) SaveSlide(ctx context.Context, slide entity.CarouselSlide) error {
	if slide.ID == "" {
		return fmt.Errorf("slide id: %w", repository.ErrInvalid)
	}
	m.slides.put(slide.ID, slide)
	return nil
}

func (m *memoryStoreRepository) GetSlide(ctx context.Context, id string) (*entity.CarouselSlide, error) {
	s, ok := m.slides.get(id)
	if !ok {
		return nil, fmt.Errorf("slide %s: %w", id, repository.ErrNotFound)
	}
	return &s, nil
}

func (m *memoryStoreRepository) ListSlides(ctx context.Context) ([]entity.CarouselSlide, error) {
	slides := m.slides.all()
	sortSlides(slides)
	return slides, nil
}

func (m *memoryStoreRepository) DeleteSlide(ctx context.Context, id string) error {
	if !m.slides.remove(id) {
		return fmt.Errorf("slide %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (m *memoryStoreRepository) GetSettings(ctx context.Context) (entity.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(entity.Settings, len(m.settings))
	for k, v := range m.settings {
		out[k] = v
	}
	return out, nil
}

func (m *memoryStoreRepository) SaveSettings(ctx context.Context, settings entity.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = make(entity.Settings, len(settings))
	for k, v := range settings {
		m.settings[k] = v
	}
	return nil
}
