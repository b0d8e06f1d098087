package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
	ttl      time.Duration
	now      func() time.Time
}

// NewMemorySessionStore in-memory sessiya ombori; ttl dan uzoq harakatsiz sessiyalar yaroqsiz
func NewMemorySessionStore(ttl time.Duration) repository.SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]entity.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create sessiyani saqlash
func (m *memorySessionStore) Create(ctx context.Context, session entity.Session) error {
	if session.Token == "" {
		return fmt.Errorf("session token: %w", repository.ErrInvalid)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.LastActivity = now
	m.sessions[session.Token] = session
	return nil
}

// Get sessiyani olish
func (m *memorySessionStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[token]
	if !exists {
		return nil, fmt.Errorf("session: %w", repository.ErrUnauthorized)
	}
	if session.Expired(m.ttl, m.now()) {
		delete(m.sessions, token)
		return nil, fmt.Errorf("session expired: %w", repository.ErrUnauthorized)
	}
	return &session, nil
}

// Touch LastActivity ni yangilash
func (m *memorySessionStore) Touch(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, exists := m.sessions[token]
	if !exists {
		return fmt.Errorf("session: %w", repository.ErrUnauthorized)
	}
	session.LastActivity = m.now()
	m.sessions[token] = session
	return nil
}

// Delete sessiyani o'chirish (logout)
func (m *memorySessionStore) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

// PurgeExpired muddati o'tganlarni tozalash
func (m *memorySessionStore) PurgeExpired(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	purged := 0
	for token, session := range m.sessions {
		if session.Expired(m.ttl, now) {
			delete(m.sessions, token)
			purged++
		}
	}
	return purged, nil
}

type memoryAdminRepository struct {
	admins  *memoryTable[entity.Admin]
	mu      sync.RWMutex
	actions []entity.AdminAction
}

// NewMemoryAdminRepository in-memory admin repository yaratish
func NewMemoryAdminRepository() repository.AdminRepository {
	return &memoryAdminRepository{
		admins:  newMemoryTable[entity.Admin](nil),
		actions: []entity.AdminAction{},
	}
}

func (m *memoryAdminRepository) Create(ctx context.Context, admin entity.Admin) error {
	if _, taken := m.admins.find(func(a entity.Admin) bool { return strings.EqualFold(a.Username, admin.Username) }); taken {
		return fmt.Errorf("admin %s: %w", admin.Username, repository.ErrConflict)
	}
	if !m.admins.insert(admin.ID, admin) {
		return fmt.Errorf("admin %s: %w", admin.ID, repository.ErrConflict)
	}
	return nil
}

func (m *memoryAdminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	a, ok := m.admins.get(id)
	if !ok {
		return nil, fmt.Errorf("admin %s: %w", id, repository.ErrNotFound)
	}
	return &a, nil
}

func (m *memoryAdminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	a, ok := m.admins.find(func(a entity.Admin) bool { return strings.EqualFold(a.Username, username) })
	if !ok {
		return nil, fmt.Errorf("admin %s: %w", username, repository.ErrNotFound)
	}
	return &a, nil
}

func (m *memoryAdminRepository) List(ctx context.Context) ([]entity.Admin, error) {
	admins := m.admins.all()
	sort.Slice(admins, func(i, j int) bool { return admins[i].CreatedAt.Before(admins[j].CreatedAt) })
	return admins, nil
}

func (m *memoryAdminRepository) Delete(ctx context.Context, id string) error {
	if !m.admins.remove(id) {
		return fmt.Errorf("admin %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// LogAction admin harakatini loglash
func (m *memoryAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = append(m.actions, action)
	return nil
}

// Actions so'nggi harakatlar, yangi -> eski
func (m *memoryAdminRepository) Actions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.AdminAction, 0, len(m.actions))
	for i := len(m.actions) - 1; i >= 0; i-- {
		out = append(out, m.actions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type memoryCustomerRepository struct {
	table *memoryTable[entity.Customer]
}

// NewMemoryCustomerRepository in-memory mijozlar repository
func NewMemoryCustomerRepository() repository.CustomerRepository {
	return &memoryCustomerRepository{table: newMemoryTable[entity.Customer](nil)}
}

func (m *memoryCustomerRepository) Create(ctx context.Context, customer entity.Customer) error {
	if _, taken := m.table.find(func(c entity.Customer) bool { return strings.EqualFold(c.Email, customer.Email) }); taken {
		return fmt.Errorf("customer %s: %w", customer.Email, repository.ErrConflict)
	}
	if !m.table.insert(customer.ID, customer) {
		return fmt.Errorf("customer %s: %w", customer.ID, repository.ErrConflict)
	}
	return nil
}

func (m *memoryCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	c, ok := m.table.get(id)
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, repository.ErrNotFound)
	}
	return &c, nil
}

func (m *memoryCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	c, ok := m.table.find(func(c entity.Customer) bool { return strings.EqualFold(c.Email, email) })
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", email, repository.ErrNotFound)
	}
	return &c, nil
}

func (m *memoryCustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	customers := m.table.all()
	sort.Slice(customers, func(i, j int) bool { return customers[i].CreatedAt.Before(customers[j].CreatedAt) })
	return customers, nil
}
