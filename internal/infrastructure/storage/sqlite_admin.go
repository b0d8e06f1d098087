package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// PasswordHash json:"-" bo'lgani uchun bazada alohida maydon
type storedAdmin struct {
	entity.Admin
	Hash string `json:"passwordHash"`
}

type storedCustomer struct {
	entity.Customer
	Hash string `json:"passwordHash"`
}

func (s storedAdmin) admin() entity.Admin {
	a := s.Admin
	a.PasswordHash = s.Hash
	return a
}

func (s storedCustomer) customer() entity.Customer {
	c := s.Customer
	c.PasswordHash = s.Hash
	return c
}

type sqliteAdminRepository struct {
	admins  sqliteCollection[storedAdmin]
	actions sqliteCollection[entity.AdminAction]
}

// NewSQLiteAdminRepository SQLite asosidagi admin repository
func NewSQLiteAdminRepository(db *sql.DB) repository.AdminRepository {
	return &sqliteAdminRepository{
		admins:  newCollection[storedAdmin](db, "admins"),
		actions: newCollection[entity.AdminAction](db, "admin_actions"),
	}
}

func (s *sqliteAdminRepository) Create(ctx context.Context, admin entity.Admin) error {
	if _, err := s.GetByUsername(ctx, admin.Username); err == nil {
		return fmt.Errorf("admin %s: %w", admin.Username, repository.ErrConflict)
	}
	ok, err := s.admins.insert(ctx, admin.ID, storedAdmin{Admin: admin, Hash: admin.PasswordHash})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("admin %s: %w", admin.ID, repository.ErrConflict)
	}
	return nil
}

func (s *sqliteAdminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	st, ok, err := s.admins.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("admin %s: %w", id, repository.ErrNotFound)
	}
	a := st.admin()
	return &a, nil
}

func (s *sqliteAdminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	all, err := s.admins.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range all {
		if strings.EqualFold(st.Username, username) {
			a := st.admin()
			return &a, nil
		}
	}
	return nil, fmt.Errorf("admin %s: %w", username, repository.ErrNotFound)
}

func (s *sqliteAdminRepository) List(ctx context.Context) ([]entity.Admin, error) {
	all, err := s.admins.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Admin, 0, len(all))
	for _, st := range all {
		out = append(out, st.admin())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *sqliteAdminRepository) Delete(ctx context.Context, id string) error {
	ok, err := s.admins.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("admin %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

// LogAction admin harakatini loglash
func (s *sqliteAdminRepository) LogAction(ctx context.Context, action entity.AdminAction) error {
	return s.actions.upsert(ctx, action.ID, action)
}

// Actions so'nggi harakatlar, yangi -> eski
func (s *sqliteAdminRepository) Actions(ctx context.Context, limit int) ([]entity.AdminAction, error) {
	all, err := s.actions.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.AdminAction, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

type sqliteCustomerRepository struct {
	docs sqliteCollection[storedCustomer]
}

// NewSQLiteCustomerRepository SQLite asosidagi mijozlar repository
func NewSQLiteCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &sqliteCustomerRepository{docs: newCollection[storedCustomer](db, "customers")}
}

func (s *sqliteCustomerRepository) Create(ctx context.Context, customer entity.Customer) error {
	if _, err := s.GetByEmail(ctx, customer.Email); err == nil {
		return fmt.Errorf("customer %s: %w", customer.Email, repository.ErrConflict)
	}
	ok, err := s.docs.insert(ctx, customer.ID, storedCustomer{Customer: customer, Hash: customer.PasswordHash})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("customer %s: %w", customer.ID, repository.ErrConflict)
	}
	return nil
}

func (s *sqliteCustomerRepository) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	st, ok, err := s.docs.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, repository.ErrNotFound)
	}
	c := st.customer()
	return &c, nil
}

func (s *sqliteCustomerRepository) GetByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	all, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	for _, st := range all {
		if strings.EqualFold(st.Email, email) {
			c := st.customer()
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %s: %w", email, repository.ErrNotFound)
}

func (s *sqliteCustomerRepository) List(ctx context.Context) ([]entity.Customer, error) {
	all, err := s.docs.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Customer, 0, len(all))
	for _, st := range all {
		out = append(out, st.customer())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
