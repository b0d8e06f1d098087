package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// Registration mijoz ro'yxatdan o'tish ma'lumotlari
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// CustomerUseCase mijozlar bilan bog'liq business logic
type CustomerUseCase interface {
	Register(ctx context.Context, reg Registration) (*entity.Customer, error)
	Login(ctx context.Context, email, password string) (*entity.Session, *entity.Customer, error)
	Logout(ctx context.Context, token string) error

	// Profile token egasining ma'lumotlari
	Profile(ctx context.Context, token string) (*entity.Customer, error)

	Get(ctx context.Context, id string) (*entity.Customer, error)
	List(ctx context.Context) ([]entity.Customer, error)
}

type customerUseCase struct {
	repo     repository.CustomerRepository
	sessions repository.SessionStore
}

// NewCustomerUseCase yangi CustomerUseCase yaratish
func NewCustomerUseCase(repo repository.CustomerRepository, sessions repository.SessionStore) CustomerUseCase {
	return &customerUseCase{
		repo:     repo,
		sessions: sessions,
	}
}

// Register yangi mijoz; email takrorlansa ErrConflict
func (u *customerUseCase) Register(ctx context.Context, reg Registration) (*entity.Customer, error) {
	name := strings.TrimSpace(reg.Name)
	if name == "" {
		return nil, invalidf("name is required")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(reg.Email))
	if err != nil {
		return nil, invalidf("email %q is malformed", reg.Email)
	}
	hash, err := hashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	customer := entity.Customer{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        strings.ToLower(addr.Address),
		Phone:        strings.TrimSpace(reg.Phone),
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := u.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Login email va parol bilan kirish
func (u *customerUseCase) Login(ctx context.Context, email, password string) (*entity.Session, *entity.Customer, error) {
	customer, err := u.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("wrong email or password: %w", repository.ErrUnauthorized)
		}
		return nil, nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return nil, nil, fmt.Errorf("wrong email or password: %w", repository.ErrUnauthorized)
	}

	session, err := openSession(ctx, u.sessions, customer.ID, entity.RoleCustomer)
	if err != nil {
		return nil, nil, err
	}
	return session, customer, nil
}

// Logout sessiyani yopish
func (u *customerUseCase) Logout(ctx context.Context, token string) error {
	return u.sessions.Delete(ctx, token)
}

// Profile token egasining ma'lumotlari
func (u *customerUseCase) Profile(ctx context.Context, token string) (*entity.Customer, error) {
	session, err := authenticate(ctx, u.sessions, token)
	if err != nil {
		return nil, err
	}
	if session.Role != entity.RoleCustomer {
		return nil, fmt.Errorf("not a customer session: %w", repository.ErrUnauthorized)
	}
	return u.repo.GetByID(ctx, session.Subject)
}

func (u *customerUseCase) Get(ctx context.Context, id string) (*entity.Customer, error) {
	return u.repo.GetByID(ctx, id)
}

func (u *customerUseCase) List(ctx context.Context) ([]entity.Customer, error) {
	return u.repo.List(ctx)
}
