package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

type sqliteOrderRepository struct {
	db *sql.DB
}

// NewSQLiteOrderRepository SQLite asosidagi buyurtmalar repository
func NewSQLiteOrderRepository(db *sql.DB) repository.OrderRepository {
	return &sqliteOrderRepository{db: db}
}

// Create navbatdagi raqam bitta tranzaksiya ichida olinadi
func (s *sqliteOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		return fmt.Errorf("order id: %w", repository.ErrInvalid)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(number), 0) + 1 FROM orders`).Scan(&next); err != nil {
		tx.Rollback()
		return err
	}

	saved := *order
	saved.Number = next
	body, err := json.Marshal(saved)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("encode order: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
INSERT INTO orders (id, number, status, created_unix, body) VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO NOTHING`, saved.ID, saved.Number, string(saved.Status), saved.CreatedAt.UnixNano(), string(body))
	if err != nil {
		tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		tx.Rollback()
		return fmt.Errorf("order %s: %w", order.ID, repository.ErrConflict)
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	order.Number = next
	return nil
}

func (s *sqliteOrderRepository) Update(ctx context.Context, order entity.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE orders SET status = ?, body = ? WHERE id = ?`, string(order.Status), string(body), order.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("order %s: %w", order.ID, repository.ErrNotFound)
	}
	return nil
}

func (s *sqliteOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM orders WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	var o entity.Order
	if err := json.Unmarshal([]byte(body), &o); err != nil {
		return nil, fmt.Errorf("decode order %s: %w", id, err)
	}
	return &o, nil
}

func (s *sqliteOrderRepository) List(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	query := `SELECT body FROM orders`
	var args []any
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY number DESC`
	return s.queryOrders(ctx, query, args...)
}

// ListSince since dan keyin yaratilganlar, eski -> yangi
func (s *sqliteOrderRepository) ListSince(ctx context.Context, since time.Time) ([]entity.Order, error) {
	return s.queryOrders(ctx, `SELECT body FROM orders WHERE created_unix > ? ORDER BY number ASC`, since.UnixNano())
}

func (s *sqliteOrderRepository) ListAfter(ctx context.Context, number int64) ([]entity.Order, error) {
	return s.queryOrders(ctx, `SELECT body FROM orders WHERE number > ? ORDER BY number ASC`, number)
}

func (s *sqliteOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]entity.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var o entity.Order
		if err := json.Unmarshal([]byte(body), &o); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

const (
	companyDocID  = "company"
	settingsDocID = "settings"
)

type sqliteStoreRepository struct {
	company  sqliteCollection[entity.Company]
	settings sqliteCollection[entity.Settings]
	slides   sqliteCollection[entity.CarouselSlide]
}

// NewSQLiteStoreRepository kompaniya, karusel va sozlamalar (SQLite)
func NewSQLiteStoreRepository(db *sql.DB) repository.StoreRepository {
	return &sqliteStoreRepository{
		company:  newCollection[entity.Company](db, "store"),
		settings: newCollection[entity.Settings](db, "store"),
		slides:   newCollection[entity.CarouselSlide](db, "carousel"),
	}
}

func (s *sqliteStoreRepository) GetCompany(ctx context.Context) (*entity.Company, error) {
	c, _, err := s.company.get(ctx, companyDocID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *sqliteStoreRepository) SaveCompany(ctx context.Context, company entity.Company) error {
	return s.company.upsert(ctx, companyDocID, company)
}

func (s *sqliteStoreRepository) SaveSlide(ctx context.Context, slide entity.CarouselSlide) error {
	if slide.ID == "" {
		return fmt.Errorf("slide id: %w", repository.ErrInvalid)
	}
	return s.slides.upsert(ctx, slide.ID, slide)
}

func (s *sqliteStoreRepository) GetSlide(ctx context.Context, id string) (*entity.CarouselSlide, error) {
	sl, ok, err := s.slides.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("slide %s: %w", id, repository.ErrNotFound)
	}
	return &sl, nil
}

func (s *sqliteStoreRepository) ListSlides(ctx context.Context) ([]entity.CarouselSlide, error) {
	slides, err := s.slides.all(ctx)
	if err != nil {
		return nil, err
	}
	sortSlides(slides)
	return slides, nil
}

func (s *sqliteStoreRepository) DeleteSlide(ctx context.Context, id string) error {
	ok, err := s.slides.remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("slide %s: %w", id, repository.ErrNotFound)
	}
	return nil
}

func (s *sqliteStoreRepository) GetSettings(ctx context.Context) (entity.Settings, error) {
	settings, ok, err := s.settings.get(ctx, settingsDocID)
	if err != nil {
		return nil, err
	}
	if !ok || settings == nil {
		return entity.Settings{}, nil
	}
	return settings, nil
}

func (s *sqliteStoreRepository) SaveSettings(ctx context.Context, settings entity.Settings) error {
	return s.settings.upsert(ctx, settingsDocID, settings)
}
