package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// OrderLine buyurtma so'rovidagi qator
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// OrderDraft yangi buyurtma so'rovi
type OrderDraft struct {
	CustomerID    string      `json:"customerId,omitempty"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Notes         string      `json:"notes,omitempty"`
	Items         []OrderLine `json:"items"`
}

// OrderUseCase buyurtmalar bilan bog'liq business logic
type OrderUseCase interface {
	// Create narx va nomni mahsulotdan nusxalab buyurtma yaratish
	Create(ctx context.Context, draft OrderDraft) (*entity.Order, error)
	Get(ctx context.Context, id string) (*entity.Order, error)

	// List holat bo'yicha (bo'sh = hammasi)
	List(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error)

	// UpdateStatus o'tish jadvaliga ko'ra holatni o'zgartirish
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// ListSince since dan keyin yaratilganlar
	ListSince(ctx context.Context, since time.Time) ([]entity.Order, error)

	// ListAfter tartib raqami number dan katta buyurtmalar
	ListAfter(ctx context.Context, number int64) ([]entity.Order, error)
}

type orderUseCase struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	ids       *snowflake.Node
}

// NewOrderUseCase yangi OrderUseCase yaratish. node snowflake node raqami (0..1023).
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	node int64,
) (OrderUseCase, error) {
	ids, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("failed to create id node: %w", err)
	}
	return &orderUseCase{
		orders:    orders,
		products:  products,
		customers: customers,
		ids:       ids,
	}, nil
}

// Create buyurtma yaratish
func (u *orderUseCase) Create(ctx context.Context, draft OrderDraft) (*entity.Order, error) {
	if len(draft.Items) == 0 {
		return nil, invalidf("order has no items")
	}

	order := entity.Order{
		ID:            u.ids.Generate().String(),
		CustomerID:    strings.TrimSpace(draft.CustomerID),
		CustomerName:  strings.TrimSpace(draft.CustomerName),
		CustomerPhone: strings.TrimSpace(draft.CustomerPhone),
		Notes:         strings.TrimSpace(draft.Notes),
		Status:        entity.OrderPending,
	}

	if order.CustomerID != "" && u.customers != nil {
		customer, err := u.customers.GetByID(ctx, order.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", order.CustomerID, err)
		}
		if order.CustomerName == "" {
			order.CustomerName = customer.Name
		}
		if order.CustomerPhone == "" {
			order.CustomerPhone = customer.Phone
		}
	}
	if order.CustomerName == "" {
		return nil, invalidf("customer name is required")
	}
	if order.CustomerPhone == "" {
		return nil, invalidf("customer phone is required")
	}

	for i, line := range draft.Items {
		if line.Quantity <= 0 {
			return nil, invalidf("item %d: quantity must be > 0", i+1)
		}
		product, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, invalidf("item %d: %v", i+1, err)
		}
		order.Items = append(order.Items, entity.OrderItem{
			ProductID: product.ID,
			Title:     product.Title,
			Quantity:  line.Quantity,
			UnitPrice: product.Price,
		})
	}
	order.ComputeTotal()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	if err := u.orders.Create(ctx, &order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	zap.S().Infow("order created",
		"id", order.ID,
		"number", order.Number,
		"items", len(order.Items),
		"total", order.Total)
	return &order, nil
}

func (u *orderUseCase) Get(ctx context.Context, id string) (*entity.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List holat bo'yicha
func (u *orderUseCase) List(ctx context.Context, status entity.OrderStatus) ([]entity.Order, error) {
	if status != "" && !status.Valid() {
		return nil, invalidf("unknown order status %q", status)
	}
	return u.orders.List(ctx, status)
}

// UpdateStatus holatni o'zgartirish
func (u *orderUseCase) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, invalidf("unknown order status %q", status)
	}
	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransition(status) {
		return nil, invalidf("cannot move order from %s to %s", order.Status, status)
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := u.orders.Update(ctx, *order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

// ListSince since dan keyin yaratilganlar
func (u *orderUseCase) ListSince(ctx context.Context, since time.Time) ([]entity.Order, error) {
	return u.orders.ListSince(ctx, since)
}

func (u *orderUseCase) ListAfter(ctx context.Context, number int64) ([]entity.Order, error) {
	return u.orders.ListAfter(ctx, number)
}
