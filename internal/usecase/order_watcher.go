package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// DefaultPollInterval yangi buyurtmalarni tekshirish oralig'i
const DefaultPollInterval = 30 * time.Second

// OrderWatcher polls for new orders and hands them to the notifier. The
// first tick picks up orders created after the watcher started; later ticks
// follow the order number, so an order whose insert lands after a tick is
// still seen even if its timestamp is older. There is no backoff; a failed
// tick is logged and the next tick runs on schedule.
type OrderWatcher struct {
	orders   OrderUseCase
	notifier repository.OrderNotifier
	interval time.Duration
	since    time.Time
	after    int64
	primed   bool
}

// NewOrderWatcher yangi watcher; faqat yaratilgandan keyingi buyurtmalar xabar qilinadi
func NewOrderWatcher(orders OrderUseCase, notifier repository.OrderNotifier, interval time.Duration) *OrderWatcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &OrderWatcher{
		orders:   orders,
		notifier: notifier,
		interval: interval,
		since:    time.Now(),
	}
}

// Run context bekor qilinguncha ishlaydi
func (w *OrderWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	zap.S().Infow("order watcher started", "interval", w.interval.String())
	for {
		select {
		case <-ctx.Done():
			zap.S().Info("order watcher stopped")
			return nil
		case <-ticker.C:
			if _, err := w.Poll(ctx); err != nil {
				zap.S().Errorw("order poll failed", "error", err)
			}
		}
	}
}

// Poll runs a single tick and returns how many orders were notified.
func (w *OrderWatcher) Poll(ctx context.Context) (int, error) {
	var orders []entity.Order
	var err error
	if w.primed {
		orders, err = w.orders.ListAfter(ctx, w.after)
	} else {
		orders, err = w.orders.ListSince(ctx, w.since)
	}
	if err != nil {
		return 0, err
	}
	w.primed = true

	notified := 0
	for _, order := range orders {
		if order.Number <= w.after {
			continue
		}
		w.after = order.Number
		if err := w.notifier.NotifyNewOrder(ctx, order); err != nil {
			zap.S().Errorw("order notification failed", "order", order.Number, "error", err)
			continue
		}
		notified++
	}
	return notified, nil
}

type logNotifier struct{}

// NewLogNotifier Telegram sozlanmaganda buyurtmalarni logga yozadi
func NewLogNotifier() repository.OrderNotifier {
	return logNotifier{}
}

func (logNotifier) NotifyNewOrder(ctx context.Context, order entity.Order) error {
	zap.S().Infow("new order",
		"number", order.Number,
		"id", order.ID,
		"customer", order.CustomerName,
		"phone", order.CustomerPhone,
		"total", order.Total)
	return nil
}
