package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// sender *tgbotapi.BotAPI ning biz ishlatadigan qismi
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type orderNotifier struct {
	bot    sender
	chatID int64
}

// NewOrderNotifier yangi buyurtmalarni admin chatiga yuboradi
func NewOrderNotifier(bot sender, adminChatID int64) repository.OrderNotifier {
	return &orderNotifier{bot: bot, chatID: adminChatID}
}

func (n *orderNotifier) NotifyNewOrder(ctx context.Context, order entity.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, formatOrder(order))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("notify order %s: %w", order.ID, err)
	}
	return nil
}
