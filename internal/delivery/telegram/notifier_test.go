package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

type fakeSender struct {
	sent []tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if f.err != nil {
		return tgbotapi.Message{}, f.err
	}
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent = append(f.sent, msg)
	}
	return tgbotapi.Message{}, nil
}

func TestOrderNotifier_SendsToAdminChat(t *testing.T) {
	bot := &fakeSender{}
	n := NewOrderNotifier(bot, -100123)

	err := n.NotifyNewOrder(context.Background(), entity.Order{ID: "1", Number: 3, CustomerName: "Ana", Total: 10})
	require.NoError(t, err)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(-100123), bot.sent[0].ChatID)
	assert.Contains(t, bot.sent[0].Text, "#3")
}

func TestOrderNotifier_PropagatesErrors(t *testing.T) {
	n := NewOrderNotifier(&fakeSender{err: errors.New("flood")}, 1)
	err := n.NotifyNewOrder(context.Background(), entity.Order{ID: "9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notify order 9")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewOrderNotifier(&fakeSender{}, 1).NotifyNewOrder(ctx, entity.Order{}), context.Canceled)
}
