package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
	"github.com/yourusername/hardware-storefront/internal/infrastructure/storage"
)

func TestChatUseCase_ProcessMessageSendsCatalogAndHistory(t *testing.T) {
	ctx := context.Background()
	hardware := storage.NewMemoryHardwareRepository()
	seedHardware(t, hardware)
	products := storage.NewMemoryProductRepository()
	require.NoError(t, products.Save(ctx, entity.Product{ID: "p1", Title: "Gaming PC", Price: 5200, Specs: map[string]string{"GPU": "RTX 4060"}}))
	chats := storage.NewMemoryChatRepository(20)
	ai := &fakeSuggestions{reply: "Try the Ryzen kit"}

	uc := NewChatUseCase(ai, chats, products, hardware)

	reply, err := uc.ProcessMessage(ctx, "s1", "ana", "  Which CPU?  ")
	require.NoError(t, err)
	assert.Equal(t, "Try the Ryzen kit", reply)

	_, err = uc.ProcessMessage(ctx, "s1", "ana", "And RAM?")
	require.NoError(t, err)

	require.Len(t, ai.chats, 2)
	first := ai.chats[0]
	assert.Equal(t, "Which CPU?", first.Message)
	assert.Contains(t, first.Context, "Processor")
	assert.Contains(t, first.Context, "AM5")
	assert.Contains(t, first.Context, "Gaming PC")
	assert.Contains(t, first.Context, "GPU: RTX 4060")
	assert.Empty(t, first.History)

	second := ai.chats[1]
	require.Len(t, second.History, 1)
	assert.Equal(t, "Which CPU?", second.History[0].Text)
	assert.Equal(t, "Try the Ryzen kit", second.History[0].Response)

	history, err := uc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, history, 2)

	require.NoError(t, uc.ClearHistory(ctx, "s1"))
	history, err = uc.GetHistory(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatUseCase_Validation(t *testing.T) {
	ctx := context.Background()
	uc := NewChatUseCase(&fakeSuggestions{}, storage.NewMemoryChatRepository(5),
		storage.NewMemoryProductRepository(), storage.NewMemoryHardwareRepository())

	_, err := uc.ProcessMessage(ctx, "", "ana", "hi")
	assert.ErrorIs(t, err, repository.ErrInvalid)
	_, err = uc.ProcessMessage(ctx, "s1", "ana", "   ")
	assert.ErrorIs(t, err, repository.ErrInvalid)

	_, err = uc.CatalogText(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	noAI := NewChatUseCase(nil, storage.NewMemoryChatRepository(5),
		storage.NewMemoryProductRepository(), storage.NewMemoryHardwareRepository())
	_, err = noAI.ProcessMessage(ctx, "s1", "ana", "hi")
	assert.ErrorIs(t, err, repository.ErrUnsupported)
}
