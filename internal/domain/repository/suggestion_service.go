package repository

import (
	"context"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// SuggestionService tashqi AI imkoniyatlari uchun yagona interface.
// Provider qo'llab-quvvatlamaydigan so'rovlar ErrUnsupported qaytaradi.
type SuggestionService interface {
	Classify(ctx context.Context, req entity.ClassifyRequest) (*entity.ClassifyResponse, error)
	Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error)
	Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResponse, error)
	SearchImages(ctx context.Context, req entity.ImageSearchRequest) (*entity.ImageSearchResponse, error)
	TextToSpeech(ctx context.Context, req entity.SpeechRequest) (*entity.SpeechResponse, error)
	GenerateMusic(ctx context.Context, req entity.MusicRequest) (*entity.MusicResponse, error)
}
