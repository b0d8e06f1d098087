// Package suggestion combines suggestion providers behind a single service.
package suggestion

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// Router tries providers in order and moves to the next one only when a
// provider reports repository.ErrUnsupported. Any other error is returned as is.
type Router struct {
	providers []named
}

type named struct {
	name string
	svc  repository.SuggestionService
}

var _ repository.SuggestionService = (*Router)(nil)

// NewRouter nil providerlar e'tiborga olinmaydi
func NewRouter() *Router {
	return &Router{}
}

// With provider qo'shish (tartib = ustuvorlik)
func (r *Router) With(name string, svc repository.SuggestionService) *Router {
	if svc != nil {
		r.providers = append(r.providers, named{name: name, svc: svc})
	}
	return r
}

// Empty hech qanday provider yo'q
func (r *Router) Empty() bool {
	return len(r.providers) == 0
}

func route[T any](ctx context.Context, r *Router, kind string, call func(repository.SuggestionService) (T, error)) (T, error) {
	var zero T
	for _, p := range r.providers {
		out, err := call(p.svc)
		if errors.Is(err, repository.ErrUnsupported) {
			zap.S().Debugw("suggestion provider skipped", "provider", p.name, "kind", kind)
			continue
		}
		return out, err
	}
	return zero, fmt.Errorf("%s: no provider: %w", kind, repository.ErrUnsupported)
}

func (r *Router) Classify(ctx context.Context, req entity.ClassifyRequest) (*entity.ClassifyResponse, error) {
	return route(ctx, r, "classify", func(s repository.SuggestionService) (*entity.ClassifyResponse, error) {
		return s.Classify(ctx, req)
	})
}

func (r *Router) Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	return route(ctx, r, "chat", func(s repository.SuggestionService) (*entity.ChatResponse, error) {
		return s.Chat(ctx, req)
	})
}

func (r *Router) Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResponse, error) {
	return route(ctx, r, "generate", func(s repository.SuggestionService) (*entity.GenerateResponse, error) {
		return s.Generate(ctx, req)
	})
}

func (r *Router) SearchImages(ctx context.Context, req entity.ImageSearchRequest) (*entity.ImageSearchResponse, error) {
	return route(ctx, r, "search-images", func(s repository.SuggestionService) (*entity.ImageSearchResponse, error) {
		return s.SearchImages(ctx, req)
	})
}

func (r *Router) TextToSpeech(ctx context.Context, req entity.SpeechRequest) (*entity.SpeechResponse, error) {
	return route(ctx, r, "text-to-speech", func(s repository.SuggestionService) (*entity.SpeechResponse, error) {
		return s.TextToSpeech(ctx, req)
	})
}

func (r *Router) GenerateMusic(ctx context.Context, req entity.MusicRequest) (*entity.MusicResponse, error) {
	return route(ctx, r, "music", func(s repository.SuggestionService) (*entity.MusicResponse, error) {
		return s.GenerateMusic(ctx, req)
	})
}
