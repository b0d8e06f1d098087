// Package remote talks to the storefront's hosted AI endpoints
// (classify-products.php, chat-ai.php and friends) over JSON POST.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

const (
	endpointClassify     = "/classify-products.php"
	endpointChat         = "/chat-ai.php"
	endpointGenerate     = "/generate.php"
	endpointSearchImages = "/search-images.php"
	endpointTextToSpeech = "/text-to-speech.php"
	endpointMusic        = "/suno-generate.php"
)

// DefaultTimeout har bir so'rov uchun
const DefaultTimeout = 60 * time.Second

type client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

// NewRemoteClient PHP endpointlar uchun SuggestionService
func NewRemoteClient(baseURL, apiKey string, timeout time.Duration) repository.SuggestionService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
	}
}

// envelope barcha javoblardagi umumiy maydonlar
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// post so'rov yuborib javobni out ga yozadi.
// {"success": false} javoblari *repository.BusinessError bo'ladi.
func (c *client) post(ctx context.Context, endpoint string, req, out any) error {
	var body []byte
	var code int

	headers := gout.H{"Accept": "application/json"}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	start := time.Now()
	err := gout.POST(c.baseURL + endpoint).
		WithContext(ctx).
		SetTimeout(c.timeout).
		SetHeader(headers).
		SetJSON(req).
		BindBody(&body).
		Code(&code).
		Do()
	zap.S().Debugw("remote suggestion call", "endpoint", endpoint, "status", code, "elapsed", time.Since(start))
	if err != nil {
		return fmt.Errorf("%s: %w", endpoint, err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(body, &env); jsonErr != nil {
		if code >= 400 {
			return fmt.Errorf("%s: http %d", endpoint, code)
		}
		return fmt.Errorf("%s: decode response: %w", endpoint, jsonErr)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("request failed (http %d)", code)
		}
		return &repository.BusinessError{Endpoint: endpoint, Message: msg}
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}
	return nil
}

func (c *client) Classify(ctx context.Context, req entity.ClassifyRequest) (*entity.ClassifyResponse, error) {
	var out entity.ClassifyResponse
	if err := c.post(ctx, endpointClassify, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	var out entity.ChatResponse
	if err := c.post(ctx, endpointChat, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResponse, error) {
	var out entity.GenerateResponse
	if err := c.post(ctx, endpointGenerate, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) SearchImages(ctx context.Context, req entity.ImageSearchRequest) (*entity.ImageSearchResponse, error) {
	var out entity.ImageSearchResponse
	if err := c.post(ctx, endpointSearchImages, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) TextToSpeech(ctx context.Context, req entity.SpeechRequest) (*entity.SpeechResponse, error) {
	var out entity.SpeechResponse
	if err := c.post(ctx, endpointTextToSpeech, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) GenerateMusic(ctx context.Context, req entity.MusicRequest) (*entity.MusicResponse, error) {
	var out entity.MusicResponse
	if err := c.post(ctx, endpointMusic, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
