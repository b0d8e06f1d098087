package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// DefaultModel GEMINI_MODEL berilmasa ishlatiladi
const DefaultModel = "gemini-2.0-flash"

// Client Gemini asosidagi SuggestionService (classify, chat, generate)
type Client struct {
	client   *genai.Client
	chat     *genai.GenerativeModel
	classify *genai.GenerativeModel
	generate *genai.GenerativeModel

	limiter *limiter
}

var _ repository.SuggestionService = (*Client)(nil)

// NewGeminiClient yangi Gemini AI client yaratish
func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*Client, error) {
	if modelName == "" {
		modelName = DefaultModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Chat - sotuvchi sifatida
	chat := client.GenerativeModel(modelName)
	chat.SetTemperature(0.3)
	chat.SetTopK(20)
	chat.SetTopP(0.9)
	chat.SetMaxOutputTokens(2048)
	chat.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatInstruction)}}

	// Classify - faqat JSON
	classify := client.GenerativeModel(modelName)
	classify.SetTemperature(0.1)
	classify.ResponseMIMEType = "application/json"
	classify.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(classifyInstruction)}}

	generate := client.GenerativeModel(modelName)
	generate.SetTemperature(0.7)
	generate.SetMaxOutputTokens(1024)
	generate.ResponseMIMEType = "application/json"
	generate.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(generateInstruction)}}

	return &Client{
		client:   client,
		chat:     chat,
		classify: classify,
		generate: generate,
		limiter:  newLimiter(3, 350*time.Millisecond),
	}, nil
}

// Classify mahsulotlarni do'kon kategoriyalariga ajratish
func (g *Client) Classify(ctx context.Context, req entity.ClassifyRequest) (*entity.ClassifyResponse, error) {
	if len(req.Products) == 0 {
		return &entity.ClassifyResponse{Success: true, Classifications: []entity.Classification{}}, nil
	}
	release, err := g.limiter.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := g.classify.GenerateContent(ctx, genai.Text(buildClassifyPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini classify: %w", err)
	}
	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	classifications, err := parseClassifications(text, req.Categories)
	if err != nil {
		return nil, err
	}
	return &entity.ClassifyResponse{
		Success:         true,
		Classifications: classifications,
		Usage:           usageOf(resp),
	}, nil
}

// Chat tarix bilan javob yaratish
func (g *Client) Chat(ctx context.Context, req entity.ChatRequest) (*entity.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("chat message: %w", repository.ErrInvalid)
	}
	release, err := g.limiter.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	session := g.chat.StartChat()
	session.History = buildHistory(req.History)

	resp, err := session.SendMessage(ctx, genai.Text(buildChatMessage(req)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	zap.S().Debugw("gemini chat", "session", req.SessionID, "history", len(req.History))
	return &entity.ChatResponse{Success: true, Reply: text, Usage: usageOf(resp)}, nil
}

// Generate mahsulot sarlavhasi va tavsifini yaratish
func (g *Client) Generate(ctx context.Context, req entity.GenerateRequest) (*entity.GenerateResponse, error) {
	release, err := g.limiter.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := g.generate.GenerateContent(ctx, genai.Text(buildGeneratePrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	text, err := extractText(resp)
	if err != nil {
		return nil, err
	}

	out, err := parseGenerated(text)
	if err != nil {
		return nil, err
	}
	out.Usage = usageOf(resp)
	return out, nil
}

// SearchImages Gemini da yo'q
func (g *Client) SearchImages(ctx context.Context, req entity.ImageSearchRequest) (*entity.ImageSearchResponse, error) {
	return nil, fmt.Errorf("gemini search-images: %w", repository.ErrUnsupported)
}

// TextToSpeech Gemini da yo'q
func (g *Client) TextToSpeech(ctx context.Context, req entity.SpeechRequest) (*entity.SpeechResponse, error) {
	return nil, fmt.Errorf("gemini text-to-speech: %w", repository.ErrUnsupported)
}

// GenerateMusic Gemini da yo'q
func (g *Client) GenerateMusic(ctx context.Context, req entity.MusicRequest) (*entity.MusicResponse, error) {
	return nil, fmt.Errorf("gemini music: %w", repository.ErrUnsupported)
}

// Close client ni yopish
func (g *Client) Close() error {
	return g.client.Close()
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no response candidates")
	}
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				result.WriteString(string(t))
			}
		}
	}
	return result.String(), nil
}

func usageOf(resp *genai.GenerateContentResponse) entity.SuggestionUsage {
	if resp == nil || resp.UsageMetadata == nil {
		return entity.SuggestionUsage{}
	}
	return entity.SuggestionUsage{
		PromptTokens:     int(resp.UsageMetadata.PromptTokenCount),
		CompletionTokens: int(resp.UsageMetadata.CandidatesTokenCount),
	}
}
