package gemini

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

const chatInstruction = `You are a salesperson in a computer hardware store. Answer in the customer's language.

Understand the customer's intent:
- If they ask for a PC build ("gaming pc", "build me a pc for R$ 5000"), propose one item per component
  from the catalog, with exact names and prices, and sum the total correctly.
- If they ask about a specific product ("do you have an RTX 4060?"), look it up in the catalog.
  If the exact model is listed say yes and show it; otherwise offer the closest listed models.
- If they greet or thank you, reply briefly and do not propose a build.

Hard rules:
1. Only recommend products that appear in the catalog you are given. Never invent products or prices.
2. Copy names and prices exactly as listed.
3. One product per category in a build. Stay within the budget; going over by at most 5% is allowed.
4. If a category has no listed products, leave it out instead of guessing.`

const classifyInstruction = `You assign store categories to products.
Reply with JSON only: {"classifications":[{"id":"<product id>","categories":["<category key>"],"confidence":0.0}]}.
Use only the category keys you are given. A product may have several categories or none.`

const generateInstruction = `You write product copy for a computer hardware store.
Reply with JSON only: {"title":"...","subtitle":"...","description":"..."}.
The subtitle is a short spec line such as "16GB DDR5 | SSD 1TB". The description is at most 3 short paragraphs.`

// buildClassifyPrompt mahsulotlar va kategoriyalar ro'yxati
func buildClassifyPrompt(req entity.ClassifyRequest) string {
	var b strings.Builder
	b.WriteString("Categories:\n")
	for _, c := range req.Categories {
		fmt.Fprintf(&b, "- %s: %s\n", c.Key, c.Name)
	}
	b.WriteString("\nProducts:\n")
	for _, p := range req.Products {
		fmt.Fprintf(&b, "- id=%s | %s", p.ProductID, p.Title)
		if p.Description != "" {
			fmt.Fprintf(&b, " | %s", truncate(p.Description, 200))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// parseClassifications JSON javobni o'qish, noma'lum kategoriyalar tashlanadi
func parseClassifications(text string, categories []entity.Category) ([]entity.Classification, error) {
	var payload struct {
		Classifications []entity.Classification `json:"classifications"`
	}
	if err := json.Unmarshal([]byte(stripFence(text)), &payload); err != nil {
		return nil, fmt.Errorf("gemini classify: decode %q: %w", truncate(text, 120), err)
	}

	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.Key] = struct{}{}
	}

	out := make([]entity.Classification, 0, len(payload.Classifications))
	for _, c := range payload.Classifications {
		if c.ProductID == "" {
			continue
		}
		keys := make([]string, 0, len(c.Categories))
		for _, key := range c.Categories {
			if _, ok := known[key]; ok || len(known) == 0 {
				keys = append(keys, key)
			}
		}
		c.Categories = keys
		out = append(out, c)
	}
	return out, nil
}

// buildHistory tarixni Gemini chat formatiga o'tkazish
func buildHistory(turns []entity.ChatTurn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns)*2)
	for _, t := range turns {
		if t.Text == "" || t.Response == "" {
			continue
		}
		history = append(history,
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(t.Text)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(t.Response)}},
		)
	}
	return history
}

// buildChatMessage katalog konteksti bilan xabar
func buildChatMessage(req entity.ChatRequest) string {
	if strings.TrimSpace(req.Context) == "" {
		return req.Message
	}
	return fmt.Sprintf("Catalog:\n%s\n\nCustomer: %s", req.Context, req.Message)
}

func buildGeneratePrompt(req entity.GenerateRequest) string {
	var b strings.Builder
	if req.Title != "" {
		fmt.Fprintf(&b, "Product: %s\n", req.Title)
	}
	if len(req.Specs) > 0 {
		keys := make([]string, 0, len(req.Specs))
		for k := range req.Specs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("Specs:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- %s: %s\n", k, req.Specs[k])
		}
	}
	if req.Prompt != "" {
		fmt.Fprintf(&b, "Instructions: %s\n", req.Prompt)
	}
	return b.String()
}

func parseGenerated(text string) (*entity.GenerateResponse, error) {
	var out entity.GenerateResponse
	if err := json.Unmarshal([]byte(stripFence(text)), &out); err != nil {
		return nil, fmt.Errorf("gemini generate: decode %q: %w", truncate(text, 120), err)
	}
	if strings.TrimSpace(out.Description) == "" && strings.TrimSpace(out.Title) == "" {
		return nil, fmt.Errorf("gemini generate: empty result: %w", repository.ErrInvalid)
	}
	out.Success = true
	return &out, nil
}

// stripFence ```json ... ``` o'ramini olib tashlash
func stripFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		t = t[nl+1:]
	}
	t = strings.TrimSuffix(strings.TrimSpace(t), "```")
	return strings.TrimSpace(t)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
