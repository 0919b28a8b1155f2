// Package openrouter is the AI translation backend. It sends a
// chat-completion request to OpenRouter with a prompt that embeds the
// language pair and, when known, the script-based direction hint, and uses
// the assistant's reply verbatim as the translation. Without a credential the
// free tier is still attempted.
package openrouter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/prompt"
	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
	"github.com/TUNA-NOPE/ShiftLang/internal/language"
	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
)

const (
	defaultBaseURL = "https://openrouter.ai"
	// DefaultModel is the free-tier routing alias used when no model is
	// configured.
	DefaultModel = "openrouter/free"
)

type Client struct {
	APIKey  string
	BaseURL string
	Model   string
	Source  string
	Target  string
	prompt  ports.PromptRenderer
	http    *resty.Client
}

func New(apiKey, model, source, target string, renderer ports.PromptRenderer) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		APIKey: apiKey,
		Model:  model,
		Source: source,
		Target: target,
		prompt: renderer,
		http:   resty.New().SetTimeout(30 * time.Second),
	}
}

// Translate satisfies the fixed-direction interface by treating the text as
// source-language input. Callers that know better use TranslateBidirectional.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	return c.TranslateBidirectional(ctx, text, domain.DirectionSource)
}

func (c *Client) TranslateBidirectional(ctx context.Context, text string, dir domain.Direction) (string, error) {
	userPrompt, err := c.buildPrompt(text, dir)
	if err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}

	body := map[string]any{
		"model": c.Model,
		"messages": []map[string]string{
			{"role": "user", "content": userPrompt},
		},
	}
	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	req := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("HTTP-Referer", "https://github.com/TUNA-NOPE/ShiftLang").
		SetHeader("X-Title", "ShiftLang").
		SetBody(body).
		SetResult(&resp)
	if c.APIKey != "" {
		req.SetHeader("Authorization", "Bearer "+c.APIKey)
	}
	r, err := req.Post(c.completionsURL())
	if err != nil {
		return "", fmt.Errorf("openrouter: %w", err)
	}
	if r.StatusCode() == 401 {
		return "", fmt.Errorf("openrouter: authentication failed, check the API key")
	}
	if r.IsError() {
		return "", fmt.Errorf("openrouter: %s; body: %s", r.Status(), abbreviate(r.String(), 512))
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter: no choices returned")
	}
	out := cleanAnswer(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openrouter: empty translation")
	}
	return out, nil
}

func (c *Client) buildPrompt(text string, dir domain.Direction) (string, error) {
	data := ports.PromptData{
		Text:       text,
		SourceLang: language.DisplayName(c.Source),
		TargetLang: language.DisplayName(c.Target),
	}
	switch dir {
	case domain.DirectionSource:
		return c.prompt.Render(prompt.TypeFixed, data)
	case domain.DirectionTarget:
		// Direction is resolved toward the source language; swap the pair
		// so the fixed template still reads from -> to.
		data.SourceLang, data.TargetLang = data.TargetLang, data.SourceLang
		return c.prompt.Render(prompt.TypeFixed, data)
	default:
		return c.prompt.Render(prompt.TypeAuto, data)
	}
}

func (c *Client) completionsURL() string {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	b := strings.TrimRight(base, "/")
	if i := strings.Index(b, "/api/v1"); i >= 0 {
		b = b[:i+len("/api/v1")]
		return b + "/chat/completions"
	}
	return b + "/api/v1/chat/completions"
}

// cleanAnswer strips the wrapping models like to add around a plain-text
// answer: code fences, surrounding quotes and "Translation:" labels.
func cleanAnswer(content string) string {
	s := strings.TrimSpace(content)
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		rest = strings.TrimPrefix(rest, "text")
		if j := strings.Index(rest, "```"); j >= 0 {
			s = strings.TrimSpace(rest[:j])
		}
	}
	lower := strings.ToLower(s)
	for _, label := range []string{"translation:", "translated:", "translated text:"} {
		if strings.HasPrefix(lower, label) {
			s = strings.TrimSpace(s[len(label):])
			break
		}
	}
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
