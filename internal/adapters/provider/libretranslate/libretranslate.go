// Package libretranslate translates through a LibreTranslate (Argos)
// instance. The default base URL points at a locally running server; public
// instances work the same way. "auto" is accepted as the source language.
package libretranslate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "http://127.0.0.1:5000"

type Client struct {
	From    string
	To      string
	APIKey  string
	BaseURL string
	http    *resty.Client
}

func New(apiKey, baseURL, from, to string) *Client {
	return &Client{From: from, To: to, APIKey: apiKey, BaseURL: baseURL, http: resty.New().SetTimeout(20 * time.Second)}
}

func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	body := map[string]any{
		"q":      text,
		"source": c.From,
		"target": c.To,
		"format": "text",
	}
	if c.APIKey != "" {
		body["api_key"] = c.APIKey
	}
	var resp struct {
		TranslatedText   string `json:"translatedText"`
		DetectedLanguage struct {
			Language string `json:"language"`
		} `json:"detectedLanguage"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&resp).
		Post(strings.TrimRight(base, "/") + "/translate")
	if err != nil {
		return "", fmt.Errorf("libretranslate: %w", err)
	}
	if r.IsError() {
		return "", fmt.Errorf("libretranslate: %s; body: %s", r.Status(), r.String())
	}
	out := strings.TrimSpace(resp.TranslatedText)
	if out == "" {
		return "", fmt.Errorf("libretranslate: empty translation")
	}
	return out, nil
}
