// Package bing translates through the Microsoft Translator v3 API. A
// subscription key is optional at construction but the service rejects
// unauthenticated calls, which the caller's fallback policy absorbs. Leaving
// From empty (or "auto") lets the service detect the input language.
package bing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.cognitive.microsofttranslator.com"

type Client struct {
	From    string
	To      string
	APIKey  string
	BaseURL string
	http    *resty.Client
}

func New(apiKey, from, to string) *Client {
	return &Client{From: from, To: to, APIKey: apiKey, http: resty.New().SetTimeout(20 * time.Second)}
}

func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	params := map[string]string{
		"api-version": "3.0",
		"to":          c.To,
	}
	if c.From != "" && c.From != "auto" {
		params["from"] = c.From
	}
	var resp []struct {
		Translations []struct {
			Text string `json:"text"`
			To   string `json:"to"`
		} `json:"translations"`
	}
	req := c.http.R().SetContext(ctx).
		SetQueryParams(params).
		SetHeader("Content-Type", "application/json").
		SetBody([]map[string]string{{"Text": text}}).
		SetResult(&resp)
	if c.APIKey != "" {
		req.SetHeader("Ocp-Apim-Subscription-Key", c.APIKey)
	}
	r, err := req.Post(strings.TrimRight(base, "/") + "/translate")
	if err != nil {
		return "", fmt.Errorf("bing translate: %w", err)
	}
	if r.IsError() {
		return "", fmt.Errorf("bing translate: %s; body: %s", r.Status(), r.String())
	}
	if len(resp) == 0 || len(resp[0].Translations) == 0 {
		return "", fmt.Errorf("bing translate: empty response")
	}
	out := strings.TrimSpace(resp[0].Translations[0].Text)
	if out == "" {
		return "", fmt.Errorf("bing translate: empty translation")
	}
	return out, nil
}
