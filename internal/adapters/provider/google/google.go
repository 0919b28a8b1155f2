// Package google translates through the public Google Translate web endpoint.
// No credential is required; "auto" is accepted as the source language.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://translate.googleapis.com"

// The web endpoint rejects requests without a browser-looking agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

type Client struct {
	From    string
	To      string
	BaseURL string
	http    *resty.Client
}

func New(from, to string) *Client {
	return &Client{From: from, To: to, http: resty.New().SetTimeout(20 * time.Second)}
}

func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	r, err := c.http.R().SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     c.From,
			"tl":     c.To,
			"dt":     "t",
			"q":      text,
		}).
		SetHeader("User-Agent", userAgent).
		Get(strings.TrimRight(base, "/") + "/translate_a/single")
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	if r.IsError() {
		return "", fmt.Errorf("google translate: %s", r.Status())
	}
	return parseResponse(r.Body())
}

// parseResponse walks the endpoint's nested-array payload:
// [[["Hola","Hello",...],["mundo","world",...]],null,"en",...]
// and concatenates the first element of every sentence entry.
func parseResponse(body []byte) (string, error) {
	var root []any
	if err := json.Unmarshal(body, &root); err != nil {
		return "", fmt.Errorf("google translate: parse response: %w", err)
	}
	if len(root) == 0 {
		return "", fmt.Errorf("google translate: empty response")
	}
	sentences, ok := root[0].([]any)
	if !ok {
		return "", fmt.Errorf("google translate: unexpected response shape")
	}
	var b strings.Builder
	for _, item := range sentences {
		props, ok := item.([]any)
		if !ok || len(props) == 0 {
			continue
		}
		if s, ok := props[0].(string); ok {
			b.WriteString(s)
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("google translate: no translation in response")
	}
	return out, nil
}
