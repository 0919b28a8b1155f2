// Package mymemory translates through the MyMemory free API
// (https://mymemory.translated.net/doc/spec.php). The free tier allows about
// 5000 characters per day and does not support on-the-wire language
// detection, so both ends of the language pair must be explicit.
package mymemory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.mymemory.translated.net"

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
	var resp struct {
		ResponseData struct {
			TranslatedText string  `json:"translatedText"`
			Match          float64 `json:"match"`
		} `json:"responseData"`
		ResponseStatus int `json:"responseStatus"`
	}
	r, err := c.http.R().SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":        text,
			"langpair": c.From + "|" + c.To,
		}).
		SetResult(&resp).
		Get(strings.TrimRight(base, "/") + "/get")
	if err != nil {
		return "", fmt.Errorf("mymemory: %w", err)
	}
	if r.IsError() {
		return "", fmt.Errorf("mymemory: %s", r.Status())
	}
	if resp.ResponseStatus != 200 {
		return "", fmt.Errorf("mymemory: response status %d", resp.ResponseStatus)
	}
	out := strings.TrimSpace(resp.ResponseData.TranslatedText)
	if out == "" {
		return "", fmt.Errorf("mymemory: empty translation")
	}
	return out, nil
}
