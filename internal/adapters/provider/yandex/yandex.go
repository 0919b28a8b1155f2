// Package yandex translates through the Yandex Translate API. A credential is
// required by the service; an empty From lets Yandex detect the input
// language from the text.
package yandex

import (
	"context"
	"fmt"
	"strings"

	translate "github.com/dafanasev/go-yandex-translate"
)

type Client struct {
	From string
	To   string
	tr   *translate.Translator
}

func New(apiKey, from, to string) *Client {
	return &Client{From: from, To: to, tr: translate.New(apiKey)}
}

func (c *Client) Translate(_ context.Context, text string) (string, error) {
	// The Yandex API takes either a "to" language or a "from-to" pair;
	// the single-language form triggers server-side detection.
	lang := c.To
	if c.From != "" && c.From != "auto" {
		lang = c.From + "-" + c.To
	}
	res, err := c.tr.Translate(lang, text)
	if err != nil {
		return "", fmt.Errorf("yandex translate: %w", err)
	}
	out := strings.TrimSpace(res.Result())
	if out == "" {
		return "", fmt.Errorf("yandex translate: empty translation")
	}
	return out, nil
}
