// Package config loads the user configuration from config.json, with the
// same keys and defaults the installer writes. Missing file or missing keys
// fall back to defaults; an unknown provider tag falls back to the default
// provider rather than failing.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
)

// Provider tags selectable through translation_provider.
const (
	ProviderGoogle         = "google"
	ProviderBing           = "bing"
	ProviderYandex         = "yandex"
	ProviderMyMemory       = "mymemory"
	ProviderLibreTranslate = "libretranslate"
	ProviderOpenRouter     = "openrouter"
)

// DefaultProvider is used when translation_provider is absent or unknown.
const DefaultProvider = ProviderGoogle

// EnvAPIKey is consulted when openrouter_api_key is not set in the file.
const EnvAPIKey = "OPENROUTER_API_KEY"

// DefaultModel is the OpenRouter model used when none is configured.
const DefaultModel = "openrouter/free"

var providers = map[string]bool{
	ProviderGoogle:         true,
	ProviderBing:           true,
	ProviderYandex:         true,
	ProviderMyMemory:       true,
	ProviderLibreTranslate: true,
	ProviderOpenRouter:     true,
}

var displayNames = map[string]string{
	ProviderGoogle:         "Google Translate",
	ProviderBing:           "Bing Microsoft Translator",
	ProviderYandex:         "Yandex Translate",
	ProviderMyMemory:       "MyMemory",
	ProviderLibreTranslate: "LibreTranslate (Argos)",
	ProviderOpenRouter:     "OpenRouter AI",
}

var defaultHotkeys = map[string]string{
	"windows": "ctrl+shift+q",
	"darwin":  "cmd+shift+g",
	"linux":   "alt+shift+g",
}

type Config struct {
	Hotkey                   string `json:"hotkey"`
	SourceLanguage           string `json:"source_language"`
	TargetLanguage           string `json:"target_language"`
	Provider                 string `json:"translation_provider"`
	APIKey                   string `json:"openrouter_api_key"`
	Model                    string `json:"openrouter_model"`
	ProviderBaseURL          string `json:"provider_base_url,omitempty"`
	ClearClipboardAfterPaste bool   `json:"clear_clipboard_after_paste"`
	LogLevel                 string `json:"log_level,omitempty"`
}

// Default returns the configuration used when config.json is absent.
func Default() *Config {
	hotkey, ok := defaultHotkeys[runtime.GOOS]
	if !ok {
		hotkey = defaultHotkeys["windows"]
	}
	return &Config{
		Hotkey:                   hotkey,
		SourceLanguage:           "hebrew",
		TargetLanguage:           "english",
		Provider:                 DefaultProvider,
		Model:                    DefaultModel,
		ClearClipboardAfterPaste: true,
		LogLevel:                 "info",
	}
}

// Load reads path over the defaults. A missing file is not an error. A .env
// next to the working directory is loaded first so Credential() can see it.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if !providers[c.Provider] {
		c.Provider = DefaultProvider
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports misconfiguration that cannot be defaulted away.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Hotkey) == "" {
		return errors.New("hotkey must not be empty")
	}
	src := strings.ToLower(strings.TrimSpace(c.SourceLanguage))
	tgt := strings.ToLower(strings.TrimSpace(c.TargetLanguage))
	if src == "" || tgt == "" {
		return errors.New("source_language and target_language must be set")
	}
	if src == tgt {
		return errors.New("source_language and target_language must differ")
	}
	return nil
}

// Credential resolves the provider credential: explicit config value first,
// then the environment, else empty (the free tier is still attempted).
func (c *Config) Credential() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(EnvAPIKey)
}

// IsValidProvider reports whether tag names a known provider.
func IsValidProvider(tag string) bool {
	return providers[strings.ToLower(tag)]
}

// RequiresCredential reports whether the tagged provider is unusable without
// an API key.
func RequiresCredential(tag string) bool {
	switch strings.ToLower(tag) {
	case ProviderYandex, ProviderBing:
		return true
	default:
		return false
	}
}

// ProviderDisplayName returns a human-readable provider name for logs.
func ProviderDisplayName(tag string) string {
	if name, ok := displayNames[strings.ToLower(tag)]; ok {
		return name
	}
	return tag
}
