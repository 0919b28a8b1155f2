package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, cfg.Provider)
	assert.Equal(t, "hebrew", cfg.SourceLanguage)
	assert.Equal(t, "english", cfg.TargetLanguage)
	assert.True(t, cfg.ClearClipboardAfterPaste)
	assert.NotEmpty(t, cfg.Hotkey)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"hotkey": "ctrl+alt+t",
		"source_language": "russian",
		"target_language": "english",
		"translation_provider": "mymemory",
		"clear_clipboard_after_paste": false
	}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ctrl+alt+t", cfg.Hotkey)
	assert.Equal(t, "russian", cfg.SourceLanguage)
	assert.Equal(t, ProviderMyMemory, cfg.Provider)
	assert.False(t, cfg.ClearClipboardAfterPaste)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `{"translation_provider": "openrouter"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenRouter, cfg.Provider)
	assert.Equal(t, "hebrew", cfg.SourceLanguage)
	assert.True(t, cfg.ClearClipboardAfterPaste)
	assert.Equal(t, DefaultModel, cfg.Model)
}

func TestLoadUnknownProviderFallsBack(t *testing.T) {
	path := writeConfig(t, `{"translation_provider": "babelfish"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultProvider, cfg.Provider)
}

func TestLoadNormalizesProviderCase(t *testing.T) {
	path := writeConfig(t, `{"translation_provider": " Google "}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, cfg.Provider)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"hotkey": `)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Hotkey = "  "
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.TargetLanguage = ""
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SourceLanguage = "English"
	cfg.TargetLanguage = "english"
	assert.Error(t, cfg.Validate())
}

func TestCredentialPrefersConfigValue(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")
	cfg := Default()
	cfg.APIKey = "from-config"
	assert.Equal(t, "from-config", cfg.Credential())
}

func TestCredentialFallsBackToEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "from-env")
	cfg := Default()
	assert.Equal(t, "from-env", cfg.Credential())
}

func TestCredentialEmptyWithoutKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	cfg := Default()
	assert.Empty(t, cfg.Credential())
}

func TestIsValidProvider(t *testing.T) {
	assert.True(t, IsValidProvider("google"))
	assert.True(t, IsValidProvider("OpenRouter"))
	assert.False(t, IsValidProvider("babelfish"))
}

func TestRequiresCredential(t *testing.T) {
	assert.True(t, RequiresCredential(ProviderYandex))
	assert.True(t, RequiresCredential(ProviderBing))
	assert.False(t, RequiresCredential(ProviderGoogle))
	assert.False(t, RequiresCredential(ProviderOpenRouter))
}

func TestProviderDisplayName(t *testing.T) {
	assert.Equal(t, "Google Translate", ProviderDisplayName("google"))
	assert.Equal(t, "babelfish", ProviderDisplayName("babelfish"))
}
