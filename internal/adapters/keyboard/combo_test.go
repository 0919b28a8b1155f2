package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCombo(t *testing.T) {
	c, err := ParseCombo("ctrl+shift+q")
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl", "shift"}, c.Modifiers)
	assert.Equal(t, "q", c.Key)
}

func TestParseComboNormalizesAliases(t *testing.T) {
	c, err := ParseCombo("Command+Option+G")
	require.NoError(t, err)
	assert.Equal(t, []string{"cmd", "alt"}, c.Modifiers)
	assert.Equal(t, "g", c.Key)

	c, err = ParseCombo("control+t")
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl"}, c.Modifiers)
}

func TestParseComboTrimsWhitespace(t *testing.T) {
	c, err := ParseCombo(" ctrl + shift + q ")
	require.NoError(t, err)
	assert.Equal(t, []string{"ctrl", "shift"}, c.Modifiers)
	assert.Equal(t, "q", c.Key)
}

func TestParseComboRejectsBareKey(t *testing.T) {
	_, err := ParseCombo("q")
	assert.Error(t, err)
}

func TestParseComboRejectsUnknownModifier(t *testing.T) {
	_, err := ParseCombo("hyper+q")
	assert.Error(t, err)
}

func TestParseComboRejectsEmptyKey(t *testing.T) {
	_, err := ParseCombo("ctrl+")
	assert.Error(t, err)
}
