package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
)

func TestCheckAcceptsNormalTranslation(t *testing.T) {
	res := Check("hello", "bonjour")
	assert.True(t, res.Succeeded)
	assert.Equal(t, "bonjour", res.Text)
}

func TestCheckRepairsDoubledTranslation(t *testing.T) {
	res := Check("hello", "bonjourbonjour")
	assert.True(t, res.Succeeded)
	assert.Equal(t, "bonjour", res.Text)
}

func TestCheckKeepsLongerNonDoubledTranslation(t *testing.T) {
	// Longer than twice the input but not an exact half duplicate.
	res := Check("hi", "bonjourworld")
	assert.True(t, res.Succeeded)
	assert.Equal(t, "bonjourworld", res.Text)
}

func TestCheckRejectsUnchangedResult(t *testing.T) {
	res := Check("hello", "hello")
	assert.False(t, res.Succeeded)
	assert.Equal(t, domain.ReasonNoChange, res.Reason)
	assert.Equal(t, "hello", res.Text)
}

func TestCheckRejectsCaseOnlyChange(t *testing.T) {
	res := Check("hello", "HELLO")
	assert.False(t, res.Succeeded)
	assert.Equal(t, domain.ReasonNoChange, res.Reason)
}

func TestCheckRejectsEmptyResult(t *testing.T) {
	res := Check("hello", "   ")
	assert.False(t, res.Succeeded)
	assert.Equal(t, domain.ReasonNoChange, res.Reason)
	assert.Equal(t, "hello", res.Text)
}

func TestCheckRejectsDoubledEcho(t *testing.T) {
	// A doubled copy of the input itself repairs to a no-op.
	res := Check("hello", "hellohello")
	assert.False(t, res.Succeeded)
	assert.Equal(t, domain.ReasonDoubled, res.Reason)
	assert.Equal(t, "hello", res.Text)
}

func TestCheckIgnoresSurroundingWhitespace(t *testing.T) {
	res := Check("  hello  ", "\tbonjour\n")
	assert.True(t, res.Succeeded)
	assert.Equal(t, "bonjour", res.Text)
}

func TestRepairDoubledRequiresExactHalves(t *testing.T) {
	_, ok := repairDoubled("hi", "bonjourbonsoir")
	assert.False(t, ok)

	repaired, ok := repairDoubled("hi", "שלוםשלום")
	assert.True(t, ok)
	assert.Equal(t, "שלום", repaired)
}

func TestRepairDoubledSkipsShortResults(t *testing.T) {
	// Shorter than twice the input, even if it happens to be a duplicate.
	_, ok := repairDoubled("a very long original sentence", "abab")
	assert.False(t, ok)
}
