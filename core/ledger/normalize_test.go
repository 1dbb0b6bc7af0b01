package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Lowercase", "abc-1", "ABC-1"},
		{"AlreadyNormalized", "ABC-1", "ABC-1"},
		{"MixedCase", "AbC-1", "ABC-1"},
		{"LeadingWhitespace", "  abc-1", "ABC-1"},
		{"TrailingWhitespace", "abc-1\t", "ABC-1"},
		{"WhitespaceOnly", "   ", ""},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.raw))
		})
	}
}

// TestNormalizeKey_Idempotent verifies NormalizeKey(NormalizeKey(x)) == NormalizeKey(x).
func TestNormalizeKey_Idempotent(t *testing.T) {
	inputs := []string{"abc-1", "  ABC-1 ", "x", "", "  mIxEd  "}
	for _, raw := range inputs {
		once := NormalizeKey(raw)
		assert.Equal(t, once, NormalizeKey(once))
	}
}

func TestTrimKey(t *testing.T) {
	assert.Equal(t, "abc-1", TrimKey("  abc-1 "))
	assert.Equal(t, "AbC-1", TrimKey("AbC-1"))
}
