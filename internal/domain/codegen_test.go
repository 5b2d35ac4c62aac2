package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"two words", "Main Gate", "main-gate"},
		{"collapses whitespace", "  Main \t  Gate  ", "main-gate"},
		{"truncates to ten", "North Entrance Hall", "north-entr"},
		{"trims trailing hyphen after truncation", "Backstage Door", "backstage"},
		{"drops punctuation", "Gate #1!", "gate-1"},
		{"empty", "   ", ""},
		{"merges hyphen with spaces", "A - B", "a-b"},
		{"collapses hyphen runs", "vip--lounge", "vip-lounge"},
		{"drops leading hyphen", "-side", "side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestGenerateTerminalCode_Format(t *testing.T) {
	code, err := GenerateTerminalCode("Main Gate")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^main-gate_[a-z0-9]{5}$`), code)
}

func TestGenerateTerminalCode_EmptyName(t *testing.T) {
	code, err := GenerateTerminalCode("!!!")

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^terminal_[a-z0-9]{5}$`), code)
}

func TestGenerateEventCode_Format(t *testing.T) {
	code, err := GenerateEventCode()

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[A-Z0-9]{8}$`), code)
}

func TestGenerateInvitationCode_Format(t *testing.T) {
	code, err := GenerateInvitationCode()

	require.NoError(t, err)
	assert.Len(t, code, 10)
}
