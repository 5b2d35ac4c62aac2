package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_State(t *testing.T) {
	deletedAt := time.Now()

	tests := []struct {
		name     string
		terminal Terminal
		want     TerminalState
	}{
		{"active", Terminal{IsActive: true}, TerminalStateActive},
		{"inactive", Terminal{IsActive: false}, TerminalStateInactive},
		{"archived", Terminal{DeletedAt: &deletedAt}, TerminalStateArchived},
		{"archived wins over active flag", Terminal{IsActive: true, DeletedAt: &deletedAt}, TerminalStateArchived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.terminal.State())
		})
	}
}
