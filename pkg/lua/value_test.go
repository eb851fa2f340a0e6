package lua

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		cell string
		pos  int
		want string
	}{
		{"first field is always a string", "123", 1, "[=[123]=]"},
		{"plain text", "hello", 2, "[=[hello]=]"},
		{"true", "true", 2, "true"},
		{"false", "false", 2, "false"},
		{"uppercase boolean stays a string", "TRUE", 2, "[=[TRUE]=]"},
		{"integer", "42", 2, "42"},
		{"negative integer", "-7", 2, "-7"},
		{"explicit plus stays a string", "+5", 2, "[=[+5]=]"},
		{"decimal", "3.14", 3, "3.14"},
		{"trailing zeros dropped", "2.50", 2, "2.5"},
		{"zero fraction dropped", "3.000", 2, "3"},
		{"negative decimal", "-0.250", 2, "-0.25"},
		{"wide decimal kept exact", "12345678901234567890.10", 2, "12345678901234567890.1"},
		{"bare dot stays a string", ".5", 2, "[=[.5]=]"},
		{"dotted version stays a string", "1.2.3", 2, "[=[1.2.3]=]"},
		{"exponent stays a string", "1e5", 2, "[=[1e5]=]"},
		{"empty cell", "", 2, "[=[]=]"},
		{"embedded quotes survive", `say "hi"`, 2, `[=[say "hi"]=]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.cell, tt.pos))
		})
	}
}
