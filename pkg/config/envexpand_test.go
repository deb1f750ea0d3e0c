package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("RECAP_TEST_HOST", "db.example.com")
	t.Setenv("RECAP_TEST_PORT", "5432")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "expands single variable",
			input: "host: {{.RECAP_TEST_HOST}}",
			want:  "host: db.example.com",
		},
		{
			name:  "expands multiple variables",
			input: "addr: {{.RECAP_TEST_HOST}}:{{.RECAP_TEST_PORT}}",
			want:  "addr: db.example.com:5432",
		},
		{
			name:  "missing variable expands to empty",
			input: "token: {{.RECAP_TEST_DOES_NOT_EXIST}}",
			want:  "token: ",
		},
		{
			name:  "dollar signs untouched",
			input: `pattern: "^secret.*$"`,
			want:  `pattern: "^secret.*$"`,
		},
		{
			name:  "no template syntax passes through",
			input: "plain: value",
			want:  "plain: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
