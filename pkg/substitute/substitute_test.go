package substitute

import (
	"strings"
	"testing"

	"github.com/arthur-debert/envfill/pkg/tokens"
	"github.com/arthur-debert/envfill/pkg/variables"
	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	mapping := variables.FromMap(map[string]string{
		"APP_NAME":  "World",
		"APP_PORT":  "8080",
		"APP_EMPTY": "",
		"APP_NEST":  "{{APP_NAME}}",
	})

	tests := []struct {
		name      string
		text      string
		want      string
		wantCount int
	}{
		{"hello world", "Hello {{APP_NAME}}!", "Hello World!", 1},
		{"all occurrences", "{{APP_NAME}} {{APP_NAME}}\n{{APP_NAME}}", "World World\nWorld", 1},
		{"several names", "{{APP_NAME}}:{{APP_PORT}}", "World:8080", 2},
		{"no tokens is a no-op", "plain {text}", "plain {text}", 0},
		{"unknown tokens stay", "{{APP_NAME}} and {{UNKNOWN}}", "World and {{UNKNOWN}}", 1},
		{"empty value", "x{{APP_EMPTY}}y", "xy", 1},
		{"values are not expanded again", "{{APP_NEST}}", "{{APP_NAME}}", 1},
		{"malformed braces preserved", "{APP_NAME} {{APP_NAME}", "{APP_NAME} {{APP_NAME}", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := Apply(tt.text, tokens.Extract(tt.text), mapping)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestApply_OnlyTouchesNamesInSet(t *testing.T) {
	mapping := variables.FromMap(map[string]string{"APP_A": "a", "APP_B": "b"})
	text := "{{APP_A}} {{APP_B}}"

	got, _ := Apply(text, tokens.Set{"APP_A": {}}, mapping)
	assert.Equal(t, "a {{APP_B}}", got)
}

func TestApply_Idempotent(t *testing.T) {
	mapping := variables.FromMap(map[string]string{"APP_NAME": "World"})
	text := "Hello {{APP_NAME}}! {not a token}"

	once, _ := Apply(text, tokens.Extract(text), mapping)
	twice, count := Apply(once, tokens.Extract(once), mapping)

	assert.Equal(t, once, twice)
	assert.Equal(t, 0, count)
	assert.False(t, strings.Contains(once, "{{APP_NAME}}"))
}

func TestDiff(t *testing.T) {
	assert.Empty(t, Diff("a.txt", "same", "same"))

	out := Diff("a.txt", "Hello {{APP_NAME}}!\n", "Hello World!\n")
	assert.Contains(t, out, "--- a.txt")
	assert.Contains(t, out, "+++ a.txt")
	assert.Contains(t, out, "@@")
	assert.Contains(t, out, "World")
}
