package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"no tokens", "plain text", []string{}},
		{"single token", "Hello {{APP_NAME}}!", []string{"APP_NAME"}},
		{"duplicates collapse", "{{A}} {{B}} {{A}}", []string{"A", "B"}},
		{"adjacent tokens", "{{A}}{{B}}", []string{"A", "B"}},
		{"digits and underscores", "{{APP_1}} {{_x_}}", []string{"APP_1", "_x_"}},
		{"single braces ignored", "{APP_NAME} and {{APP_NAME}", []string{}},
		{"spaces are not tokens", "{{ APP_NAME }}", []string{}},
		{"dashes are not tokens", "{{APP-NAME}}", []string{}},
		{"empty name", "{{}}", []string{}},
		{"nested braces take the inner token", "{{{APP_NAME}}}", []string{"APP_NAME"}},
		{"token across lines is not a token", "{{APP_\nNAME}}", []string{}},
		{"multiline text", "a={{APP_A}}\nb={{APP_B}}\n", []string{"APP_A", "APP_B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			assert.Equal(t, tt.want, got.Sorted())
		})
	}
}

func TestUnknown(t *testing.T) {
	set := Extract("{{APP_NAME}} and {{UNKNOWN}} and {{OTHER}}")
	known := map[string]bool{"APP_NAME": true}

	unknown := Unknown(set, func(name string) bool { return known[name] })

	assert.Equal(t, []string{"OTHER", "UNKNOWN"}, unknown.Sorted())
	assert.Equal(t, "OTHER, UNKNOWN", unknown.String())
	assert.True(t, unknown.Has("OTHER"))
	assert.False(t, unknown.Has("APP_NAME"))
}

func TestUnknown_AllKnown(t *testing.T) {
	set := Extract("{{A}}")
	unknown := Unknown(set, func(string) bool { return true })
	assert.Equal(t, 0, unknown.Len())
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "{{APP_NAME}}", Placeholder("APP_NAME"))
}
