package illustrator

import (
	"strings"
	"testing"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Style
		wantErr bool
	}{
		{"simple", "simple", StyleSimple, false},
		{"cartoon", "cartoon", StyleCartoon, false},
		{"detailed", "detailed", StyleDetailed, false},
		{"unknown", "photorealistic", "", true},
		{"empty", "", "", true},
		{"case sensitive", "Simple", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	sentence := "A rocket launches into space"
	prompt := BuildPrompt(sentence, StyleCartoon)

	if !strings.HasPrefix(prompt, basePrompt) {
		t.Errorf("prompt does not start with the whiteboard preamble: %q", prompt)
	}
	if !strings.Contains(prompt, "'"+sentence+"'") {
		t.Errorf("prompt does not contain the quoted sentence: %q", prompt)
	}
	if !strings.HasSuffix(prompt, styleDirectives[StyleCartoon]) {
		t.Errorf("prompt does not end with the style directive: %q", prompt)
	}
}

func TestBuildPromptDirectivesDiffer(t *testing.T) {
	sentence := "A tree grows"
	seen := map[string]Style{}
	for _, style := range []Style{StyleSimple, StyleCartoon, StyleDetailed} {
		p := BuildPrompt(sentence, style)
		if prev, dup := seen[p]; dup {
			t.Errorf("styles %v and %v produce the same prompt", prev, style)
		}
		seen[p] = style
	}
}
