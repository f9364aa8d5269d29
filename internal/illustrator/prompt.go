package illustrator

import (
	"fmt"
)

// Style selects one of the supported illustration directives appended to
// every generation prompt.
type Style string

const (
	StyleSimple   Style = "simple"
	StyleCartoon  Style = "cartoon"
	StyleDetailed Style = "detailed"
)

// basePrompt pins every generated image to the whiteboard scribing look:
// black line drawings on a fully white background, framed as if drawn in
// real time.
const basePrompt = "Create an illustration in the style of whiteboard animation (video scribing), " +
	"minimalist, with simple black line drawings on a fully white background. " +
	"The image should be clean and clear, as if it were being drawn in real time. " +
	"Illustrate the following concept or scene: "

var styleDirectives = map[Style]string{
	StyleSimple:   "Keep the drawing style as simple as possible.",
	StyleCartoon:  "Use a friendly and expressive cartoon drawing style.",
	StyleDetailed: "Add a bit more detail and light shading, while keeping the whiteboard look.",
}

// ParseStyle validates a user-supplied style name.
func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if _, ok := styleDirectives[style]; !ok {
		return "", fmt.Errorf("unknown style %q (valid: simple, cartoon, detailed)", s)
	}
	return style, nil
}

// BuildPrompt combines the whiteboard preamble, the quoted sentence and
// the chosen style directive into the full generation prompt.
func BuildPrompt(sentence string, style Style) string {
	return fmt.Sprintf("%s'%s'. %s", basePrompt, sentence, styleDirectives[style])
}
