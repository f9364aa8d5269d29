// Package segmenter splits a transcript into sentence-level concepts.
//
// The split is a punctuation heuristic, not sentence boundary detection:
// acronyms, decimals and abbreviations are not special-cased. Text without
// any terminal punctuation comes back as a single sentence.
package segmenter

import "strings"

var terminators = strings.NewReplacer("!", ".", "?", ".")

// Segment normalizes '!' and '?' to '.', splits on '.', trims each piece
// and drops empties. Order follows appearance in the input.
func Segment(text string) []string {
	parts := strings.Split(terminators.Replace(text), ".")

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
