package illustrator

import "context"

// Illustrator defines the interface for per-sentence image generation
type Illustrator interface {
	// Illustrate generates one image for the sentence, downloads it and
	// writes it to destDir as image_<index>.png. The index preserves
	// sentence order. An error means this sentence produced no image;
	// callers decide whether that aborts the run.
	Illustrate(ctx context.Context, sentence string, style Style, index int, destDir string) (string, error)
}
