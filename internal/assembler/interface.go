package assembler

import "context"

// Assembler defines the interface for stitching images and audio into the
// final narrated video
type Assembler interface {
	// Assemble encodes the ordered images into a slideshow video whose
	// total length matches the audio track, then muxes the audio in as
	// the sole audio stream. Precondition: at least one image.
	Assemble(ctx context.Context, imagePaths []string, audioPath, outputPath string) error
}
