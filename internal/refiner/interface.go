package refiner

import "context"

// Refiner rewrites a transcript sentence into a concrete, drawable scene
// description before it is handed to the image model. Implementations are
// best-effort: callers fall back to the raw sentence on error.
type Refiner interface {
	Refine(ctx context.Context, sentence string) (string, error)
}
