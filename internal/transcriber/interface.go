package transcriber

import "context"

// Transcriber defines the interface for speech-to-text conversion
type Transcriber interface {
	// Transcribe sends the whole audio file to the transcription service
	// and returns the recognized text verbatim.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
