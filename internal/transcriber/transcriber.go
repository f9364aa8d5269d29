package transcriber

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Transcribe uploads the audio file whole and returns the transcript text.
// No chunking and no retry: the file is sent as-is and any service error
// is returned to the caller, who must abort the run.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	t.logger.Info(ctx, "Transcribing audio: %s", audioPath)

	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	t.logger.Debug(ctx, "Transcript (%d chars): %.80s...", len(resp.Text), resp.Text)
	return resp.Text, nil
}
