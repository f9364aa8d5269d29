package refiner

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const refinePrompt = `You turn a narration sentence into a scene description for a whiteboard illustration.

Rules:
- Describe ONE concrete, drawable scene capturing the sentence's idea
- Prefer objects, people and actions over abstract wording
- Reply with a single sentence, no preamble, no quotes

Narration sentence:
---
%s
---`

// Refine sends the sentence to Gemini and returns the scene description.
// Rotates API keys on 429 / quota errors.
func (r *implRefiner) Refine(ctx context.Context, sentence string) (string, error) {
	prompt := fmt.Sprintf(refinePrompt, sentence)

	attempts := len(r.apiKeys)
	var lastErr error

	for range attempts {
		key := r.nextKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			r.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				r.logger.Warn(ctx, "Gemini key rate limited, rotating...")
				r.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if text = strings.TrimSpace(text); text != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (r *implRefiner) nextKey() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apiKeys[r.currentKey]
}

func (r *implRefiner) rotateKey() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.currentKey = (r.currentKey + 1) % len(r.apiKeys)
}
