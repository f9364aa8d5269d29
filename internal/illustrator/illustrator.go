package illustrator

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	openai "github.com/sashabaranov/go-openai"
)

// Illustrate requests one square image for the sentence and persists it
// into destDir under a deterministic, order-preserving filename.
func (i *implIllustrator) Illustrate(ctx context.Context, sentence string, style Style, index int, destDir string) (string, error) {
	prompt := BuildPrompt(sentence, style)

	i.logger.Debug(ctx, "Generating image %d: %.60s...", index, prompt)

	resp, err := i.client.CreateImage(ctx, openai.ImageRequest{
		Model:   i.cfg.ImageModel,
		Prompt:  prompt,
		Size:    i.cfg.ImageSize,
		Quality: i.cfg.ImageQuality,
		N:       1,
	})
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("image service returned no download URL")
	}

	imagePath := filepath.Join(destDir, fmt.Sprintf("image_%d.png", index))
	if err := i.download(ctx, resp.Data[0].URL, imagePath); err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}

	i.logger.Info(ctx, "Image %d saved: %s", index, imagePath)
	return imagePath, nil
}

// download fetches the temporary image URL and writes it to path.
func (i *implIllustrator) download(ctx context.Context, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	return f.Close()
}
