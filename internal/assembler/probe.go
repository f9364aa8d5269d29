package assembler

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ffprobeOutput captures the format.duration field of ffprobe's JSON
// output; nothing else is needed here.
type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probeDuration returns the audio file's duration in seconds via ffprobe.
func (a *implAssembler) probeDuration(ctx context.Context, path string) (float64, error) {
	out, err := a.executor.Execute(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	var probe ffprobeOutput
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("parse ffprobe output: %w", err)
	}

	if probe.Format.Duration == "" {
		return 0, fmt.Errorf("ffprobe returned no duration for %s", path)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", probe.Format.Duration, err)
	}

	return duration, nil
}
