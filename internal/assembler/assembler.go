package assembler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// ErrNoImages is returned when Assemble is invoked with an empty image
// list. The caller must treat this as a precondition violation; no
// encoding is attempted.
var ErrNoImages = errors.New("no images to assemble")

// Assemble builds the final video:
//
//  1. probe the audio duration D and give each image D/n seconds
//  2. encode one faded segment per image onto a common canvas
//  3. concatenate the segments into a silent track (stream copy)
//  4. mux the original audio in as the sole audio stream
//
// Every image gets the fade-in, including segments after the first; the
// flash on each transition matches the product's established look.
// Segment files live in a scratch dir removed on all paths.
func (a *implAssembler) Assemble(ctx context.Context, imagePaths []string, audioPath, outputPath string) error {
	if len(imagePaths) == 0 {
		return ErrNoImages
	}

	duration, err := a.probeDuration(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("probe audio duration: %w", err)
	}

	perImage := duration / float64(len(imagePaths))
	a.logger.Info(ctx, "Assembling %d images over %.2fs (%.2fs each)", len(imagePaths), duration, perImage)

	tmpDir, err := os.MkdirTemp("", "assemble-*")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	segments := make([]string, 0, len(imagePaths))
	for idx, imagePath := range imagePaths {
		segmentPath := filepath.Join(tmpDir, fmt.Sprintf("segment_%d.mp4", idx))
		args := a.buildSegmentArgs(imagePath, segmentPath, perImage)

		if _, err := a.executor.Execute(ctx, "ffmpeg", args...); err != nil {
			return fmt.Errorf("encode segment %d: %w", idx, err)
		}
		segments = append(segments, segmentPath)
	}

	listPath := filepath.Join(tmpDir, "inputs.txt")
	if err := writeConcatList(listPath, segments); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}

	silentPath := filepath.Join(tmpDir, "silent.mp4")
	concatArgs := []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		silentPath,
	}
	if _, err := a.executor.Execute(ctx, "ffmpeg", concatArgs...); err != nil {
		return fmt.Errorf("concatenate segments: %w", err)
	}

	muxArgs := []string{
		"-y",
		"-i", silentPath,
		"-i", audioPath,
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-c:v", "copy",
		"-c:a", a.cfg.AudioCodec,
		outputPath,
	}
	if _, err := a.executor.Execute(ctx, "ffmpeg", muxArgs...); err != nil {
		return fmt.Errorf("mux audio: %w", err)
	}

	a.logger.Info(ctx, "Video assembled: %s", outputPath)
	return nil
}

// buildSegmentArgs encodes one still image as a video segment of the
// given duration. Images of any dimensions are scaled down to fit and
// padded onto a white canvas so segments concatenate cleanly.
func (a *implAssembler) buildSegmentArgs(imagePath, segmentPath string, duration float64) []string {
	filter := fmt.Sprintf(
		"scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2:color=white,fade=t=in:st=0:d=%.2f,format=yuv420p",
		a.cfg.Width, a.cfg.Height,
		a.cfg.Width, a.cfg.Height,
		a.cfg.FadeDuration,
	)

	return []string{
		"-y",
		"-loop", "1",
		"-i", imagePath,
		"-t", fmt.Sprintf("%.3f", duration),
		"-vf", filter,
		"-r", strconv.Itoa(a.cfg.FPS),
		"-c:v", a.cfg.Encoder,
		"-preset", a.cfg.Preset,
		segmentPath,
	}
}

// writeConcatList writes the concat demuxer input file, one absolute
// segment path per line.
func writeConcatList(listPath string, segments []string) error {
	f, err := os.Create(listPath)
	if err != nil {
		return err
	}

	for _, segment := range segments {
		absPath, err := filepath.Abs(segment)
		if err != nil {
			f.Close()
			return err
		}
		if _, err := fmt.Fprintf(f, "file '%s'\n", absPath); err != nil {
			f.Close()
			return err
		}
	}

	return f.Close()
}
