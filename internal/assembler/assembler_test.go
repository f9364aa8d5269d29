package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/config"
	"github.com/embuscadamelhoria-bot/animador-de-audio-ia/internal/logger"
)

// fakeExecutor records every command and serves canned ffprobe output.
type fakeExecutor struct {
	calls         [][]string
	probeDuration string
	failOn        string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	call := append([]string{name}, args...)
	f.calls = append(f.calls, call)

	if f.failOn != "" && strings.Contains(strings.Join(call, " "), f.failOn) {
		return "", errors.New("boom")
	}
	if name == "ffprobe" {
		return fmt.Sprintf(`{"format":{"duration":%q}}`, f.probeDuration), nil
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func testConfig() config.VideoConfig {
	cfg := config.Config{
		OpenAI: config.OpenAIConfig{APIKey: "sk-test"},
		Paths:  config.PathsConfig{Output: "out"},
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg.Video
}

func TestAssembleNoImages(t *testing.T) {
	exec := &fakeExecutor{probeDuration: "10.0"}
	a := New(testConfig(), exec, logger.New("error"))

	err := a.Assemble(context.Background(), nil, "audio.mp3", "out.mp4")
	if !errors.Is(err, ErrNoImages) {
		t.Fatalf("Assemble() error = %v, want ErrNoImages", err)
	}
	if len(exec.calls) != 0 {
		t.Errorf("Assemble() invoked %d commands before failing, want 0", len(exec.calls))
	}
}

func TestAssembleTwoImages(t *testing.T) {
	exec := &fakeExecutor{probeDuration: "10.000000"}
	a := New(testConfig(), exec, logger.New("error"))

	images := []string{"image_0.png", "image_1.png"}
	if err := a.Assemble(context.Background(), images, "audio.mp3", "out.mp4"); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	// probe + 2 segments + concat + mux
	if len(exec.calls) != 5 {
		t.Fatalf("Assemble() invoked %d commands, want 5", len(exec.calls))
	}

	if exec.calls[0][0] != "ffprobe" {
		t.Errorf("first command = %v, want ffprobe", exec.calls[0][0])
	}

	// Each of the two segments holds its image for exactly D/n = 5s.
	for i := 1; i <= 2; i++ {
		call := strings.Join(exec.calls[i], " ")
		if !strings.Contains(call, images[i-1]) {
			t.Errorf("segment %d command does not reference %s: %s", i-1, images[i-1], call)
		}
		if !strings.Contains(call, "-t 5.000") {
			t.Errorf("segment %d duration not 5.000s: %s", i-1, call)
		}
		if !strings.Contains(call, "fade=t=in:st=0:d=0.50") {
			t.Errorf("segment %d missing fade-in: %s", i-1, call)
		}
		if !strings.Contains(call, "pad=1024:1024") {
			t.Errorf("segment %d missing canvas pad: %s", i-1, call)
		}
	}

	concat := strings.Join(exec.calls[3], " ")
	if !strings.Contains(concat, "-f concat") || !strings.Contains(concat, "-c copy") {
		t.Errorf("concat command malformed: %s", concat)
	}

	mux := strings.Join(exec.calls[4], " ")
	if !strings.Contains(mux, "audio.mp3") || !strings.Contains(mux, "out.mp4") {
		t.Errorf("mux command malformed: %s", mux)
	}
	if !strings.Contains(mux, "-c:a aac") {
		t.Errorf("mux command missing audio codec: %s", mux)
	}
}

func TestAssembleSegmentOrder(t *testing.T) {
	exec := &fakeExecutor{probeDuration: "9.0"}
	a := New(testConfig(), exec, logger.New("error"))

	images := []string{"image_0.png", "image_1.png", "image_2.png"}
	if err := a.Assemble(context.Background(), images, "audio.wav", "out.mp4"); err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	for i, img := range images {
		call := strings.Join(exec.calls[i+1], " ")
		if !strings.Contains(call, img) {
			t.Errorf("segment call %d = %s, want image %s", i, call, img)
		}
	}
}

func TestAssembleEncodeFailure(t *testing.T) {
	exec := &fakeExecutor{probeDuration: "10.0", failOn: "segment_0"}
	a := New(testConfig(), exec, logger.New("error"))

	err := a.Assemble(context.Background(), []string{"image_0.png"}, "audio.mp3", "out.mp4")
	if err == nil {
		t.Fatal("Assemble() expected error when segment encoding fails")
	}
}

func TestProbeDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration string
		want     float64
		wantErr  bool
	}{
		{"whole seconds", "10.000000", 10, false},
		{"fractional", "7.432000", 7.432, false},
		{"missing", "", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &fakeExecutor{probeDuration: tt.duration}
			a := New(testConfig(), exec, logger.New("error")).(*implAssembler)

			got, err := a.probeDuration(context.Background(), "audio.mp3")
			if (err != nil) != tt.wantErr {
				t.Fatalf("probeDuration() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("probeDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}
