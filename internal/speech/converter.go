package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// FFmpegConverter - OGG/Opus из телеграма в 16kHz mono WAV для whisper
type FFmpegConverter struct {
	bin string
}

func NewFFmpegConverter(bin string) *FFmpegConverter {
	return &FFmpegConverter{bin: bin}
}

func (c *FFmpegConverter) ToWAV(ctx context.Context, ogg []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.bin,
		"-hide_banner", "-loglevel", "error",
		"-i", "pipe:0",
		"-ar", "16000",
		"-ac", "1",
		"-f", "wav",
		"pipe:1",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdin = bytes.NewReader(ogg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg: empty output")
	}
	return stdout.Bytes(), nil
}
