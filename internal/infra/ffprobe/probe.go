package ffprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/wky114/media-duplicate-cleaner/internal/domain/entity"
	"go.uber.org/zap"
)

const binary = "ffprobe"

// Available reports whether the ffprobe binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Provider probes video files by running ffprobe once per file. No retries.
type Provider struct {
	timeout time.Duration
	logger  *zap.Logger
}

func NewProvider(timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{timeout: timeout, logger: logger}
}

func (p *Provider) Probe(ctx context.Context, path string) (entity.VideoMetadata, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=duration,r_frame_rate",
		"-of", "json",
		path,
	)

	output, err := cmd.Output()
	if err != nil {
		p.logger.Debug("ffprobe failed", zap.String("path", path), zap.Error(err))
		return entity.VideoMetadata{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}

	meta, err := parseProbeOutput(output)
	if err != nil {
		return entity.VideoMetadata{}, fmt.Errorf("ffprobe %s: %w", path, err)
	}
	return meta, nil
}

func parseProbeOutput(output []byte) (entity.VideoMetadata, error) {
	var doc struct {
		Streams []struct {
			Duration   string `json:"duration"`
			RFrameRate string `json:"r_frame_rate"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(output, &doc); err != nil {
		return entity.VideoMetadata{}, fmt.Errorf("parse output: %w", err)
	}
	if len(doc.Streams) == 0 {
		return entity.VideoMetadata{}, fmt.Errorf("no video stream in output")
	}

	stream := doc.Streams[0]
	if stream.Duration == "" {
		return entity.VideoMetadata{}, fmt.Errorf("stream has no duration")
	}
	duration, err := strconv.ParseFloat(stream.Duration, 64)
	if err != nil {
		return entity.VideoMetadata{}, fmt.Errorf("parse duration %q: %w", stream.Duration, err)
	}

	return entity.VideoMetadata{
		Duration:  duration,
		FrameRate: parseFrameRate(stream.RFrameRate),
	}, nil
}

// parseFrameRate converts ffprobe's "num/denom" fraction to fps. Anything
// malformed, including a zero denominator, yields 0.
func parseFrameRate(s string) float64 {
	num, denom, ok := strings.Cut(s, "/")
	if !ok {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(denom), 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
