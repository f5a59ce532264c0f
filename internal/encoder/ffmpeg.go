package encoder

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
)

// stderrTailLines caps how much encoder output is kept as failure detail.
const stderrTailLines = 10

// FFmpeg invokes the external ffmpeg binary, one synchronous process per
// request. Encoding is the blocking, CPU-bound operation; the worker pool
// owns parallelism, so each invocation gets a single encoder thread.
type FFmpeg struct {
	Binary string
}

// NewFFmpeg returns an FFmpeg resolving the binary from PATH.
func NewFFmpeg() *FFmpeg {
	return &FFmpeg{Binary: "ffmpeg"}
}

// Encode runs one ffmpeg invocation. A non-zero exit becomes a failed
// Result carrying the tail of stderr; it never aborts the run.
func (f *FFmpeg) Encode(ctx context.Context, req Request) Result {
	args, err := BuildArgs(req)
	if err != nil {
		return failure(req, err.Error())
	}

	cmd := exec.CommandContext(ctx, f.Binary, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := stderrTail(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return failure(req, detail)
	}

	return Result{Source: req.Source, Dest: req.Dest, Success: true}
}

// BuildArgs assembles the ffmpeg argument list for a request: VBR MP3 at the
// requested quality, metadata passed through from the source, stream silence
// trimming when a filter chain applies.
func BuildArgs(req Request) ([]string, error) {
	filterSpec, err := BuildFilterSpec(req.Mode, req.Threshold)
	if err != nil {
		return nil, err
	}

	args := []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-y",
		"-i", req.Source,
	}
	if filterSpec != "" {
		args = append(args, "-af", filterSpec)
	}
	args = append(args,
		"-map_metadata", "0",
		"-codec:a", "libmp3lame",
		"-qscale:a", strconv.Itoa(req.Quality),
		"-threads", "1",
		req.Dest,
	)
	return args, nil
}

// stderrTail returns the last few lines of encoder output, trimmed.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, "\n")
}
