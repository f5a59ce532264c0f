// Package encoder wraps the external ffmpeg binary behind a small capability
// interface: one request per file, VBR MP3 out, optional silence trimming.
package encoder

import "context"

// Request describes one encode invocation.
type Request struct {
	Source    string
	Dest      string
	Quality   int    // libmp3lame VBR level 0-9 (lower is better).
	Threshold string // Silence threshold with unit, e.g. "-45dB".
	Mode      TrimMode
}

// Result is the per-file outcome. Failures never surface as Go errors past
// the worker boundary; they are carried here and logged.
type Result struct {
	Source          string
	Dest            string
	OriginalBytes   int64
	CompressedBytes int64
	Success         bool
	Detail          string // Encoder diagnostics when Success is false.
}

// Encoder is the external encode capability. Tests substitute a fake so no
// binary is invoked.
type Encoder interface {
	Encode(ctx context.Context, req Request) Result
}

// failure builds a failed Result for req with the given detail.
func failure(req Request, detail string) Result {
	return Result{Source: req.Source, Dest: req.Dest, Detail: detail}
}
