package encoder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrSameFile rejects a request whose source and destination are the same
// path. The file is skipped, not the run.
var ErrSameFile = errors.New("source and destination are the same file")

// DirCreateError reports a destination directory that could not be created.
type DirCreateError struct {
	Dir string
	Err error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("cannot create output directory %s: %v", e.Dir, e.Err)
}

func (e *DirCreateError) Unwrap() error { return e.Err }

// Invoker runs one encode per file: guards, destination directory, the
// encoder capability, and post-encode size measurement. Every outcome is
// written to the durable log; failures additionally land in the failure log.
type Invoker struct {
	enc       Encoder
	quality   int
	threshold string
	mode      TrimMode
	log       *zap.Logger
}

// NewInvoker builds an Invoker around an encode capability.
func NewInvoker(enc Encoder, quality int, threshold string, mode TrimMode, log *zap.Logger) *Invoker {
	return &Invoker{enc: enc, quality: quality, threshold: threshold, mode: mode, log: log}
}

// Process encodes one file. All failures are soft: they come back as an
// unsuccessful Result and never abort other files.
func (iv *Invoker) Process(ctx context.Context, source, dest string) Result {
	req := Request{
		Source:    source,
		Dest:      dest,
		Quality:   iv.quality,
		Threshold: iv.threshold,
		Mode:      iv.mode,
	}

	if filepath.Clean(source) == filepath.Clean(dest) {
		return iv.fail(failure(req, ErrSameFile.Error()))
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		dirErr := &DirCreateError{Dir: filepath.Dir(dest), Err: err}
		return iv.fail(failure(req, dirErr.Error()))
	}

	res := iv.enc.Encode(ctx, req)
	if !res.Success {
		return iv.fail(res)
	}

	origInfo, err := os.Stat(source)
	if err != nil {
		return iv.fail(failure(req, fmt.Sprintf("cannot stat source: %v", err)))
	}
	destInfo, err := os.Stat(dest)
	if err != nil {
		return iv.fail(failure(req, fmt.Sprintf("cannot stat output: %v", err)))
	}

	res.OriginalBytes = origInfo.Size()
	res.CompressedBytes = destInfo.Size()

	iv.log.Debug("encoded",
		zap.String("source", source),
		zap.String("dest", dest),
		zap.Int64("original_bytes", res.OriginalBytes),
		zap.Int64("compressed_bytes", res.CompressedBytes),
	)
	return res
}

// fail logs a failed result to the error sink and returns it.
func (iv *Invoker) fail(res Result) Result {
	iv.log.Error("encode failed",
		zap.String("source", res.Source),
		zap.String("detail", res.Detail),
	)
	return res
}
