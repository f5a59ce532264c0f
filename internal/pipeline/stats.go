package pipeline

import (
	"fmt"
	"time"

	"github.com/wavefold/shrinktune/internal/encoder"
)

// Summary holds the aggregate outcome of a batch run. Byte totals cover
// successful files only; failures are counted but excluded from sums.
type Summary struct {
	FilesProcessed       int
	Failed               int
	TotalOriginalBytes   int64
	TotalCompressedBytes int64
	Elapsed              time.Duration
}

// Summarize folds per-file results into a Summary. Addition commutes, so the
// totals are identical for any completion order.
func Summarize(results []encoder.Result) Summary {
	var s Summary
	for _, r := range results {
		if !r.Success {
			s.Failed++
			continue
		}
		s.FilesProcessed++
		s.TotalOriginalBytes += r.OriginalBytes
		s.TotalCompressedBytes += r.CompressedBytes
	}
	return s
}

// SpaceSaved returns the byte difference between originals and outputs.
// Negative means the outputs grew.
func (s Summary) SpaceSaved() int64 {
	return s.TotalOriginalBytes - s.TotalCompressedBytes
}

// PercentSaved returns the saving as a percentage of the original total,
// and 0 when nothing was measured.
func (s Summary) PercentSaved() float64 {
	if s.TotalOriginalBytes == 0 {
		return 0
	}
	return float64(s.SpaceSaved()) / float64(s.TotalOriginalBytes) * 100
}

// FormatBytes returns a human-readable size in IEC units with two-decimal
// precision (plain bytes below 1 KiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.2f %s", float64(bytes)/float64(div), suffixes[exp])
}
