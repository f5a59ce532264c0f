package pipeline

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"
)

// progressInterval is how often the reporter polls the completion counter.
const progressInterval = time.Second

// Progress renders a transient "processed/total (NN%)" line to w once per
// second until every file is accounted for. Purely observational: it reads
// the counter with atomic loads and never blocks a worker. Returns when the
// counter reaches total.
func Progress(w io.Writer, total int, completed *atomic.Int64) {
	if total <= 0 {
		return
	}

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		done := completed.Load()
		if done > int64(total) {
			done = int64(total)
		}
		fmt.Fprintf(w, "\r%d/%d (%d%%)", done, total, done*100/int64(total))
		if done >= int64(total) {
			fmt.Fprintln(w)
			return
		}
		<-ticker.C
	}
}
