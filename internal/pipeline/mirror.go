package pipeline

import (
	"fmt"
	"path/filepath"
)

// MirrorPath computes the destination for a discovered file: the source's
// path relative to inputRoot, joined onto outputRoot. Directory creation is
// deferred to encode time so a failed mkdir only costs that one file.
func MirrorPath(inputRoot, outputRoot, source string) (string, error) {
	rel, err := filepath.Rel(inputRoot, source)
	if err != nil {
		return "", fmt.Errorf("cannot relativize %s under %s: %w", source, inputRoot, err)
	}
	return filepath.Join(outputRoot, rel), nil
}
