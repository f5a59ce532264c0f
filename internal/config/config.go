// Package config holds runtime configuration: defaults, typed fields for the
// CLI flags, and validation run once at startup.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
)

// SilenceMode selects which ends of a file get silence-trimmed.
type SilenceMode string

const (
	SilenceNone  SilenceMode = "none"  // No trimming (default).
	SilenceStart SilenceMode = "start" // Trim leading silence only.
	SilenceEnd   SilenceMode = "end"   // Trim trailing silence only.
	SilenceBoth  SilenceMode = "both"  // Trim both ends ("all" is accepted as an alias).
)

// ErrFFmpegNotFound is returned by CheckEncoder when ffmpeg is not on PATH.
var ErrFFmpegNotFound = errors.New("ffmpeg not found on PATH")

// Quality is a single VBR digit. The flag value is kept as a string and
// matched against this pattern so that "10", "2.5" and "abc" are all
// rejected the same way.
var qualityPattern = regexp.MustCompile(`^[0-9]$`)

// thresholdPattern matches a signed decimal with a dB suffix, e.g. "-45dB".
var thresholdPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?dB$`)

// Config holds all runtime settings. Populated from CLI flags in main and
// validated once before any file is touched.
type Config struct {
	InputRoot  string
	OutputRoot string

	Quality          string      // Single digit "0".."9". Default "2".
	SilenceThreshold string      // Signed decibel value with unit. Default "-45dB".
	SilenceMode      SilenceMode // Default SilenceNone.

	Parallelism int // Worker count. Default: detected CPU count.
	Verbose     bool
}

// Default returns a Config with every optional field at its default.
func Default() *Config {
	return &Config{
		Quality:          "2",
		SilenceThreshold: "-45dB",
		SilenceMode:      SilenceNone,
		Parallelism:      runtime.NumCPU(),
	}
}

// ParseSilenceMode maps a flag value onto a SilenceMode. "all" is kept as a
// legacy alias for "both" so only one spelling exists downstream.
func ParseSilenceMode(s string) (SilenceMode, error) {
	switch s {
	case "none":
		return SilenceNone, nil
	case "start":
		return SilenceStart, nil
	case "end":
		return SilenceEnd, nil
	case "both", "all":
		return SilenceBoth, nil
	default:
		return "", fmt.Errorf("unknown silence mode %q (want none, start, end, both or all)", s)
	}
}

// QualityLevel returns the numeric quality. Only valid after Validate.
func (c *Config) QualityLevel() int {
	return int(c.Quality[0] - '0')
}

// Validate checks every field and returns the first problem found.
// A non-nil error here is fatal for the whole run.
func (c *Config) Validate() error {
	if c.InputRoot == "" {
		return errors.New("input directory is required")
	}
	if c.OutputRoot == "" {
		return errors.New("output directory is required")
	}

	fi, err := os.Stat(c.InputRoot)
	if err != nil {
		return fmt.Errorf("input directory %s: %w", c.InputRoot, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("input path %s is not a directory", c.InputRoot)
	}

	if samePath(c.InputRoot, c.OutputRoot) {
		return errors.New("input and output directories must differ")
	}

	if !qualityPattern.MatchString(c.Quality) {
		return fmt.Errorf("quality %q must be a single digit 0-9", c.Quality)
	}
	if !thresholdPattern.MatchString(c.SilenceThreshold) {
		return fmt.Errorf("silence threshold %q must look like -45dB", c.SilenceThreshold)
	}
	if _, err := ParseSilenceMode(string(c.SilenceMode)); err != nil {
		return err
	}
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism %d must be at least 1", c.Parallelism)
	}
	return nil
}

// CheckEncoder verifies that the external encoder binary is available.
func (c *Config) CheckEncoder() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFFmpegNotFound
	}
	return nil
}

// samePath reports whether two paths refer to the same directory, comparing
// absolute cleaned forms so "out" and "./out/" collide as expected.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
