package config

import (
	"path/filepath"
	"strings"
	"testing"
)

// validConfig returns a Config that passes Validate, rooted in a temp dir.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := Default()
	cfg.InputRoot = t.TempDir()
	cfg.OutputRoot = filepath.Join(t.TempDir(), "out")
	return cfg
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateQuality(t *testing.T) {
	tests := []struct {
		quality string
		ok      bool
	}{
		{"0", true},
		{"2", true},
		{"9", true},
		{"10", false},
		{"-1", false},
		{"2.5", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.quality, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.Quality = tt.quality
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() with quality %q = %v, want nil", tt.quality, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate() with quality %q = nil, want error", tt.quality)
			}
		})
	}
}

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		threshold string
		ok        bool
	}{
		{"-45dB", true},
		{"-45.5dB", true},
		{"0dB", true},
		{"6dB", true},
		{"-45", false},
		{"-45db", false},
		{"dB", false},
		{"loud", false},
	}

	for _, tt := range tests {
		t.Run(tt.threshold, func(t *testing.T) {
			cfg := validConfig(t)
			cfg.SilenceThreshold = tt.threshold
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() with threshold %q = %v, want nil", tt.threshold, err)
			}
			if !tt.ok && err == nil {
				t.Errorf("Validate() with threshold %q = nil, want error", tt.threshold)
			}
		})
	}
}

func TestValidateRejectsSameRoots(t *testing.T) {
	cfg := validConfig(t)
	cfg.OutputRoot = cfg.InputRoot + string(filepath.Separator)
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for identical roots")
	}
	if !strings.Contains(err.Error(), "must differ") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsMissingInput(t *testing.T) {
	cfg := validConfig(t)
	cfg.InputRoot = filepath.Join(cfg.InputRoot, "does-not-exist")
	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() = nil, want error for missing input directory")
	}
}

func TestValidateRejectsNonPositiveParallelism(t *testing.T) {
	for _, n := range []int{0, -1} {
		cfg := validConfig(t)
		cfg.Parallelism = n
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() with parallelism %d = nil, want error", n)
		}
	}
}

func TestParseSilenceMode(t *testing.T) {
	tests := []struct {
		in   string
		want SilenceMode
		ok   bool
	}{
		{"none", SilenceNone, true},
		{"start", SilenceStart, true},
		{"end", SilenceEnd, true},
		{"both", SilenceBoth, true},
		{"all", SilenceBoth, true},
		{"middle", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSilenceMode(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseSilenceMode(%q) error = %v", tt.in, err)
				}
				if got != tt.want {
					t.Errorf("ParseSilenceMode(%q) = %q, want %q", tt.in, got, tt.want)
				}
			} else if err == nil {
				t.Errorf("ParseSilenceMode(%q) = %q, want error", tt.in, got)
			}
		})
	}
}

func TestQualityLevel(t *testing.T) {
	cfg := validConfig(t)
	cfg.Quality = "7"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := cfg.QualityLevel(); got != 7 {
		t.Errorf("QualityLevel() = %d, want 7", got)
	}
}
