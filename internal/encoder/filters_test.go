package encoder

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildFilterSpec(t *testing.T) {
	tests := []struct {
		name      string
		mode      TrimMode
		threshold string
		want      string
	}{
		{
			name:      "none produces empty chain",
			mode:      TrimNone,
			threshold: "-45dB",
			want:      "",
		},
		{
			name:      "start trims leading silence only",
			mode:      TrimStart,
			threshold: "-45dB",
			want:      "silenceremove=start_periods=1:start_threshold=-45dB",
		},
		{
			name:      "end trims trailing silence only",
			mode:      TrimEnd,
			threshold: "-45dB",
			want:      "silenceremove=stop_periods=1:stop_threshold=-45dB",
		},
		{
			name:      "both anchors one trim at each end",
			mode:      TrimBoth,
			threshold: "-45dB",
			want:      "silenceremove=start_periods=1:start_threshold=-45dB,silenceremove=stop_periods=1:stop_threshold=-45dB",
		},
		{
			name:      "threshold is carried verbatim",
			mode:      TrimStart,
			threshold: "-60.5dB",
			want:      "silenceremove=start_periods=1:start_threshold=-60.5dB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildFilterSpec(tt.mode, tt.threshold)
			if err != nil {
				t.Fatalf("BuildFilterSpec() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("BuildFilterSpec() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildFilterSpecBothHasBothAnchors(t *testing.T) {
	spec, err := BuildFilterSpec(TrimBoth, "-45dB")
	if err != nil {
		t.Fatalf("BuildFilterSpec() error = %v", err)
	}
	if !strings.Contains(spec, "start_threshold=-45dB") {
		t.Errorf("chain %q missing start-anchored trim", spec)
	}
	if !strings.Contains(spec, "stop_threshold=-45dB") {
		t.Errorf("chain %q missing end-anchored trim", spec)
	}
	if got := strings.Count(spec, "silenceremove"); got != 2 {
		t.Errorf("chain %q has %d trim operations, want 2", spec, got)
	}
}

func TestBuildFilterSpecRejectsUnknownMode(t *testing.T) {
	_, err := BuildFilterSpec(TrimMode("middle"), "-45dB")
	var optErr *InvalidOptionError
	if !errors.As(err, &optErr) {
		t.Fatalf("BuildFilterSpec() error = %v, want *InvalidOptionError", err)
	}
}

func TestParseTrimMode(t *testing.T) {
	tests := []struct {
		in   string
		want TrimMode
		ok   bool
	}{
		{"none", TrimNone, true},
		{"start", TrimStart, true},
		{"end", TrimEnd, true},
		{"both", TrimBoth, true},
		{"all", TrimBoth, true},
		{"", "", false},
		{"everything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTrimMode(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseTrimMode(%q) error = %v", tt.in, err)
				}
				if got != tt.want {
					t.Errorf("ParseTrimMode(%q) = %q, want %q", tt.in, got, tt.want)
				}
			} else if err == nil {
				t.Errorf("ParseTrimMode(%q) = %q, want error", tt.in, got)
			}
		})
	}
}
