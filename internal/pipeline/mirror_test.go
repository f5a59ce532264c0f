package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMirrorPathPreservesRelativePath(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"top level", "in/x.mp3", "out/x.mp3"},
		{"one deep", "in/a/x.mp3", "out/a/x.mp3"},
		{"nested", "in/a/b/c/d/y.mp3", "out/a/b/c/d/y.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MirrorPath("in", "out", filepath.FromSlash(tt.source))
			if err != nil {
				t.Fatalf("MirrorPath() error = %v", err)
			}
			if got != filepath.FromSlash(tt.want) {
				t.Errorf("MirrorPath() = %q, want %q", got, tt.want)
			}

			rel, err := filepath.Rel("out", got)
			if err != nil {
				t.Fatal(err)
			}
			wantRel, err := filepath.Rel("in", filepath.FromSlash(tt.source))
			if err != nil {
				t.Fatal(err)
			}
			if rel != wantRel {
				t.Errorf("relative path %q differs from source's %q", rel, wantRel)
			}
		})
	}
}

func TestDiscoverFindsMP3sSorted(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{
		"b/y.mp3",
		"a/x.mp3",
		"a/cover.jpg",
		"z.MP3",
		"notes.txt",
	} {
		full := filepath.Join(root, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a", "x.mp3"),
		filepath.Join(root, "b", "y.mp3"),
		filepath.Join(root, "z.MP3"),
	}
	if len(files) != len(want) {
		t.Fatalf("Discover() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverEmptyTree(t *testing.T) {
	files, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(files) != 0 {
		t.Errorf("Discover() = %v, want empty", files)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Discover() = nil error for missing root")
	}
}
