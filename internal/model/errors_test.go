package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTagError_Error(t *testing.T) {
	err := NewError(KindParse, "song.mp3", "read", errors.New("bad frame header"))

	msg := err.Error()
	for _, substr := range []string{"read", "song.mp3", "parse error", "bad frame header"} {
		if !strings.Contains(msg, substr) {
			t.Errorf("error message %q should contain %q", msg, substr)
		}
	}
}

func TestWrapError(t *testing.T) {
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing.flac"))

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "path error", err: statErr, want: KindIO},
		{name: "wrapped not exist", err: fmt.Errorf("open: %w", fs.ErrNotExist), want: KindIO},
		{name: "permission", err: fs.ErrPermission, want: KindIO},
		{name: "plain error", err: errors.New("malformed chunk"), want: KindParse},
		{name: "keeps existing kind", err: NewError(KindImageDecode, "a.png", "decode", nil), want: KindImageDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := WrapError("file", "write", tt.err)
			if got := KindOf(wrapped); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Errorf("wrapped error should match the cause")
			}
		})
	}

	if WrapError("file", "write", nil) != nil {
		t.Error("WrapError(nil) should be nil")
	}
}

func TestKindOf_Unknown(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != KindUnknown {
		t.Errorf("KindOf() = %v, want KindUnknown", got)
	}
}

func TestTrack_Clone(t *testing.T) {
	orig := &Track{Title: "A", Image: &Image{MimeType: "image/png", Data: []byte{1, 2, 3}}}

	c := orig.Clone()
	c.Title = "B"
	c.Image.Data[0] = 9

	if orig.Title != "A" {
		t.Errorf("Title changed to %q", orig.Title)
	}
	if orig.Image.Data[0] != 1 {
		t.Errorf("image data shared with clone")
	}
}
