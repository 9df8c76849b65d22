package artwork

import (
	"bytes"
	"testing"

	"github.com/zlElo/Aquatag/internal/model"
	"github.com/zlElo/Aquatag/internal/testutil"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantFormat string
	}{
		{name: "png", data: testutil.PNG(t, 4, 3), wantFormat: "png"},
		{name: "jpeg", data: testutil.JPEG(t, 4, 3), wantFormat: "jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("format = %q, want %q", format, tt.wantFormat)
			}
			if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
				t.Errorf("bounds = %v, want 4x3", b)
			}
		})
	}
}

func TestDecode_Invalid(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not an image at all")} {
		_, _, err := Decode(data)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if model.KindOf(err) != model.KindImageDecode {
			t.Errorf("kind = %v, want %v", model.KindOf(err), model.KindImageDecode)
		}
	}
}

func TestNormalize_JPEGBecomesPNG(t *testing.T) {
	src := &model.Image{MimeType: "image/jpeg", Data: testutil.JPEG(t, 8, 5)}

	got, err := Normalize(src)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got.MimeType != MimePNG {
		t.Errorf("MimeType = %q, want %q", got.MimeType, MimePNG)
	}
	if !bytes.HasPrefix(got.Data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("data is not PNG")
	}

	w, h, err := Dimensions(got)
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 8 || h != 5 {
		t.Errorf("dimensions = %dx%d, want 8x5", w, h)
	}
	if src.MimeType != "image/jpeg" {
		t.Errorf("source image was modified")
	}
}

func TestNormalize_Nil(t *testing.T) {
	got, err := Normalize(nil)
	if err != nil || got != nil {
		t.Errorf("Normalize(nil) = %v, %v; want nil, nil", got, err)
	}
}

func TestNormalize_Corrupt(t *testing.T) {
	_, err := Normalize(&model.Image{MimeType: "image/png", Data: []byte("\x89PNG broken")})
	if model.KindOf(err) != model.KindImageDecode {
		t.Errorf("kind = %v, want %v", model.KindOf(err), model.KindImageDecode)
	}
}
