package cover_file

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/zlElo/Aquatag/internal/model"
	"github.com/zlElo/Aquatag/internal/testutil"
)

func TestReadImageFile(t *testing.T) {
	dir := t.TempDir()
	pngData := testutil.PNG(t, 3, 3)
	jpegData := testutil.JPEG(t, 3, 3)

	files := map[string][]byte{
		"cover.png":    pngData,
		"cover.JPG":    jpegData,
		"cover.jpeg":   jpegData,
		"cover":        pngData,
		"sniffed.data": jpegData,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name     string
		wantMime string
		wantData []byte
	}{
		{"cover.png", "image/png", pngData},
		{"cover.JPG", "image/jpeg", jpegData},
		{"cover.jpeg", "image/jpeg", jpegData},
		{"cover", "image/png", pngData},
		{"sniffed.data", "image/jpeg", jpegData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadImageFile(filepath.Join(dir, tt.name))
			if err != nil {
				t.Fatalf("ReadImageFile() error = %v", err)
			}
			if got.MimeType != tt.wantMime {
				t.Errorf("MimeType = %q, want %q", got.MimeType, tt.wantMime)
			}
			if !bytes.Equal(got.Data, tt.wantData) {
				t.Error("Data differs from the file")
			}
		})
	}
}

func TestReadImageFile_Directory(t *testing.T) {
	dir := t.TempDir()
	jpegData := testutil.JPEG(t, 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "Folder.jpg"), jpegData, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadImageFile(dir)
	if err != nil {
		t.Fatalf("ReadImageFile() error = %v", err)
	}
	if got.MimeType != "image/jpeg" || !bytes.Equal(got.Data, jpegData) {
		t.Errorf("ReadImageFile() = %q, %d bytes", got.MimeType, len(got.Data))
	}

	_, err = ReadImageFile(t.TempDir())
	if !errors.Is(err, ErrNoImageFile) {
		t.Errorf("error = %v, want ErrNoImageFile", err)
	}
}

func TestReadImageFile_Missing(t *testing.T) {
	_, err := ReadImageFile(filepath.Join(t.TempDir(), "none.png"))
	if model.KindOf(err) != model.KindIO {
		t.Errorf("kind = %v, want %v", model.KindOf(err), model.KindIO)
	}
}

func TestWriteImageFile(t *testing.T) {
	tests := []struct {
		name     string
		image    *model.Image
		wantFile string
	}{
		{"png", &model.Image{MimeType: "image/png", Data: []byte("png")}, "Folder.png"},
		{"jpeg", &model.Image{MimeType: "image/jpeg", Data: []byte("jpg")}, "Folder.jpg"},
		{"jpg alias", &model.Image{MimeType: "image/jpg", Data: []byte("jpg")}, "Folder.jpg"},
		{"unknown", &model.Image{MimeType: "image/bmp", Data: []byte("bmp")}, ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			got, err := WriteImageFile(dir, tt.image)
			if err != nil {
				t.Fatalf("WriteImageFile() error = %v", err)
			}

			if tt.wantFile == "" {
				if got != "" {
					t.Errorf("WriteImageFile() = %q, want nothing written", got)
				}
				entries, _ := os.ReadDir(dir)
				if len(entries) != 0 {
					t.Errorf("directory has %d entries", len(entries))
				}
				return
			}

			want := filepath.Join(dir, tt.wantFile)
			if got != want {
				t.Errorf("WriteImageFile() = %q, want %q", got, want)
			}
			data, err := os.ReadFile(want)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(data, tt.image.Data) {
				t.Error("file content differs")
			}
		})
	}
}
