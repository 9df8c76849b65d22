package cover_file

import (
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/zlElo/Aquatag/internal/model"
)

var ErrNoImageFile = errors.New("no Folder image found")

var folderImages = []struct {
	ext      string
	mimeType string
}{
	{".png", "image/png"},
	{".jpg", "image/jpeg"},
	{".jpeg", "image/jpeg"},
}

// ReadImageFile loads an image file to be used as a cover. A directory is
// searched for Folder.png, Folder.jpg or Folder.jpeg.
func ReadImageFile(path string) (*model.Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, model.WrapError(path, "read cover", err)
	}
	if stat.IsDir() {
		return findFolderImage(path)
	}

	imageFile, err := os.Open(path)
	if err != nil {
		return nil, model.WrapError(path, "read cover", err)
	}
	defer imageFile.Close()

	imageData, err := io.ReadAll(imageFile)
	if err != nil {
		return nil, model.WrapError(path, "read cover", err)
	}

	return &model.Image{MimeType: mimeTypeOf(path, imageData), Data: imageData}, nil
}

func findFolderImage(dir string) (*model.Image, error) {
	for _, candidate := range folderImages {
		imageFilePath := filepath.Join(dir, "Folder"+candidate.ext)

		if stat, err := os.Stat(imageFilePath); os.IsNotExist(err) || stat.IsDir() {
			continue
		}

		return ReadImageFile(imageFilePath)
	}

	return nil, model.NewError(model.KindIO, dir, "read cover", ErrNoImageFile)
}

func mimeTypeOf(path string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range folderImages {
		if candidate.ext == ext {
			return candidate.mimeType
		}
	}
	return http.DetectContentType(data)
}
