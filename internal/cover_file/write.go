package cover_file

import (
	"path/filepath"

	"github.com/zlElo/Aquatag/internal/atomicfile"
	"github.com/zlElo/Aquatag/internal/model"
)

// WriteImageFile stores image in dir as Folder.png or Folder.jpg and returns
// the path written. Nothing is written for a nil image or an unknown type.
func WriteImageFile(dir string, image *model.Image) (string, error) {

	if image == nil {
		return "", nil
	}

	var imageFileName string
	switch image.MimeType {
	case "image/jpeg", "image/jpg":
		imageFileName = "Folder.jpg"
	case "image/png":
		imageFileName = "Folder.png"
	default:
		return "", nil
	}
	imageFilePath := filepath.Join(dir, imageFileName)

	if err := atomicfile.WriteFile(imageFilePath, image.Data); err != nil {
		return "", model.WrapError(imageFilePath, "write cover", err)
	}

	return imageFilePath, nil
}
