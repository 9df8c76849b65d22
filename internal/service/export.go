package service

import (
	"errors"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/zlElo/Aquatag/internal/cover_file"
	"github.com/zlElo/Aquatag/internal/model"
)

var ErrNoCover = errors.New("file has no cover")

// ExportCover writes the embedded cover of path as Folder.png or Folder.jpg
// into dir, or next to the file when dir is empty.
func (s *TagService) ExportCover(path, dir string) (string, error) {
	track, err := s.Read(path)
	if err != nil {
		return "", err
	}
	if track.Image == nil {
		return "", model.NewError(model.KindParse, path, "export cover", ErrNoCover)
	}

	if dir == "" {
		dir = filepath.Dir(path)
	}

	imageFilePath, err := cover_file.WriteImageFile(dir, track.Image)
	if err != nil {
		return "", err
	}

	s.logger.Info("exported cover",
		zap.String("file", path),
		zap.String("image", imageFilePath))

	return imageFilePath, nil
}
