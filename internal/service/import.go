package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zlElo/Aquatag/internal/model"
)

// EditFunc changes a record loaded from a file before it is written back.
type EditFunc func(track *model.Track)

// ImportTags loads every audio file of dir, applies edit and writes it back.
// Files that fail are logged and skipped; the paths written are returned.
func (s *TagService) ImportTags(dir string, edit EditFunc) ([]string, error) {
	filePaths, err := FindAudioFiles(dir)
	if err != nil {
		return nil, err
	}

	written := []string{}
	for _, filePath := range filePaths {
		if s.EditTags(filePath, edit) {
			written = append(written, filePath)
		}
	}

	if failed := len(filePaths) - len(written); failed > 0 {
		s.logger.Warn("some files were not tagged",
			zap.String("dir", dir),
			zap.Int("failed", failed),
			zap.Int("total", len(filePaths)))
		return written, fmt.Errorf("%d of %d files in %s were not tagged", failed, len(filePaths), dir)
	}

	return written, nil
}

// EditTags is the load, change, save cycle of the editor form for one file.
// A file whose tags can't be read is still written from an empty record.
func (s *TagService) EditTags(path string, edit EditFunc) bool {
	track := s.ReadTags(path)
	if edit != nil {
		edit(track)
	}
	return s.WriteTags(path, track)
}
