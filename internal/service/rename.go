package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/zlElo/Aquatag/internal/model"
)

var ErrNoTitle = errors.New("file has no title")

// RenameByTags renames path to "Artist - Title.ext" (or "Title.ext" without
// an artist) in the same directory and returns the new path.
func (s *TagService) RenameByTags(path string) (string, error) {
	track, err := s.Read(path)
	if err != nil {
		return "", err
	}

	newBaseName := determineNewBaseName(track)
	if newBaseName == "" {
		return "", model.NewError(model.KindParse, path, "rename", ErrNoTitle)
	}

	newPath := filepath.Join(filepath.Dir(path), newBaseName+filepath.Ext(path))
	if newPath == path {
		return path, nil
	}

	if _, err := os.Stat(newPath); err == nil {
		return "", model.NewError(model.KindIO, newPath, "rename", os.ErrExist)
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", model.WrapError(path, "rename", err)
	}

	s.logger.Info("renamed file",
		zap.String("file", path),
		zap.String("to", newPath))

	return newPath, nil
}

var charReplacer = strings.NewReplacer(
	"*", "-",
	"\\", "",
	"|", "",
	":", "",
	"\"", "",
	"<", "(",
	">", ")",
	"/", "",
	"?", "",
)

func determineNewBaseName(track *model.Track) string {
	title := strings.TrimSpace(charReplacer.Replace(track.Title))
	if title == "" {
		return ""
	}

	artist := strings.TrimSpace(charReplacer.Replace(track.Artist))
	if artist == "" {
		return title
	}

	newBaseName := new(strings.Builder)
	newBaseName.WriteString(artist)
	newBaseName.WriteString(" - ")
	newBaseName.WriteString(title)

	return newBaseName.String()
}
