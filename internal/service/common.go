package service

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/zlElo/Aquatag/internal/handler"
)

var ErrNoAudioFiles = errors.New("no audio files found")

func findFiles(dir string) ([]string, error) {

	files := []string{}

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != dir {
			return filepath.SkipDir
		}

		if !info.IsDir() && handler.IsSupportedExtension(path) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// FindAudioFiles lists the files directly inside dir whose extension is
// supported, in lexical order. Their contents are not checked.
func FindAudioFiles(dir string) ([]string, error) {
	filePaths, err := findFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(filePaths) == 0 {
		return nil, ErrNoAudioFiles
	}

	return filePaths, nil
}
