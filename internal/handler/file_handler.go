package handler

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zlElo/Aquatag/internal/handler/flac"
	"github.com/zlElo/Aquatag/internal/handler/id3v2"
	"github.com/zlElo/Aquatag/internal/handler/wav"
	"github.com/zlElo/Aquatag/internal/model"
)

// FileHandler reads and writes the tag record of one container format.
// Implementations must not modify the track passed to WriteTrack.
type FileHandler interface {
	ReadTrack(filePath string) (*model.Track, error)
	WriteTrack(track *model.Track) error
}

func NewHandler(format Format) (FileHandler, error) {
	switch format {
	case FormatMP3:
		return &id3v2.Id3v2Handler{}, nil
	case FormatFLAC:
		return &flac.FlacHandler{}, nil
	case FormatWAV:
		return &wav.WavHandler{}, nil
	default:
		return nil, fmt.Errorf("no handler for format %s", format)
	}
}

// HandlerFor detects the format of filePath and returns its handler.
func HandlerFor(filePath string) (FileHandler, Format, error) {
	format := DetectFormat(filePath)
	if format == FormatUnsupported {
		reason := fmt.Errorf("extension %q or file signature not recognized", strings.ToLower(filepath.Ext(filePath)))
		return nil, format, model.NewError(model.KindUnsupportedFormat, filePath, "detect", reason)
	}

	h, err := NewHandler(format)
	if err != nil {
		return nil, format, model.NewError(model.KindUnsupportedFormat, filePath, "detect", err)
	}

	return h, format, nil
}
