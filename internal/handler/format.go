package handler

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"
)

type Format int

const (
	FormatUnsupported Format = iota
	FormatMP3
	FormatFLAC
	FormatWAV
)

func (f Format) String() string {
	switch f {
	case FormatMP3:
		return "MP3"
	case FormatFLAC:
		return "FLAC"
	case FormatWAV:
		return "WAV"
	default:
		return "Unsupported"
	}
}

var Extensions = []string{".mp3", ".flac", ".wav"}

// IsSupportedExtension reports whether the extension of path names one of
// the supported formats, ignoring case.
func IsSupportedExtension(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

// DetectFormat classifies path by its extension and confirms the guess with
// the file signature. Anything unreadable or inconsistent is FormatUnsupported.
func DetectFormat(path string) Format {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		format = FormatMP3
	case ".flac":
		format = FormatFLAC
	case ".wav":
		format = FormatWAV
	default:
		return FormatUnsupported
	}

	file, err := os.Open(path)
	if err != nil {
		return FormatUnsupported
	}
	defer file.Close()

	header := make([]byte, 12)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return FormatUnsupported
	}

	if !matchesSignature(format, header[:n]) {
		return FormatUnsupported
	}

	return format
}

func matchesSignature(format Format, header []byte) bool {
	switch format {
	case FormatMP3:
		if len(header) >= 3 && string(header[:3]) == "ID3" {
			return true
		}
		// MPEG audio frame sync: 11 set bits
		return len(header) >= 2 && header[0] == 0xFF && header[1]&0xE0 == 0xE0
	case FormatFLAC:
		return len(header) >= 4 && string(header[:4]) == "fLaC"
	case FormatWAV:
		return len(header) >= 12 && string(header[:4]) == "RIFF" && string(header[8:12]) == "WAVE"
	default:
		return false
	}
}
