package wav

import (
	"bytes"
	"os"

	"github.com/bogem/id3v2/v2"
	"github.com/zlElo/Aquatag/internal/atomicfile"
	frames "github.com/zlElo/Aquatag/internal/handler/id3v2"
	"github.com/zlElo/Aquatag/internal/model"
)

// WavHandler stores an ID3v2 tag inside an "id3 " RIFF chunk.
type WavHandler struct {
}

func (h *WavHandler) ReadTrack(filePath string) (*model.Track, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, model.WrapError(filePath, "read", err)
	}

	riff, err := parseRIFF(data)
	if err != nil {
		return nil, model.WrapError(filePath, "read", err)
	}

	track := &model.Track{FilePath: filePath}

	payload := riff.id3Chunk()
	if payload == nil {
		return track, nil
	}

	tags, err := id3v2.ParseReader(bytes.NewReader(payload), id3v2.Options{Parse: true})
	if err != nil {
		return nil, model.WrapError(filePath, "read", err)
	}

	frames.ReadTags(tags, track)

	return track, nil
}

func (h *WavHandler) WriteTrack(track *model.Track) error {
	data, err := os.ReadFile(track.FilePath)
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	riff, err := parseRIFF(data)
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	// A file without an ID3 chunk gets a fresh tag.
	tags := id3v2.NewEmptyTag()
	if payload := riff.id3Chunk(); payload != nil {
		tags, err = id3v2.ParseReader(bytes.NewReader(payload), id3v2.Options{Parse: true})
		if err != nil {
			return model.WrapError(track.FilePath, "write", err)
		}
	}

	frames.SetTags(tags, track)

	var payload []byte
	if tags.Count() > 0 {
		buff := new(bytes.Buffer)
		if _, err := tags.WriteTo(buff); err != nil {
			return model.WrapError(track.FilePath, "write", err)
		}
		payload = buff.Bytes()
	}
	riff.setID3Chunk(payload)

	out, err := riff.bytes()
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	err = atomicfile.WriteFile(track.FilePath, out)
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	return nil
}
