package id3v2

import (
	"net/http"
	"strings"

	"github.com/bogem/id3v2/v2"
	"github.com/zlElo/Aquatag/internal/model"
)

const (
	FrameTitle   = "TIT2"
	FrameArtist  = "TPE1"
	FrameAlbum   = "TALB"
	FrameDate    = "TDRC"
	FrameYear    = "TYER"
	FrameGenre   = "TCON"
	FramePicture = "APIC"
)

// Frames removed before every write. TYER is the ID3v2.3 year frame; it goes
// too so that an old year can't shadow the TDRC written below.
var clearedFrames = []string{FrameTitle, FrameArtist, FrameAlbum, FrameDate, FrameYear, FrameGenre, FramePicture}

// ID3v2.3 has no UTF-8 encoding byte. UTF-16 with BOM is its Unicode encoding.
var textEncoding = id3v2.EncodingUTF16

type Id3v2Handler struct {
}

func (h *Id3v2Handler) ReadTrack(filePath string) (*model.Track, error) {
	tags, err := id3v2.Open(filePath, id3v2.Options{Parse: true})
	if err != nil {
		return nil, model.WrapError(filePath, "read", err)
	}
	defer tags.Close()

	track := &model.Track{FilePath: filePath}
	ReadTags(tags, track)

	return track, nil
}

func (h *Id3v2Handler) WriteTrack(track *model.Track) error {
	tags, err := id3v2.Open(track.FilePath, id3v2.Options{Parse: true})
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}
	defer tags.Close()

	SetTags(tags, track)

	err = tags.Save()
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	return nil
}

// ReadTags copies the five text frames and the first picture of tags into track.
func ReadTags(tags *id3v2.Tag, track *model.Track) {
	track.Title = getText(tags, FrameTitle)
	track.Artist = getText(tags, FrameArtist)
	track.Album = getText(tags, FrameAlbum)
	track.Year = getText(tags, FrameDate)
	if track.Year == "" {
		track.Year = getText(tags, FrameYear)
	}
	track.Genre = getText(tags, FrameGenre)
	track.Image = getImage(tags)
}

// getText returns the first value of a text frame. v2.4 frames may hold
// several NUL separated values, and some taggers NUL terminate v2.3 text.
func getText(tags *id3v2.Tag, id string) string {
	text := tags.GetTextFrame(id).Text
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return text
}

func getImage(tags *id3v2.Tag) *model.Image {
	for _, frame := range tags.GetFrames(FramePicture) {
		p, ok := frame.(id3v2.PictureFrame)
		if !ok || len(p.Picture) == 0 {
			continue
		}

		mimeType := p.MimeType
		if mimeType == "" {
			mimeType = http.DetectContentType(p.Picture)
		}

		return &model.Image{MimeType: mimeType, Data: p.Picture}
	}

	return nil
}

// SetTags replaces the tag frames with the values of track. Every existing
// instance of the managed frames is removed first because adding a frame to
// an id3v2.Tag appends rather than replaces for APIC. Empty fields get no frame.
func SetTags(tags *id3v2.Tag, track *model.Track) {
	for _, id := range clearedFrames {
		tags.DeleteFrames(id)
	}

	tags.SetVersion(3)
	tags.SetDefaultEncoding(textEncoding)

	addTextFrame(tags, FrameTitle, track.Title)
	addTextFrame(tags, FrameArtist, track.Artist)
	addTextFrame(tags, FrameAlbum, track.Album)
	addTextFrame(tags, FrameDate, track.Year)
	addTextFrame(tags, FrameGenre, track.Genre)

	if track.Image != nil && len(track.Image.Data) > 0 {
		mimeType := track.Image.MimeType
		if mimeType == "" {
			mimeType = http.DetectContentType(track.Image.Data)
		}

		tags.AddAttachedPicture(id3v2.PictureFrame{
			Encoding:    textEncoding,
			MimeType:    mimeType,
			PictureType: id3v2.PTFrontCover,
			Description: "Cover",
			Picture:     track.Image.Data,
		})
	}
}

func addTextFrame(tags *id3v2.Tag, id string, value string) {
	if value == "" {
		return
	}
	tags.AddTextFrame(id, textEncoding, value)
}
