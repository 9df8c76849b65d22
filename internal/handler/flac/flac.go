package flac

import (
	"net/http"
	"strings"

	"github.com/go-flac/flacpicture"
	"github.com/go-flac/flacvorbis"
	"github.com/go-flac/go-flac"
	aquatag "github.com/zlElo/Aquatag/internal"
	"github.com/zlElo/Aquatag/internal/atomicfile"
	"github.com/zlElo/Aquatag/internal/model"
	"golang.org/x/exp/slices"
)

type FlacHandler struct {
}

type Blocks = []*flac.MetaDataBlock

func (h *FlacHandler) ReadTrack(filePath string) (*model.Track, error) {
	flacFile, err := flac.ParseFile(filePath)
	if err != nil {
		return nil, model.WrapError(filePath, "read", err)
	}

	blocks := flacFile.Meta
	comments := getVorbisComments(blocks)

	track := &model.Track{
		FilePath: filePath,
		Title:    getString(comments, flacvorbis.FIELD_TITLE),
		Artist:   getString(comments, flacvorbis.FIELD_ARTIST),
		Album:    getString(comments, flacvorbis.FIELD_ALBUM),
		Year:     getString(comments, flacvorbis.FIELD_DATE),
		Genre:    getString(comments, flacvorbis.FIELD_GENRE),
		Image:    getImage(blocks),
	}

	return track, nil
}

func (h *FlacHandler) WriteTrack(track *model.Track) error {
	flacFile, err := flac.ParseFile(track.FilePath)
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	blocks, err := setVorbisComments(flacFile.Meta, track)
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	flacFile.Meta, err = replacePicture(blocks, track.Image)
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	err = atomicfile.WriteFile(track.FilePath, flacFile.Marshal())
	if err != nil {
		return model.WrapError(track.FilePath, "write", err)
	}

	return nil
}

func getVorbisComments(blocks Blocks) map[string][]string {
	for _, block := range blocks {
		if block.Type != flac.VorbisComment {
			continue
		}

		comment, err := flacvorbis.ParseFromMetaDataBlock(*block)
		if err != nil {
			continue
		}

		vorbisComments := make(map[string][]string, len(comment.Comments))

		for _, comment := range comment.Comments {
			split := strings.SplitN(comment, "=", 2)
			if len(split) == 2 {
				name := strings.ToUpper(split[0])
				vorbisComments[name] = append(vorbisComments[name], split[1])
			}
		}

		return vorbisComments
	}

	return map[string][]string{}
}

func getString(comments map[string][]string, commentName string) string {
	values := comments[commentName]
	if len(values) > 0 {
		return values[0]
	}
	return ""
}

func getImage(blocks Blocks) *model.Image {
	for _, block := range blocks {
		if block.Type != flac.Picture {
			continue
		}

		picture, err := flacpicture.ParseFromMetaDataBlock(*block)
		if err != nil || len(picture.ImageData) == 0 {
			continue
		}

		mimeType := picture.MIME
		if mimeType == "" {
			mimeType = http.DetectContentType(picture.ImageData)
		}

		return &model.Image{MimeType: mimeType, Data: picture.ImageData}
	}

	return nil
}

// setVorbisComments updates the first comment block in place, creating it
// when missing. A non-empty field replaces every comment with the same key.
// Empty fields leave whatever the file already has.
func setVorbisComments(blocks Blocks, track *model.Track) (Blocks, error) {
	index := slices.IndexFunc(blocks, func(b *flac.MetaDataBlock) bool {
		return b.Type == flac.VorbisComment
	})

	var vorbisComment *flacvorbis.MetaDataBlockVorbisComment
	if index >= 0 {
		parsed, err := flacvorbis.ParseFromMetaDataBlock(*blocks[index])
		if err != nil {
			return nil, err
		}
		vorbisComment = parsed
	} else {
		vorbisComment = flacvorbis.New()
		vorbisComment.Vendor = "Aquatag " + aquatag.Version
	}

	fields := []struct {
		name  string
		value string
	}{
		{flacvorbis.FIELD_TITLE, track.Title},
		{flacvorbis.FIELD_ARTIST, track.Artist},
		{flacvorbis.FIELD_ALBUM, track.Album},
		{flacvorbis.FIELD_DATE, track.Year},
		{flacvorbis.FIELD_GENRE, track.Genre},
	}

	for _, field := range fields {
		if field.value == "" {
			continue
		}
		removeComment(vorbisComment, field.name)
		if err := vorbisComment.Add(field.name, field.value); err != nil {
			return nil, err
		}
	}

	block := vorbisComment.Marshal()
	if index >= 0 {
		blocks[index] = &block
		return blocks, nil
	}

	// The comment block goes right after STREAMINFO, which must stay first.
	return slices.Insert(blocks, min(1, len(blocks)), &block), nil
}

func removeComment(vorbisComment *flacvorbis.MetaDataBlockVorbisComment, name string) {
	vorbisComment.Comments = slices.DeleteFunc(vorbisComment.Comments, func(comment string) bool {
		key, _, _ := strings.Cut(comment, "=")
		return strings.EqualFold(key, name)
	})
}

// replacePicture swaps all picture blocks for a single front cover. Without
// an image the existing pictures are kept; there is no way to clear a cover.
func replacePicture(blocks Blocks, image *model.Image) (Blocks, error) {
	if image == nil || len(image.Data) == 0 {
		return blocks, nil
	}

	mimeType := image.MimeType
	if mimeType == "" {
		mimeType = http.DetectContentType(image.Data)
	}

	picture, err := flacpicture.NewFromImageData(flacpicture.PictureTypeFrontCover, "Cover", image.Data, mimeType)
	if err != nil {
		return nil, model.NewError(model.KindImageDecode, "", "encode picture", err)
	}

	blocks = slices.DeleteFunc(blocks, func(b *flac.MetaDataBlock) bool {
		return b.Type == flac.Picture
	})

	pictureBlock := picture.Marshal()
	index := slices.IndexFunc(blocks, func(b *flac.MetaDataBlock) bool {
		return b.Type == flac.Padding
	})
	if index < 0 {
		return append(blocks, &pictureBlock), nil
	}

	return slices.Insert(blocks, index, &pictureBlock), nil
}
