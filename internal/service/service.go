package service

import (
	"go.uber.org/zap"

	"github.com/zlElo/Aquatag/internal/artwork"
	"github.com/zlElo/Aquatag/internal/handler"
	"github.com/zlElo/Aquatag/internal/model"
)

// TagService is the entry point used by the user interface. ReadTags and
// WriteTags never return errors; the cause is logged. Read and Write expose
// the typed *model.TagError instead.
type TagService struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *TagService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagService{logger: logger}
}

// ReadTags returns the tags of path, or an empty record when they can't be read.
func (s *TagService) ReadTags(path string) *model.Track {
	track, err := s.Read(path)
	if err != nil {
		s.logger.Warn("reading tags failed",
			zap.String("file", path),
			zap.Stringer("kind", model.KindOf(err)),
			zap.Error(err))
		return &model.Track{FilePath: path}
	}
	return track
}

// WriteTags stores track in path and reports whether it succeeded.
func (s *TagService) WriteTags(path string, track *model.Track) bool {
	if err := s.Write(path, track); err != nil {
		s.logger.Error("writing tags failed",
			zap.String("file", path),
			zap.Stringer("kind", model.KindOf(err)),
			zap.Error(err))
		return false
	}
	return true
}

func (s *TagService) Read(path string) (*model.Track, error) {
	h, format, err := handler.HandlerFor(path)
	if err != nil {
		return nil, err
	}

	track, err := h.ReadTrack(path)
	if err != nil {
		return nil, model.WrapError(path, "read", err)
	}

	// A cover that doesn't decode is dropped, the text fields are still good.
	if track.Image != nil {
		if _, _, err := artwork.Decode(track.Image.Data); err != nil {
			s.logger.Warn("ignoring embedded cover",
				zap.String("file", path),
				zap.String("mime", track.Image.MimeType),
				zap.Error(err))
			track.Image = nil
		}
	}

	s.logger.Debug("read tags",
		zap.String("file", path),
		zap.Stringer("format", format),
		zap.Bool("cover", track.Image != nil))

	return track, nil
}

func (s *TagService) Write(path string, track *model.Track) error {
	h, format, err := handler.HandlerFor(path)
	if err != nil {
		return err
	}

	// The handlers get their own copy with the cover already stored as PNG.
	input := track.Clone()
	input.FilePath = path

	input.Image, err = artwork.Normalize(input.Image)
	if err != nil {
		return model.WrapError(path, "write", err)
	}

	if err := h.WriteTrack(input); err != nil {
		return model.WrapError(path, "write", err)
	}

	s.logger.Info("wrote tags",
		zap.String("file", path),
		zap.Stringer("format", format),
		zap.String("title", input.Title),
		zap.Bool("cover", input.Image != nil))

	return nil
}
