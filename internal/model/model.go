package model

// Track is the tag record exchanged between the codecs and their callers.
// Empty strings mean "not present".
type Track struct {
	FilePath string

	Title  string
	Artist string
	Album  string
	// Year is stored as given; formats disagree on whether it is a year or a timestamp.
	Year  string
	Genre string
	Image *Image
}

type Image struct {
	MimeType string
	Data     []byte
}

// Clone returns a deep copy so that codecs can never touch the caller's record.
func (t *Track) Clone() *Track {
	if t == nil {
		return &Track{}
	}
	c := *t
	if t.Image != nil {
		data := make([]byte, len(t.Image.Data))
		copy(data, t.Image.Data)
		c.Image = &Image{MimeType: t.Image.MimeType, Data: data}
	}
	return &c
}
