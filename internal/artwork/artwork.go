// Package artwork converts embedded covers between their stored bytes and
// decoded bitmaps. PNG is the only encoding written back to files.
package artwork

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"

	"github.com/zlElo/Aquatag/internal/model"
)

const MimePNG = "image/png"

// Decode turns PNG or JPEG bytes into a bitmap. The second result is the
// format name reported by the image package ("png" or "jpeg").
func Decode(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", model.NewError(model.KindImageDecode, "", "decode", fmt.Errorf("no image data"))
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", model.NewError(model.KindImageDecode, "", "decode", err)
	}

	return img, format, nil
}

func EncodePNG(img image.Image) ([]byte, error) {
	buff := new(bytes.Buffer)
	if err := png.Encode(buff, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buff.Bytes(), nil
}

// Normalize re-encodes a cover as PNG. Covers that are already PNG are
// re-encoded too, so what gets stored never depends on the source encoding.
func Normalize(img *model.Image) (*model.Image, error) {
	if img == nil {
		return nil, nil
	}

	bitmap, _, err := Decode(img.Data)
	if err != nil {
		return nil, err
	}

	data, err := EncodePNG(bitmap)
	if err != nil {
		return nil, err
	}

	return &model.Image{MimeType: MimePNG, Data: data}, nil
}

// Dimensions reports the pixel size of a cover without decoding the pixels.
func Dimensions(img *model.Image) (int, int, error) {
	if img == nil {
		return 0, 0, nil
	}

	config, _, err := image.DecodeConfig(bytes.NewReader(img.Data))
	if err != nil {
		return 0, 0, model.NewError(model.KindImageDecode, "", "decode config", err)
	}

	return config.Width, config.Height, nil
}
