// Package testutil builds small but well-formed audio and image files for tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// MP3 writes a tagless MP3 made of silent MPEG-1 Layer III frames
// (128 kbit/s, 44.1 kHz) and returns its path.
func MP3(tb testing.TB, dir, name string) string {
	tb.Helper()

	const frameSize = 417
	data := make([]byte, 0, frameSize*4)
	for i := 0; i < 4; i++ {
		frame := make([]byte, frameSize)
		copy(frame, []byte{0xFF, 0xFB, 0x90, 0x64})
		data = append(data, frame...)
	}

	return writeFile(tb, dir, name, data)
}

// FLACAudio is the frame data appended after the metadata blocks of FLAC.
var FLACAudio = []byte{0xFF, 0xF8, 0x69, 0x08, 0x00, 0x0F, 0x6E, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77, 0x88}

// FLAC writes a FLAC stream holding only STREAMINFO followed by FLACAudio.
func FLAC(tb testing.TB, dir, name string) string {
	tb.Helper()

	streamInfo := make([]byte, 34)
	binary.BigEndian.PutUint16(streamInfo[0:2], 4096)
	binary.BigEndian.PutUint16(streamInfo[2:4], 4096)
	// sample rate (20 bits), channels-1 (3 bits), bits per sample-1 (5 bits), total samples (36 bits)
	packed := uint64(44100)<<44 | uint64(1)<<41 | uint64(15)<<36 | uint64(4096)
	binary.BigEndian.PutUint64(streamInfo[10:18], packed)

	buff := new(bytes.Buffer)
	buff.WriteString("fLaC")
	buff.Write([]byte{0x80, 0x00, 0x00, byte(len(streamInfo))})
	buff.Write(streamInfo)
	buff.Write(FLACAudio)

	return writeFile(tb, dir, name, buff.Bytes())
}

type Chunk struct {
	ID   string
	Data []byte
}

// WAVAudio is the sample data of the data chunk written by WAV.
var WAVAudio = []byte{0x00, 0x00, 0x10, 0x00, 0x20, 0x00, 0x30, 0x00, 0x40, 0x00, 0x30, 0x00, 0x20, 0x00, 0x10, 0x00}

// FmtChunk describes 16-bit stereo PCM at 44.1 kHz.
func FmtChunk() Chunk {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint16(data[0:2], 1)
	binary.LittleEndian.PutUint16(data[2:4], 2)
	binary.LittleEndian.PutUint32(data[4:8], 44100)
	binary.LittleEndian.PutUint32(data[8:12], 44100*4)
	binary.LittleEndian.PutUint16(data[12:14], 4)
	binary.LittleEndian.PutUint16(data[14:16], 16)
	return Chunk{ID: "fmt ", Data: data}
}

// RIFF assembles a RIFF/WAVE container, padding odd sized chunks.
func RIFF(chunks ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	for _, chunk := range chunks {
		body.WriteString(chunk.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(chunk.Data)))
		body.Write(chunk.Data)
		if len(chunk.Data)%2 != 0 {
			body.WriteByte(0)
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

// WAV writes a RIFF/WAVE file with fmt and data chunks followed by extra.
func WAV(tb testing.TB, dir, name string, extra ...Chunk) string {
	tb.Helper()

	chunks := append([]Chunk{FmtChunk(), {ID: "data", Data: WAVAudio}}, extra...)
	return writeFile(tb, dir, name, RIFF(chunks...))
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 20), G: uint8(y * 20), B: 0x80, A: 0xFF})
		}
	}
	return img
}

func PNG(tb testing.TB, w, h int) []byte {
	tb.Helper()

	buff := new(bytes.Buffer)
	if err := png.Encode(buff, testImage(w, h)); err != nil {
		tb.Fatalf("encode png: %v", err)
	}
	return buff.Bytes()
}

func JPEG(tb testing.TB, w, h int) []byte {
	tb.Helper()

	buff := new(bytes.Buffer)
	if err := jpeg.Encode(buff, testImage(w, h), nil); err != nil {
		tb.Fatalf("encode jpeg: %v", err)
	}
	return buff.Bytes()
}

func writeFile(tb testing.TB, dir, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
	return path
}
