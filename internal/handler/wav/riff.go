package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var errNotWave = errors.New("not a RIFF/WAVE file")

type chunk struct {
	id   string
	data []byte
}

func (c chunk) isID3() bool {
	return c.id == "id3 " || c.id == "ID3 "
}

// riffFile is a RIFF/WAVE container split into its top level chunks.
// Bytes found after the declared RIFF size are kept as trailing.
type riffFile struct {
	chunks   []chunk
	trailing []byte
}

func parseRIFF(data []byte) (*riffFile, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errNotWave
	}

	end := len(data)
	if declared := 8 + int64(binary.LittleEndian.Uint32(data[4:8])); declared < int64(end) {
		end = int(declared)
	}

	riff := &riffFile{}
	offset := 12
	for offset+8 <= end {
		id := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		start := offset + 8
		if size > end-start {
			return nil, fmt.Errorf("chunk %q at offset %d overruns the file", id, offset)
		}

		riff.chunks = append(riff.chunks, chunk{id: id, data: data[start : start+size]})

		// chunks are word aligned
		offset = start + size + size%2
	}

	if offset < len(data) {
		riff.trailing = data[offset:]
	}

	return riff, nil
}

// id3Chunk returns the payload of the first ID3 chunk, or nil.
func (r *riffFile) id3Chunk() []byte {
	for _, c := range r.chunks {
		if c.isID3() {
			return c.data
		}
	}
	return nil
}

// setID3Chunk stores payload in the first ID3 chunk, appending one when the
// file has none. Further ID3 chunks are dropped. A nil payload removes them all.
func (r *riffFile) setID3Chunk(payload []byte) {
	chunks := make([]chunk, 0, len(r.chunks)+1)
	replaced := false
	for _, c := range r.chunks {
		if !c.isID3() {
			chunks = append(chunks, c)
			continue
		}
		if !replaced && payload != nil {
			chunks = append(chunks, chunk{id: c.id, data: payload})
			replaced = true
		}
	}

	if !replaced && payload != nil {
		chunks = append(chunks, chunk{id: "id3 ", data: payload})
	}

	r.chunks = chunks
}

func (r *riffFile) bytes() ([]byte, error) {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")

	header := make([]byte, 4)
	for _, c := range r.chunks {
		body.WriteString(c.id)
		binary.LittleEndian.PutUint32(header, uint32(len(c.data)))
		body.Write(header)
		body.Write(c.data)
		if len(c.data)%2 != 0 {
			body.WriteByte(0)
		}
	}

	if int64(body.Len()) > math.MaxUint32 {
		return nil, fmt.Errorf("RIFF body of %d bytes exceeds the 4 GiB limit", body.Len())
	}

	out := bytes.NewBuffer(make([]byte, 0, 8+body.Len()+len(r.trailing)))
	out.WriteString("RIFF")
	binary.LittleEndian.PutUint32(header, uint32(body.Len()))
	out.Write(header)
	out.Write(body.Bytes())
	out.Write(r.trailing)

	return out.Bytes(), nil
}
