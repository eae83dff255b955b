package huffman

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Compressed streams start with this magic, followed by a big-endian uint16
// entry count and that many 5-byte entries, each a byte value and its
// big-endian uint32 frequency.
var headerMagic = []byte("HUFF")

// ErrHeader is returned by ReadHeader when the input does not start with the
// header magic.
var ErrHeader = fmt.Errorf("invalid huffman header")

// WriteHeader serializes h into the fixed header layout with a single write:
// the magic, the entry count, and one entry per distinct byte in first-seen
// order. A count that does not fit the 4-byte frequency field is an error.
func WriteHeader(w io.Writer, h *Histogram) error {
	entries := h.Entries()
	buf := make([]byte, 0, 6+5*len(entries))
	buf = append(buf, headerMagic...)
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(entries)))
	for _, e := range entries {
		if e.Count > math.MaxUint32 {
			return fmt.Errorf("count %d of byte %d overflows header entry", e.Count, e.Value)
		}
		buf = append(buf, e.Value)
		buf = binary.BigEndian.AppendUint32(buf, uint32(e.Count))
	}
	_, err := w.Write(buf)
	return err
}

// ReadHeader parses a header written by WriteHeader and returns the histogram
// it describes, with entry order preserved. It reads exactly the header
// bytes, leaving r positioned at the start of the payload. Read errors are
// returned unchanged.
func ReadHeader(r io.Reader) (*Histogram, error) {
	var fixed [6]byte
	if _, err := io.ReadFull(r, fixed[:]); err != nil {
		return nil, err
	}
	if !bytes.Equal(fixed[:4], headerMagic) {
		return nil, ErrHeader
	}
	n := int(binary.BigEndian.Uint16(fixed[4:]))
	entries := make([]byte, 5*n)
	if _, err := io.ReadFull(r, entries); err != nil {
		return nil, err
	}
	h := &Histogram{}
	for i := 0; i < n; i++ {
		e := entries[5*i : 5*i+5]
		h.add(e[0], uint64(binary.BigEndian.Uint32(e[1:])))
	}
	return h, nil
}
