package huffman

import (
	"bufio"
	"fmt"
	"io"

	"github.com/icza/bitio"
)

// ErrTruncated is returned by Decode when the payload ends before every
// symbol promised by the header has been decoded.
var ErrTruncated = fmt.Errorf("payload truncated before all symbols were decoded")

// ErrCorrupt is returned by Decode when a payload bit sequence is not a
// valid code.
var ErrCorrupt = fmt.Errorf("invalid code in payload")

// Decode reverses Encode: it reads the header from src, rebuilds the exact
// tree the encoder used, and emits one byte per code until the number of
// symbols recorded in the header is reached. Padding bits after the last
// symbol are never read. Bytes following the final payload byte are not
// detected.
func Decode(dst io.Writer, src io.Reader) error {
	br := bufio.NewReader(src)
	h, err := ReadHeader(br)
	if err != nil {
		return err
	}
	if h.Len() == 0 {
		return nil
	}
	root := buildTree(h)
	total := h.Total()

	bits := bitio.NewReader(br)
	bw := bufio.NewWriter(dst)
	for i := uint64(0); i < total; i++ {
		n := root
		for !n.leaf() {
			bit, err := bits.ReadBool()
			if err == io.EOF {
				return ErrTruncated
			}
			if err != nil {
				return err
			}
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		if n.value < 0 {
			return ErrCorrupt
		}
		if err := bw.WriteByte(byte(n.value)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
