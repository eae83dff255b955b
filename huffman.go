// Package huffman implements a Huffman prefix-code compressor for byte streams.
// A two-pass encoder scans the source to build a byte frequency histogram, derives an optimal prefix-free code table from it, and writes a self-describing file: a fixed header carrying the histogram, followed by the bit-packed payload, zero-padded to a byte boundary.
// The decoder rebuilds the identical tree from the header and recovers the original bytes exactly.
//
// Below is an example of compressing and restoring a file:
//    go run compress/main.go article.txt > article.huff
//    cat article.huff | go run decompress/main.go > article.out
//    diff article.txt article.out
//
// Reference:
// D.A. Huffman, A Method for the Construction of Minimum-Redundancy Codes, Proceedings of the IRE, Volume 40, Number 9, 1952.
package huffman

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultBlockSize is the number of source bytes read per block when no
// explicit block size is given.
const DefaultBlockSize = 1024

// An UnencodableByteError reports a byte met in the streaming pass that has
// no entry in the code table built in the scan pass. It indicates the source
// changed between the two passes.
type UnencodableByteError byte

func (e UnencodableByteError) Error() string {
	return fmt.Sprintf("byte %d not included in encoding table", byte(e))
}

// Encode compresses src onto dst in two passes: a scan pass building the byte
// histogram, and a streaming pass encoding every byte under the derived code
// table. src must yield the same bytes on both passes, which is why a
// seekable source is required; Encode rewinds src to its starting offset
// between the passes. The header is written once, before the payload, and the
// final partial byte of the payload is padded with binary zeros.
// blockSize <= 0 selects DefaultBlockSize.
//
// A failed Encode may leave a partially written destination behind; nothing
// is cleaned up.
func Encode(dst io.Writer, src io.ReadSeeker, blockSize int) error {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	h, err := BuildHistogram(src, blockSize)
	if err != nil {
		return err
	}

	if err := WriteHeader(dst, h); err != nil {
		return err
	}
	if h.Len() == 0 {
		return nil
	}
	table := NewCodeTable(h)

	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return err
	}
	buf := make([]byte, blockSize)
	rem := ""
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			var sb strings.Builder
			for _, b := range buf[:n] {
				code := table.Code(b)
				if code == "" {
					return UnencodableByteError(b)
				}
				sb.WriteString(code)
			}
			var packed []byte
			packed, rem = packBits(rem, sb.String())
			if len(packed) > 0 {
				if _, err := dst.Write(packed); err != nil {
					return err
				}
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return rerr
		}
	}
	if rem != "" {
		if _, err := dst.Write([]byte{padByte(rem)}); err != nil {
			return err
		}
	}
	return nil
}

// Compress opens the named file and encodes it onto dst.
func Compress(dst io.Writer, srcPath string, blockSize int) error {
	f, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return Encode(dst, f, blockSize)
}
