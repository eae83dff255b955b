package huffman

import (
	"io"
)

// A Histogram counts how many times each byte value occurs in a source
// stream. Iteration order of Entries is the order in which distinct values
// were first observed, which is also the order header entries are written in.
type Histogram struct {
	counts [256]uint64
	order  []byte
}

// A HistogramEntry is one distinct byte value and its occurrence count.
type HistogramEntry struct {
	Value byte
	Count uint64
}

// add records n further occurrences of b. Zero counts are ignored.
func (h *Histogram) add(b byte, n uint64) {
	if n == 0 {
		return
	}
	if h.counts[b] == 0 {
		h.order = append(h.order, b)
	}
	h.counts[b] += n
}

// Len returns the number of distinct byte values.
func (h *Histogram) Len() int { return len(h.order) }

// Count returns the number of occurrences of b.
func (h *Histogram) Count(b byte) uint64 { return h.counts[b] }

// Total returns the sum of all counts, which is the number of bytes the
// histogram was built from.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, b := range h.order {
		total += h.counts[b]
	}
	return total
}

// Entries returns the histogram entries in first-seen order.
func (h *Histogram) Entries() []HistogramEntry {
	entries := make([]HistogramEntry, 0, len(h.order))
	for _, b := range h.order {
		entries = append(entries, HistogramEntry{Value: b, Count: h.counts[b]})
	}
	return entries
}

// BuildHistogram reads r to exhaustion and counts every byte. Reading is done
// in blockSize chunks; the result is identical for any block size.
// blockSize <= 0 selects DefaultBlockSize. An empty stream yields an empty
// histogram. Read errors are returned unchanged.
func BuildHistogram(r io.Reader, blockSize int) (*Histogram, error) {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	h := &Histogram{}
	buf := make([]byte, blockSize)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			h.add(b, 1)
		}
		if err == io.EOF {
			return h, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
