package huffman

import (
	"bytes"
	"fmt"
	"reflect"
	"testing"
	"testing/iotest"
)

func TestBuildHistogram(t *testing.T) {
	h, err := BuildHistogram(bytes.NewReader([]byte("abracadabra")), 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	want := []HistogramEntry{
		{Value: 'a', Count: 5},
		{Value: 'b', Count: 2},
		{Value: 'r', Count: 2},
		{Value: 'c', Count: 1},
		{Value: 'd', Count: 1},
	}
	if got := h.Entries(); !reflect.DeepEqual(got, want) {
		t.Fatalf("%v", got)
	}
	if h.Len() != 5 {
		t.Fatalf("%d", h.Len())
	}
	if h.Total() != 11 {
		t.Fatalf("%d", h.Total())
	}
	if h.Count('a') != 5 || h.Count('z') != 0 {
		t.Fatalf("%d %d", h.Count('a'), h.Count('z'))
	}
}

// TestBuildHistogramBlockSizes checks that the block size has no effect on
// the result, including entry order.
func TestBuildHistogramBlockSizes(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 100)
	want, err := BuildHistogram(bytes.NewReader(data), 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	for _, blockSize := range []int{1, 7, 1023, 1024, len(data), len(data) + 1} {
		h, err := BuildHistogram(bytes.NewReader(data), blockSize)
		if err != nil {
			t.Fatalf("%d: %v", blockSize, err)
		}
		if !reflect.DeepEqual(h.Entries(), want.Entries()) {
			t.Errorf("%d: %v", blockSize, h.Entries())
		}
	}
}

func TestBuildHistogramEmpty(t *testing.T) {
	h, err := BuildHistogram(bytes.NewReader(nil), 0)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if h.Len() != 0 || h.Total() != 0 {
		t.Fatalf("%d %d", h.Len(), h.Total())
	}
	if len(h.Entries()) != 0 {
		t.Fatalf("%v", h.Entries())
	}
}

// TestBuildHistogramReadError checks that a read failure is returned
// unchanged.
func TestBuildHistogramReadError(t *testing.T) {
	readErr := fmt.Errorf("disk gone")
	if _, err := BuildHistogram(iotest.ErrReader(readErr), 0); err != readErr {
		t.Fatalf("%v", err)
	}
}
