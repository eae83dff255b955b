package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	huffman "github.com/CSchneider1970/huffman-coding"
	"github.com/pkg/errors"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(name); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(fpath string) error {
	f, err := os.Open(fpath)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "")
	}

	h, err := huffman.ReadHeader(f)
	if err != nil {
		return errors.Wrap(err, "")
	}
	table := huffman.NewCodeTable(h)
	entries := h.Entries()

	headerSize := int64(6 + 5*len(entries))
	var payloadBits uint64
	for _, e := range entries {
		payloadBits += e.Count * uint64(len(table.Code(e.Value)))
	}
	payloadBytes := (payloadBits + 7) / 8

	log.Printf("%s: %d bytes, %d header + %d payload", fpath, info.Size(), headerSize, info.Size()-headerSize)
	log.Printf("%d distinct bytes, %d symbols, %d payload bits, %d padding bits", h.Len(), h.Total(), payloadBits, payloadBytes*8-payloadBits)
	if got := info.Size() - headerSize; got != int64(payloadBytes) {
		log.Printf("payload is %d bytes, want %d", got, payloadBytes)
	}
	if h.Total() > 0 {
		log.Printf("original size %d, compressed to %.1f%%", h.Total(), 100*float64(info.Size())/float64(h.Total()))
	}

	if err := display(entries, table); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// display prints one line per header entry with its frequency and code.
func display(entries []huffman.HistogramEntry, table *huffman.CodeTable) error {
	buf := bytes.NewBuffer(nil)
	for _, e := range entries {
		if _, err := fmt.Fprintf(buf, "\n%4d %q count=%d code=%s", e.Value, e.Value, e.Count, table.Code(e.Value)); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("%d entries:%s", len(entries), buf.Bytes())
	return nil
}
