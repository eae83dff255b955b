package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	huffman "github.com/CSchneider1970/huffman-coding"
)

var blockSize = flag.Int("blocksize", huffman.DefaultBlockSize, "number of source bytes read per block")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	name := flag.Arg(0)
	if name == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := huffman.Compress(os.Stdout, name, *blockSize); err != nil {
		log.Fatalf("%v", err)
	}
}
