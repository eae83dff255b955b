package main

import (
	"flag"
	"log"
	"os"

	huffman "github.com/CSchneider1970/huffman-coding"
)

func main() {
	flag.Parse()
	if err := huffman.Decode(os.Stdout, os.Stdin); err != nil {
		log.Fatalf("%v", err)
	}
}
