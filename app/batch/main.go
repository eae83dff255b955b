package main

import (
	"bytes"
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	huffman "github.com/CSchneider1970/huffman-coding"
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var (
	srcDir  = flag.String("s", "", "source directory")
	dstDir  = flag.String("d", "", "destination directory")
	compare = flag.Bool("c", false, "also measure zstd and bzip2 sizes")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if err := run(*srcDir, *dstDir, *compare); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(srcDir, dstDir string, compare bool) error {
	srcs, err := os.ReadDir(srcDir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	for _, entry := range srcs {
		if entry.IsDir() {
			continue
		}
		src := filepath.Join(srcDir, entry.Name())
		dst := filepath.Join(dstDir, entry.Name()+".huff")
		if err := compressFile(dst, src); err != nil {
			return errors.Wrap(err, "")
		}

		srcInfo, err := os.Stat(src)
		if err != nil {
			return errors.Wrap(err, "")
		}
		dstInfo, err := os.Stat(dst)
		if err != nil {
			return errors.Wrap(err, "")
		}
		var ratio float64
		if srcInfo.Size() > 0 {
			ratio = 100 * float64(dstInfo.Size()) / float64(srcInfo.Size())
		}

		if !compare {
			log.Printf("%s: %d -> %d bytes (%.1f%%)", entry.Name(), srcInfo.Size(), dstInfo.Size(), ratio)
			continue
		}
		zn, err := zstdSize(src)
		if err != nil {
			return errors.Wrap(err, "")
		}
		bn, err := bzip2Size(src)
		if err != nil {
			return errors.Wrap(err, "")
		}
		log.Printf("%s: %d -> %d bytes (%.1f%%), zstd %d, bzip2 %d", entry.Name(), srcInfo.Size(), dstInfo.Size(), ratio, zn, bn)
	}
	return nil
}

func compressFile(dst, src string) error {
	w, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if err := huffman.Compress(w, src, 0); err != nil {
		w.Close()
		return errors.Wrap(err, "")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// zstdSize returns the size fpath compresses to under zstd.
func zstdSize(fpath string) (int64, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	defer f.Close()

	buf := bytes.NewBuffer(nil)
	enc, err := zstd.NewWriter(buf)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	if _, err := io.Copy(enc, f); err != nil {
		return -1, errors.Wrap(err, "")
	}
	if err := enc.Close(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	return int64(buf.Len()), nil
}

// bzip2Size returns the size fpath compresses to under bzip2.
func bzip2Size(fpath string) (int64, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	defer f.Close()

	buf := bytes.NewBuffer(nil)
	bw, err := bzip2.NewWriter(buf, &bzip2.WriterConfig{Level: bzip2.BestCompression})
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	if _, err := io.Copy(bw, f); err != nil {
		return -1, errors.Wrap(err, "")
	}
	if err := bw.Close(); err != nil {
		return -1, errors.Wrap(err, "")
	}
	return int64(buf.Len()), nil
}
