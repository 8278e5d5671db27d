// internal/dict/load.go
//
// Dictionary sources: files on disk (plain or gzip) and the embedded default.
// Compression is detected from the gzip magic bytes, so callers never need
// to know how a source was stored.

package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"

	"github.com/mntnorv/wrdl/assets"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Read builds a Dictionary from r, decompressing it first if it is gzip data.
func Read(r io.Reader) (*Dictionary, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("dict: peek: %w", err)
	}
	if len(head) == len(gzipMagic) && head[0] == gzipMagic[0] && head[1] == gzipMagic[1] {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("dict: gzip: %w", err)
		}
		defer zr.Close()
		return New(zr)
	}
	return New(br)
}

// Load reads the dictionary stored at path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// Default returns the dictionary built from the embedded word list.
func Default() (*Dictionary, error) {
	r, err := assets.DefaultWords()
	if err != nil {
		return nil, fmt.Errorf("dict: embedded words: %w", err)
	}
	d, err := New(r)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", "embedded").Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}
