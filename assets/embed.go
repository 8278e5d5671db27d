// assets/embed.go
//
// Embedded fallback word list so the server can run without a configured
// dictionary file. words.txt is upper-case, one word per line, sorted by
// byte value (LC_ALL=C sort -u).

package assets

import (
	"bytes"
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

const defaultWords = "words.txt"

// DefaultWords opens the embedded word list.
func DefaultWords() (io.Reader, error) {
	b, err := FS.ReadFile(defaultWords)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}
