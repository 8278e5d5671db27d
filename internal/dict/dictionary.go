// internal/dict/dictionary.go
//
// Compact, read-only word dictionary used by the grid solver.
//
// Responsibilities:
//   - Hold a sorted list of words as raw byte sequences (one shared buffer).
//   - Answer exact membership (Contains) and prefix existence (ContainsPrefix)
//     with a binary search over the sorted entries.
//
// Notes:
//   - Entries are expected to be upper-case ASCII, one per line, already sorted
//     by byte value. New does not sort, trim or de-duplicate its input.
//   - The comparator is bytes.Compare: bytewise, shorter sorts first on a
//     shared prefix. Source files must be sorted the same way (LC_ALL=C sort).
//   - A Dictionary is immutable once built and safe for concurrent readers.
//   - Version is an xxhash of the entries; dictionaries with the same
//     entries share a version.

package dict

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Dictionary is an immutable, sorted word list.
type Dictionary struct {
	words   [][]byte // sorted entries, sub-slices of one buffer
	version uint64
}

// New reads newline-delimited words from r.
// Every run of bytes terminated by '\n' becomes one entry; a trailing run
// without a newline is kept when it is non-empty. Nothing else is trimmed.
// If r cannot be fully read, no Dictionary is returned.
func New(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dict: read: %w", err)
	}
	return &Dictionary{words: split(data), version: xxhash.Sum64(data)}, nil
}

// FromWords builds a Dictionary from an in-memory list.
// Unlike New it normalizes to upper case, sorts and drops duplicates,
// since the list does not come from a prepared asset.
func FromWords(words []string) *Dictionary {
	norm := make([]string, 0, len(words))
	for _, w := range words {
		norm = append(norm, strings.ToUpper(w))
	}
	slices.Sort(norm)
	norm = slices.Compact(norm)

	h := xxhash.New()
	entries := make([][]byte, len(norm))
	for i, w := range norm {
		entries[i] = []byte(w)
		_, _ = h.WriteString(w)
		_, _ = h.WriteString("\n")
	}
	return &Dictionary{words: entries, version: h.Sum64()}
}

// split cuts data at '\n'. Entries share the backing array; the full slice
// expression caps each one so an append can never spill into its neighbour.
func split(data []byte) [][]byte {
	words := make([][]byte, 0, bytes.Count(data, []byte{'\n'})+1)
	start := 0
	for i, b := range data {
		if b == '\n' {
			words = append(words, data[start:i:i])
			start = i + 1
		}
	}
	if start < len(data) {
		words = append(words, data[start:len(data):len(data)])
	}
	return words
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Version fingerprints the entries.
func (d *Dictionary) Version() uint64 {
	return d.version
}

// Contains reports whether word is an entry of the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, found := d.search(encode(word))
	return found
}

// ContainsPrefix reports whether any entry starts with prefix.
//
// An exact hit is a prefix of itself. Otherwise the entry at the insertion
// point is the smallest one greater than prefix, so it is the only candidate
// that can start with it.
func (d *Dictionary) ContainsPrefix(prefix string) bool {
	key := encode(prefix)
	i, found := d.search(key)
	if found {
		return true
	}
	if i < len(d.words) {
		return bytes.HasPrefix(d.words[i], key)
	}
	return false
}

func (d *Dictionary) search(key []byte) (int, bool) {
	return slices.BinarySearchFunc(d.words, key, bytes.Compare)
}

// encode maps a word onto the stored representation: one byte per
// character of the ASCII domain.
func encode(word string) []byte {
	return []byte(word)
}
