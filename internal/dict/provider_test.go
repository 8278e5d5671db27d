package dict

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProviderGetLoadsOnce(t *testing.T) {
	path := writeWords(t, t.TempDir(), "en.txt", "CAT\nDOG\n")
	p := NewProvider()
	p.Register("en", path)

	var wg sync.WaitGroup
	got := make([]*Dictionary, 16)
	errs := make([]error, len(got))
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = p.Get("en")
		}(i)
	}
	wg.Wait()

	for i, d := range got {
		require.NoError(t, errs[i])
		require.Same(t, got[0], d)
	}
	require.True(t, got[0].Contains("DOG"))
}

func TestProviderUnknownName(t *testing.T) {
	p := NewProvider()
	_, err := p.Get("fr")
	require.ErrorIs(t, err, ErrUnknown)
}

func TestProviderReloadSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := writeWords(t, dir, "en.txt", "CAT\n")
	p := NewProvider()
	p.Register("en", path)

	old, err := p.Get("en")
	require.NoError(t, err)

	writeWords(t, dir, "en.txt", "CAT\nCOW\n")
	fresh, err := p.Reload("en")
	require.NoError(t, err)

	// The old snapshot is untouched; new readers see the new one.
	require.False(t, old.Contains("COW"))
	require.True(t, fresh.Contains("COW"))
	cur, err := p.Get("en")
	require.NoError(t, err)
	require.Same(t, fresh, cur)
}

func TestProviderFailedReloadKeepsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := writeWords(t, dir, "en.txt", "CAT\n")
	p := NewProvider()
	p.Register("en", path)

	before, err := p.Get("en")
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))
	_, err = p.Reload("en")
	require.Error(t, err)

	after, err := p.Get("en")
	require.NoError(t, err)
	require.Same(t, before, after)
}

func TestProviderMissingFile(t *testing.T) {
	p := NewProvider()
	p.Register("en", filepath.Join(t.TempDir(), "missing.txt"))
	d, err := p.Get("en")
	require.Nil(t, d)
	require.Error(t, err)
}

func TestProviderEmbeddedAndSet(t *testing.T) {
	p := NewProvider()
	p.Register("default", "")
	d, err := p.Get("default")
	require.NoError(t, err)
	require.True(t, d.Contains("CAT"))

	custom := FromWords([]string{"xyz"})
	p.Set("custom", custom)
	got, err := p.Get("custom")
	require.NoError(t, err)
	require.Same(t, custom, got)
	require.ElementsMatch(t, []string{"default", "custom"}, p.Names())
}
