package dict

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, src string) *Dictionary {
	t.Helper()
	d, err := New(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func TestContainsAndPrefix(t *testing.T) {
	d := mustNew(t, "CAR\nCAT\nCATS\n")

	require.True(t, d.Contains("CAT"))
	require.True(t, d.Contains("CATS"))
	require.False(t, d.Contains("CA"))
	require.False(t, d.Contains("CATSS"))

	require.True(t, d.ContainsPrefix("CA"))
	require.True(t, d.ContainsPrefix("CAT"))
	require.False(t, d.ContainsPrefix("CZ"))
	require.False(t, d.ContainsPrefix("CATSX"))
	// Past the last entry.
	require.False(t, d.ContainsPrefix("D"))
}

func TestMembershipMatchesSource(t *testing.T) {
	src := []string{"A", "AB", "ABC", "ABD", "B", "BAD", "BED", "ZOO"}
	d := mustNew(t, strings.Join(src, "\n")+"\n")
	require.Equal(t, len(src), d.Len())

	for _, w := range src {
		require.Truef(t, d.Contains(w), "expected %q to be present", w)
	}
	for _, w := range []string{"", "AA", "ABE", "BA", "BE", "Z", "ZOOS", "abc"} {
		require.Falsef(t, d.Contains(w), "expected %q to be absent", w)
	}
}

func TestPrefixMonotonicity(t *testing.T) {
	d := mustNew(t, "ARE\nART\nARTS\nBAT\nBATH\nTAB\n")
	for _, p := range []string{"AX", "BB", "TABS", "Q", "ARTSY"} {
		require.False(t, d.ContainsPrefix(p))
		for c := byte('A'); c <= 'Z'; c++ {
			require.Falsef(t, d.ContainsPrefix(p+string(c)), "extension %q of a dead prefix", p+string(c))
		}
	}
}

func TestNewSplitting(t *testing.T) {
	d := mustNew(t, "AB\nCD")
	require.Equal(t, 2, d.Len())
	require.True(t, d.Contains("CD"), "trailing run without newline is kept")

	d = mustNew(t, "AB\nCD\n")
	require.Equal(t, 2, d.Len())

	// Only '\n' delimits; a carriage return stays part of the entry.
	d = mustNew(t, "AB\r\nCD\n")
	require.False(t, d.Contains("AB"))
	require.True(t, d.Contains("AB\r"))
}

func TestEmptyDictionary(t *testing.T) {
	d := mustNew(t, "")
	require.Zero(t, d.Len())
	require.False(t, d.Contains("A"))
	require.False(t, d.ContainsPrefix("A"))
}

func TestNewReadError(t *testing.T) {
	boom := errors.New("boom")
	d, err := New(iotest.ErrReader(boom))
	require.Nil(t, d)
	require.ErrorIs(t, err, boom)

	d, err = Read(iotest.TimeoutReader(strings.NewReader("AB\nCD\n")))
	require.Nil(t, d)
	require.Error(t, err)
}

func TestReadGzip(t *testing.T) {
	const src = "ACE\nACT\nBAD\nBADE\n"

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(src))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	zipped, err := Read(&buf)
	require.NoError(t, err)
	plain, err := Read(strings.NewReader(src))
	require.NoError(t, err)

	require.Equal(t, plain.Len(), zipped.Len())
	require.Equal(t, plain.words, zipped.words)
	require.Equal(t, plain.Version(), zipped.Version())
}

func TestVersion(t *testing.T) {
	a := mustNew(t, "CAT\nCATS\n")
	b := mustNew(t, "CAT\nCATS\n")
	c := mustNew(t, "CAT\n")

	require.Equal(t, a.Version(), b.Version())
	require.NotEqual(t, a.Version(), c.Version())
	require.Equal(t, a.Version(), FromWords([]string{"cats", "cat"}).Version())
}

func TestFromWords(t *testing.T) {
	d := FromWords([]string{"cats", "cat", "CAR", "cat"})
	require.Equal(t, 3, d.Len())
	require.True(t, d.Contains("CAT"))
	require.True(t, d.Contains("CATS"))
	require.True(t, d.ContainsPrefix("CA"))
}

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)
	require.Greater(t, d.Len(), 100)
	require.True(t, d.Contains("CAT"))

	for i := 1; i < len(d.words); i++ {
		require.Negativef(t, bytes.Compare(d.words[i-1], d.words[i]), "embedded list out of order at %q", d.words[i])
	}
}
