package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5175", c.Port)
	require.Equal(t, "default", c.DictName)
	require.Empty(t, c.DictFile)
	require.Equal(t, 8, c.MaxWordLength)
	require.Equal(t, 4, c.BoardSize)
	require.Zero(t, c.SearchWorkers)
	require.Equal(t, 10000, c.MaxGames)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DICT_NAME", "en")
	t.Setenv("DICT_FILE", "/data/sowpods.txt.gz")
	t.Setenv("DICT_EXTRA", "lt:/data/lt.txt,de:/data/de.txt")
	t.Setenv("MAX_WORD_LENGTH", "10")
	t.Setenv("SEARCH_WORKERS", "4")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9000", c.Port)
	require.Equal(t, "en", c.DictName)
	require.Equal(t, "/data/sowpods.txt.gz", c.DictFile)
	require.Equal(t, map[string]string{"lt": "/data/lt.txt", "de": "/data/de.txt"}, c.ExtraDicts)
	require.Equal(t, 10, c.MaxWordLength)
	require.Equal(t, 4, c.SearchWorkers)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("MAX_WORD_LENGTH", "0")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsNegativeMaxGames(t *testing.T) {
	t.Setenv("MAX_GAMES", "-1")
	_, err := Load()
	require.ErrorContains(t, err, "MAX_GAMES")
}

func TestLoadRejectsUnparsable(t *testing.T) {
	t.Setenv("BOARD_SIZE", "four")
	_, err := Load()
	require.ErrorContains(t, err, "parse env")
}

func TestValidateBoardSize(t *testing.T) {
	c := Config{DictName: "x", MaxWordLength: 8, BoardSize: 9, MaxBoardSize: 8}
	require.Error(t, c.Validate())
	c.BoardSize = 5
	require.NoError(t, c.Validate())
}
