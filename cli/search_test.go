package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadQueries(t *testing.T) {
	workDir := t.TempDir()
	queryDir := t.TempDir()

	raw := ">sp|P1|test some protein\nmkv laa\nghik\n"
	src := filepath.Join(queryDir, "p1.fa")
	require.NoError(t, os.WriteFile(src, []byte(raw), 0o644))

	queries, err := loadQueries([]string{src}, workDir)
	require.NoError(t, err)
	require.Len(t, queries, 1)
	assert.Equal(t, filepath.Join(workDir, "p1.fasta"), queries[0].Path)

	// the canonical file is what jackhmmer sees: cleaned, uppercased,
	// single >query record
	data, err := os.ReadFile(queries[0].Path)
	require.NoError(t, err)
	assert.Equal(t, ">query\nMKVLAAGHIK\n", string(data))
}

func TestLoadQueries_InvalidSequence(t *testing.T) {
	queryDir := t.TempDir()
	src := filepath.Join(queryDir, "bad.fasta")
	require.NoError(t, os.WriteFile(src, []byte(">q\nMKXVLAA\n"), 0o644))

	_, err := loadQueries([]string{src}, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amino acids")
	assert.Contains(t, err.Error(), src)
}

func TestChunkRange(t *testing.T) {
	t.Run("unset end means last chunk", func(t *testing.T) {
		start, end, err := chunkRange(0, -1, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, start)
		assert.Equal(t, 3, end)
	})

	t.Run("explicit zero end means chunk 0 only", func(t *testing.T) {
		start, end, err := chunkRange(0, 0, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})

	t.Run("end past the last chunk", func(t *testing.T) {
		_, _, err := chunkRange(0, 4, 4)
		assert.Error(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		_, _, err := chunkRange(2, 1, 4)
		assert.Error(t, err)
	})
}
