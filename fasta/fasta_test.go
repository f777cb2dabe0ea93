package fasta

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	assert.Equal(t, "MKVLAA", Clean(" mkv\nla-a2 "))
	assert.Equal(t, "", Clean("123 -*"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("ACDEFGHIKLMNPQRSTVWY"))

	err := Validate("MKVXZ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amino acids")

	assert.Error(t, Validate(""))
}

func TestWrite_WrapsAt80(t *testing.T) {
	seq := strings.Repeat("M", 200)
	path := filepath.Join(t.TempDir(), "query.fasta")
	require.NoError(t, Write(path, seq))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, ">query", lines[0])
	assert.Len(t, lines, 4)
	assert.Len(t, lines[1], 80)
	assert.Len(t, lines[2], 80)
	assert.Len(t, lines[3], 40)
}
