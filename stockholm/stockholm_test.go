package stockholm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msaforge/model"
)

func containerWithRecords(n int) string {
	var b strings.Builder
	b.WriteString("# STOCKHOLM 1.0\n\n")
	b.WriteString("#=GS query DE the input sequence\n")
	for i := 1; i < n; i++ {
		fmt.Fprintf(&b, "#=GS seq%d DE hit number %d\n", i, i)
	}
	b.WriteString("#=GC RF xxxxxx\n")
	b.WriteString("query MKVLAA\n")
	for i := 1; i < n; i++ {
		fmt.Fprintf(&b, "seq%d MKV-AA\n", i)
	}
	b.WriteString("//\n")
	return b.String()
}

func TestParse(t *testing.T) {
	msa, err := Parse(containerWithRecords(4))
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "seq1", "seq2", "seq3"}, msa.Names)
	assert.Equal(t, "MKVLAA", msa.Sequences["query"])
	assert.Equal(t, "hit number 2", msa.Descriptions["seq2"])
}

func TestParse_InterleavedBlocks(t *testing.T) {
	sto := "# STOCKHOLM 1.0\n\nquery MKV\nseq1 MK-\n\nquery LAA\nseq1 LAA\n//\n"
	msa, err := Parse(sto)
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "seq1"}, msa.Names)
	assert.Equal(t, "MKVLAA", msa.Sequences["query"])
	assert.Equal(t, "MK-LAA", msa.Sequences["seq1"])
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := Parse("query MKVLAA\n//\n")
	var formatErr *model.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestTruncate(t *testing.T) {
	out, err := Truncate(containerWithRecords(10), 3)
	require.NoError(t, err)

	msa, err := Parse(out)
	require.NoError(t, err, "truncated container must remain parseable")
	assert.Equal(t, []string{"query", "seq1", "seq2"}, msa.Names, "first 3 records in original order")

	assert.Contains(t, out, "# STOCKHOLM 1.0")
	assert.Contains(t, out, "#=GC RF")
	assert.Contains(t, out, "//")
	assert.NotContains(t, out, "seq3 ")
	assert.NotContains(t, out, "#=GS seq3")
}

func TestTruncate_Identity(t *testing.T) {
	in := containerWithRecords(10)
	out, err := Truncate(in, 0)
	require.NoError(t, err)
	assert.Equal(t, in, out, "unset bound returns input unchanged")
}

func TestTruncate_LargerThanInput(t *testing.T) {
	in := containerWithRecords(4)
	out, err := Truncate(in, 100)
	require.NoError(t, err)
	msa, err := Parse(out)
	require.NoError(t, err)
	assert.Len(t, msa.Names, 4)
}

func TestTruncate_InterruptedContainer(t *testing.T) {
	// no terminator, as if jackhmmer was killed mid-write
	in := "# STOCKHOLM 1.0\n\nquery MKV\nseq1 MK-\nseq2 M--\nseq3 -KV"
	out, err := Truncate(in, 2)
	require.NoError(t, err)
	msa, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "seq1"}, msa.Names)
}

func TestTruncate_MissingHeader(t *testing.T) {
	_, err := Truncate("query MKVLAA\n//\n", 3)
	var formatErr *model.FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestParseEValues(t *testing.T) {
	tbl := "# comment line\n" +
		"seq1 - query - 1e-50 200.0 0.1 1e-48 190.0 0.1 1.0 1 0 0 1 1 1 1 desc\n" +
		"seq2 - query - 0.002 20.0 0.0 0.003 18.0 0.0 1.0 1 0 0 1 1 1 1 desc\n"
	ev, err := ParseEValues(tbl)
	require.NoError(t, err)
	assert.Equal(t, float64(0), ev["query"], "query is seeded with zero")
	assert.Equal(t, 1e-50, ev["seq1"])
	assert.Equal(t, 0.002, ev["seq2"])
}

func TestParseEValues_Malformed(t *testing.T) {
	_, err := ParseEValues("seq1 - query -\n")
	var formatErr *model.FormatError
	assert.ErrorAs(t, err, &formatErr)

	_, err = ParseEValues("seq1 - query - not-a-number x x x x\n")
	assert.ErrorAs(t, err, &formatErr)
}

func chunkResult(sto, tbl string) model.SearchResult {
	return model.SearchResult{Sto: sto, Tbl: tbl}
}

func TestMergeChunked(t *testing.T) {
	chunk0 := chunkResult(
		"# STOCKHOLM 1.0\n\nquery MKV\nseqA MK-\n//\n",
		"seqA - query - 0.01 10 0 0.01 10 0 1 1 0 0 1 1 1 1 -\n",
	)
	chunk1 := chunkResult(
		"# STOCKHOLM 1.0\n\nquery MKV\nseqB M-V\n//\n",
		"seqB - query - 0.0001 30 0 0.0001 30 0 1 1 0 0 1 1 1 1 -\n",
	)

	merged, err := MergeChunked([]model.SearchResult{chunk0, chunk1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "seqB", "seqA"}, merged.Names,
		"query first, hits ordered by ascending e-value across chunks")
}

func TestMergeChunked_MaxHits(t *testing.T) {
	chunk0 := chunkResult(
		"# STOCKHOLM 1.0\n\nquery MKV\nseqA MK-\nseqB M-V\nseqC --V\n//\n",
		"seqA - query - 0.1 1 0 0.1 1 0 1 1 0 0 1 1 1 1 -\n"+
			"seqB - query - 0.001 5 0 0.001 5 0 1 1 0 0 1 1 1 1 -\n"+
			"seqC - query - 0.01 3 0 0.01 3 0 1 1 0 0 1 1 1 1 -\n",
	)
	merged, err := MergeChunked([]model.SearchResult{chunk0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "seqB"}, merged.Names)
}

func TestMergeChunked_DeduplicatesBySequence(t *testing.T) {
	chunk0 := chunkResult(
		"# STOCKHOLM 1.0\n\nquery MKV\nseqA MK-\n//\n",
		"seqA - query - 0.01 10 0 0.01 10 0 1 1 0 0 1 1 1 1 -\n",
	)
	// seqC aligns with a different gap layout but is the same protein as seqA
	chunk1 := chunkResult(
		"# STOCKHOLM 1.0\n\nquery MKV\nseqC -MK\nseqB M-V\n//\n",
		"seqC - query - 0.1 3 0 0.1 3 0 1 1 0 0 1 1 1 1 -\n"+
			"seqB - query - 0.0001 30 0 0.0001 30 0 1 1 0 0 1 1 1 1 -\n",
	)

	merged, err := MergeChunked([]model.SearchResult{chunk0, chunk1}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"query", "seqB", "seqA"}, merged.Names,
		"the higher e-value duplicate of seqA is dropped")
}

func TestMergeChunked_RoundTrip(t *testing.T) {
	chunk := chunkResult("# STOCKHOLM 1.0\n\nquery MKV\nseqA MK-\n//\n", "")
	merged, err := MergeChunked([]model.SearchResult{chunk}, 0)
	require.NoError(t, err)

	reparsed, err := Parse(merged.String())
	require.NoError(t, err)
	assert.Equal(t, merged.Names, reparsed.Names)
	assert.Equal(t, merged.Sequences, reparsed.Sequences)
}
