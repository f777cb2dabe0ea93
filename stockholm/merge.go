package stockholm

import (
	"math"
	"sort"
	"strings"

	"msaforge/model"
)

type record struct {
	name   string
	seq    string
	desc   string
	eValue float64
}

// MergeChunked combines per-chunk search results for one query into a
// single alignment. The query row is taken from the first chunk only,
// hits are sorted by ascending E-value across all chunks (targets missing
// from tblout sort last), and the merged alignment is capped at maxHits
// records including the query. maxHits <= 0 keeps everything.
func MergeChunked(results []model.SearchResult, maxHits int) (*MSA, error) {
	var records []record
	for chunk, res := range results {
		msa, err := Parse(res.Sto)
		if err != nil {
			return nil, err
		}
		eValues, err := ParseEValues(res.Tbl)
		if err != nil {
			return nil, err
		}
		for i, name := range msa.Names {
			if chunk != 0 && i == 0 {
				// the query aligns against itself in every chunk
				continue
			}
			target, _, _ := strings.Cut(name, "/")
			eValue, ok := eValues[target]
			if !ok {
				eValue = math.Inf(1)
			}
			records = append(records, record{
				name:   name,
				seq:    msa.Sequences[name],
				desc:   msa.Descriptions[name],
				eValue: eValue,
			})
		}
	}
	if len(records) == 0 {
		return nil, &model.FormatError{Reason: "no sequence records to merge"}
	}

	hits := records[1:]
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].eValue < hits[j].eValue })

	merged := &MSA{
		Sequences:    make(map[string]string, len(records)),
		Descriptions: make(map[string]string),
	}
	// duplicates are recognized by their ungapped sequence: the same
	// protein can show up under different names in different chunks
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if maxHits > 0 && len(merged.Names) >= maxHits {
			break
		}
		ungapped := ungap(r.seq)
		if seen[ungapped] {
			continue
		}
		seen[ungapped] = true
		merged.Names = append(merged.Names, r.name)
		merged.Sequences[r.name] = r.seq
		if r.desc != "" {
			merged.Descriptions[r.name] = r.desc
		}
	}
	return merged, nil
}

func ungap(seq string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '.' {
			return -1
		}
		return r
	}, seq)
}
