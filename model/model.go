package model

// QueryRequest is one input sequence file to search. MaxSequences bounds
// the number of records kept in the per-chunk alignment output, 0 keeps
// everything.
type QueryRequest struct {
	Path         string
	MaxSequences int
}

// SearchResult holds the output of one jackhmmer run against one database
// chunk. Sto is the Stockholm alignment, Tbl the tabular per-hit summary
// (empty unless tblout was requested). EValue and ZValue echo the
// configuration the run used so downstream merging can recompute stats.
type SearchResult struct {
	Sto      string
	Tbl      string
	Stderr   string
	ExitCode int
	NIter    int
	EValue   float64
	ZValue   int64
}
