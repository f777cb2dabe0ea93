package model

import "fmt"

// ConfigError indicates an invalid search configuration, e.g. neither a
// local database path nor a chunk count was set.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid search config: " + e.Reason
}

// ProcessError is returned when the search binary exits non-zero. Stderr
// carries the captured output verbatim, Chunk is -1 in non-chunked mode.
type ProcessError struct {
	Query    string
	Chunk    int
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("jackhmmer failed for query %s (chunk %d, exit code %d)\nstderr:\n%s",
		e.Query, e.Chunk, e.ExitCode, e.Stderr)
}

// RetrievalError is returned when a database chunk could not be fetched.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type RetrievalError struct {
	Chunk int
	URL   string
	Cause error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("unable to retrieve database chunk %d from %s: %v", e.Chunk, e.URL, e.Cause)
}

func (e *RetrievalError) Unwrap() error { return e.Cause }

// FormatError indicates an alignment container that could not be parsed.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "malformed stockholm alignment: " + e.Reason
}
