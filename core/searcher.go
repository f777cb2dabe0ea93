package core

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"msaforge/interfaces"
	"msaforge/model"
	"msaforge/stockholm"
)

type searcher struct {
	cfg    Config
	runner interfaces.ProcessRunner
}

// NewSearcher wires jackhmmer argument construction, scratch file
// handling and result truncation around a process runner.
func NewSearcher(cfg Config, runner interfaces.ProcessRunner) interfaces.Searcher {
	return &searcher{cfg: cfg, runner: runner}
}

// Search runs one query against one materialized database file. The
// alignment is written to a private scratch directory which is removed on
// every exit path, cancellation included.
func (s *searcher) Search(ctx context.Context, query model.QueryRequest, databasePath string) (model.SearchResult, error) {
	runID := uuid.NewString()

	tmpDir, err := os.MkdirTemp("", "jackhmmer-*")
	if err != nil {
		return model.SearchResult{}, fmt.Errorf("unable to create scratch dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			slog.Error("unable to remove scratch dir", "dir", tmpDir, "error", err)
		}
	}()

	stoPath := filepath.Join(tmpDir, "output.sto")
	tblPath := filepath.Join(tmpDir, "output.tbl")
	args := s.buildArgs(stoPath, tblPath, query.Path, databasePath)

	slog.Debug("starting jackhmmer", "run", runID, "query", query.Path, "db", databasePath)
	start := time.Now()
	_, stderr, exitCode, err := s.runner.Run(ctx, s.cfg.BinaryPath, args...)
	if err != nil {
		return model.SearchResult{}, fmt.Errorf("jackhmmer did not run for query %s: %w", query.Path, err)
	}
	if exitCode != 0 {
		return model.SearchResult{}, &model.ProcessError{
			Query:    query.Path,
			Chunk:    -1,
			ExitCode: exitCode,
			Stderr:   string(stderr),
		}
	}
	slog.Debug("jackhmmer finished", "run", runID, "query", query.Path, "took", time.Since(start))

	var tbl string
	if s.cfg.GetTblout {
		data, err := os.ReadFile(tblPath)
		if err != nil {
			return model.SearchResult{}, fmt.Errorf("reading tblout for query %s: %w", query.Path, err)
		}
		tbl = string(data)
	}

	raw, err := os.ReadFile(stoPath)
	if err != nil {
		return model.SearchResult{}, fmt.Errorf("reading alignment for query %s: %w", query.Path, err)
	}
	sto, err := stockholm.Truncate(string(raw), query.MaxSequences)
	if err != nil {
		return model.SearchResult{}, err
	}

	return model.SearchResult{
		Sto:      sto,
		Tbl:      tbl,
		Stderr:   string(stderr),
		ExitCode: exitCode,
		NIter:    s.cfg.NumIter,
		EValue:   s.cfg.EValue,
		ZValue:   s.cfg.ZValue,
	}, nil
}

// buildArgs mirrors the jackhmmer invocation used for streamed chunk
// searches: stdout alignment is suppressed, the Stockholm output always
// goes to the scratch file.
func (s *searcher) buildArgs(stoPath, tblPath, queryPath, databasePath string) []string {
	args := []string{
		"-o", os.DevNull,
		"-A", stoPath,
		"--noali",
		"--F1", formatFloat(s.cfg.F1),
		"--F2", formatFloat(s.cfg.F2),
		"--F3", formatFloat(s.cfg.F3),
		"--incE", formatFloat(s.cfg.EValue),
		"-E", formatFloat(s.cfg.EValue),
		"--cpu", strconv.Itoa(s.cfg.NumCPU),
		"-N", strconv.Itoa(s.cfg.NumIter),
	}
	if s.cfg.GetTblout {
		args = append(args, "--tblout", tblPath)
	}
	if s.cfg.ZValue > 0 {
		args = append(args, "-Z", strconv.FormatInt(s.cfg.ZValue, 10))
	}
	if s.cfg.DomE > 0 {
		args = append(args, "--domE", formatFloat(s.cfg.DomE))
	}
	if s.cfg.IncdomE > 0 {
		args = append(args, "--incdomE", formatFloat(s.cfg.IncdomE))
	}
	return append(args, queryPath, databasePath)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
