package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"msaforge/chunkstore"
	"msaforge/config"
	"msaforge/core"
	"msaforge/db"
	"msaforge/fasta"
	"msaforge/interfaces"
	"msaforge/model"
	"msaforge/runner"
	"msaforge/stockholm"
)

var searchCmd = &cobra.Command{
	Use:   "search [query.fasta...]",
	Short: "Search query sequences against the configured databases",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cfg config.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			log.Fatalf("Failed to unmarshal config: %v", err)
		}

		databaseName, _ := cmd.Flags().GetString("database")

		queries, err := loadQueries(args, cfg.Runtime.WorkDir)
		if err != nil {
			log.Fatalf("Invalid query: %v", err)
		}

		var handler interfaces.DatabaseHandler
		if cfg.InfluxDB.URL != "" {
			handler = db.NewHandler(cfg.InfluxDB)
			defer handler.Close()
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		for _, database := range cfg.Databases {
			if databaseName != "" && database.Name != databaseName {
				continue
			}
			if err := runSweep(ctx, cfg, database, queries, handler); err != nil {
				slog.Error("sweep failed", "database", database.Name, "error", err)
				os.Exit(1)
			}
		}
	},
}

func init() {
	searchCmd.Flags().String("database", "", "restrict the sweep to one configured database")
	rootCmd.AddCommand(searchCmd)
}

// loadQueries checks every query file up front so a bad sequence fails
// the run before any chunk is downloaded. Each query is rewritten as a
// canonical single-record FASTA file in the working directory, which is
// what jackhmmer gets to see.
func loadQueries(paths []string, workDir string) ([]model.QueryRequest, error) {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, err
	}
	queries := make([]model.QueryRequest, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sequence := fasta.Clean(sequenceOf(string(data)))
		if err := fasta.Validate(sequence); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		canonical := canonicalQueryPath(workDir, path)
		if err := fasta.Write(canonical, sequence); err != nil {
			return nil, err
		}
		queries = append(queries, model.QueryRequest{Path: canonical})
	}
	return queries, nil
}

func canonicalQueryPath(workDir, queryPath string) string {
	base := strings.TrimSuffix(filepath.Base(queryPath), filepath.Ext(queryPath))
	return filepath.Join(workDir, base+".fasta")
}

func sequenceOf(content string) string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, ">") {
			continue
		}
		b.WriteString(strings.TrimSpace(line))
	}
	return b.String()
}

// runSweep searches all queries against one database and writes one merged
// Stockholm file per query to the output directory.
func runSweep(ctx context.Context, cfg config.Config, database config.DatabaseConfig, queries []model.QueryRequest, handler interfaces.DatabaseHandler) error {
	slog.Info("starting sweep", "database", database.Name, "queries", len(queries), "chunks", database.Chunks)

	for qi := range queries {
		queries[qi].MaxSequences = database.MaxHits
	}

	coreCfg := core.Config{
		BinaryPath:   cfg.Jackhmmer.Binary,
		DatabaseName: database.Name,
		NumCPU:       cfg.Jackhmmer.CPU,
		NumIter:      cfg.Jackhmmer.Iterations,
		EValue:       cfg.Jackhmmer.EValue,
		DomE:         cfg.Jackhmmer.DomE,
		IncdomE:      cfg.Jackhmmer.IncdomE,
		F1:           cfg.Jackhmmer.F1,
		F2:           cfg.Jackhmmer.F2,
		F3:           cfg.Jackhmmer.F3,
		ZValue:       database.ZValue,
		// merging chunk results needs per-target E-values
		GetTblout:      cfg.Jackhmmer.Tblout || database.Chunks > 0,
		MaxConcurrency: cfg.Runtime.Concurrency,
		OnChunkDone: func(chunk int) {
			slog.Info("chunk done", "database", database.Name, "chunk", chunk, "of", database.Chunks)
		},
	}

	var retriever interfaces.ChunkRetriever
	if database.Chunks > 0 {
		database.Path = chunkstore.ResolveMirror(ctx, http.DefaultClient, database.Path, cfg.Mirrors)
		var err error
		retriever, err = chunkstore.ForDatabase(ctx, database, cfg.Runtime)
		if err != nil {
			return err
		}
		coreCfg.NumChunks = database.Chunks
	} else {
		coreCfg.DatabasePath = database.Path
	}

	c, err := core.New(coreCfg, core.NewSearcher(coreCfg, runner.New()), retriever, handler)
	if err != nil {
		return err
	}
	results, err := c.QueryMultiple(ctx, queries)
	if err != nil {
		return err
	}

	for qi, query := range queries {
		sto, err := finalAlignment(results[qi], database)
		if err != nil {
			return fmt.Errorf("query %s: %w", query.Path, err)
		}
		outPath := outputPath(cfg.Runtime.OutDir, query.Path, database.Name)
		if err := os.WriteFile(outPath, []byte(sto), 0o644); err != nil {
			return err
		}
		slog.Info("wrote alignment", "query", query.Path, "output", outPath)
	}
	return nil
}

func finalAlignment(results []model.SearchResult, database config.DatabaseConfig) (string, error) {
	if database.Chunks == 0 {
		return results[0].Sto, nil
	}
	merged, err := stockholm.MergeChunked(results, database.MaxHits)
	if err != nil {
		return "", err
	}
	return merged.String(), nil
}

func outputPath(outDir, queryPath, databaseName string) string {
	base := strings.TrimSuffix(filepath.Base(queryPath), filepath.Ext(queryPath))
	return filepath.Join(outDir, fmt.Sprintf("%s_%s.sto", base, databaseName))
}
