package cli

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"msaforge/chunkstore"
	"msaforge/config"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Pre-download a range of database chunks into the work directory",
	Run: func(cmd *cobra.Command, args []string) {
		var cfg config.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			log.Fatalf("Failed to unmarshal config: %v", err)
		}

		databaseName, _ := cmd.Flags().GetString("database")
		startChunk, _ := cmd.Flags().GetInt("start-chunk")
		endChunk, _ := cmd.Flags().GetInt("end-chunk")

		database, ok := findDatabase(cfg, databaseName)
		if !ok {
			log.Fatalf("Unknown database: %s", databaseName)
		}
		if database.Chunks == 0 {
			log.Fatalf("Database %s is not chunked", databaseName)
		}
		startChunk, endChunk, err := chunkRange(startChunk, endChunk, database.Chunks)
		if err != nil {
			log.Fatalf("%v", err)
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		database.Path = chunkstore.ResolveMirror(ctx, http.DefaultClient, database.Path, cfg.Mirrors)
		retriever, err := chunkstore.ForDatabase(ctx, database, cfg.Runtime)
		if err != nil {
			log.Fatalf("Failed to build retriever: %v", err)
		}

		for i := startChunk; i <= endChunk; i++ {
			path, err := retriever.Fetch(ctx, i)
			if err != nil {
				slog.Error("fetch failed", "chunk", i, "error", err)
				return
			}
			slog.Info("fetched chunk", "chunk", i, "path", path)
		}
	},
}

// chunkRange resolves the fetch flags against the database's chunk count.
// endChunk < 0 means "through the last chunk"; an explicit 0 means chunk 0.
func chunkRange(startChunk, endChunk, chunks int) (int, int, error) {
	if endChunk < 0 {
		endChunk = chunks - 1
	}
	if startChunk < 0 || endChunk >= chunks || endChunk < startChunk {
		return 0, 0, fmt.Errorf("invalid chunk range: startChunk=%d, endChunk=%d", startChunk, endChunk)
	}
	return startChunk, endChunk, nil
}

func findDatabase(cfg config.Config, name string) (config.DatabaseConfig, bool) {
	for _, database := range cfg.Databases {
		if database.Name == name {
			return database, true
		}
	}
	return config.DatabaseConfig{}, false
}

func init() {
	fetchCmd.Flags().String("database", "", "configured database to fetch chunks for")
	fetchCmd.Flags().Int("start-chunk", 0, "first chunk index to fetch")
	fetchCmd.Flags().Int("end-chunk", -1, "last chunk index to fetch (default: last chunk)")
	_ = fetchCmd.MarkFlagRequired("database")
	rootCmd.AddCommand(fetchCmd)
}
