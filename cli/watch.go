package cli

import (
	"context"
	"log"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"msaforge/config"
	"msaforge/db"
	"msaforge/fasta"
	"msaforge/interfaces"
)

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and search every query file dropped into it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cfg config.Config
		if err := viper.Unmarshal(&cfg); err != nil {
			log.Fatalf("Failed to unmarshal config: %v", err)
		}

		var handler interfaces.DatabaseHandler
		if cfg.InfluxDB.URL != "" {
			handler = db.NewHandler(cfg.InfluxDB)
			defer handler.Close()
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		watchDir := args[0]
		if filepath.Clean(watchDir) == filepath.Clean(cfg.Runtime.WorkDir) {
			// canonical query rewrites would retrigger the watcher
			log.Fatalf("Watched directory must differ from runtime.workdir (%s)", watchDir)
		}

		err := fasta.WatchQueries(ctx, watchDir, func(path string) {
			queries, err := loadQueries([]string{path}, cfg.Runtime.WorkDir)
			if err != nil {
				slog.Error("skipping invalid query", "path", path, "error", err)
				return
			}
			for _, database := range cfg.Databases {
				if err := runSweep(ctx, cfg, database, queries, handler); err != nil {
					slog.Error("sweep failed", "database", database.Name, "query", path, "error", err)
					return
				}
			}
		})
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", args[0], err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
