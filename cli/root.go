package cli

import (
	"errors"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "msaforge",
	Short: "msaforge builds multiple sequence alignments with jackhmmer",
	Long: "msaforge drives jackhmmer over large reference databases. Databases too big to " +
		"hold on disk are searched chunk by chunk: while one chunk is being searched the next " +
		"one is already downloading, and the per-chunk alignments are merged into one MSA at the end",
	Run: func(cmd *cobra.Command, args []string) {
		err := cmd.Help()
		if err != nil {
			return
		}
	},
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		return errors.New("unable to run root command")
	}
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("config", "", "path to the configuration file")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("jackhmmer.binary", "", "path to the jackhmmer binary")
	_ = viper.BindPFlag("jackhmmer.binary", rootCmd.PersistentFlags().Lookup("jackhmmer.binary"))
	rootCmd.PersistentFlags().String("db.url", "", "influx db url")
	_ = viper.BindPFlag("db.url", rootCmd.PersistentFlags().Lookup("db.url"))
}

func initConfig() {
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MSAFORGE")
	viper.AutomaticEnv()
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("jackhmmer.binary", "jackhmmer")
	viper.SetDefault("runtime.workdir", os.TempDir())
	viper.SetDefault("runtime.outdir", ".")
	viper.SetDefault("runtime.concurrency", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Failed to read config file: %v", err)
	}
	initLogging()
}

func initLogging() {
	logLevel := viper.GetString("logging.level")
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	default:
		level = slog.LevelInfo
	}
	slog.Info("Setting log level", "level", logLevel)
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	slog.SetDefault(slog.New(handler))
}
