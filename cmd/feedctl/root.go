package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/douglarek/feedreader/app"
	"github.com/douglarek/feedreader/config"
)

var (
	configFile string
	verbose    bool
	reader     *app.App
	slogLevel  = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "feedctl",
	Short: "Terminal feed reader",
	Long: `feedctl manages named feed sources and reads their items.

Example usage:
  feedctl add Example https://example.com/feed.xml
  feedctl list
  feedctl load Example --hide-read
  feedctl read Example`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initReader()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if reader != nil {
			return reader.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "config.jsonc", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(h))
	slogLevel.Set(slog.LevelWarn)
}

func initReader() error {
	settings, err := config.LoadSettings(configFile)
	if err != nil {
		return err
	}
	if settings.EnableDebug || verbose {
		slogLevel.Set(slog.LevelDebug)
	}

	reader, err = app.New(settings)
	return err
}
