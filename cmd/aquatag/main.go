package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	aquatag "github.com/zlElo/Aquatag/internal"
	"github.com/zlElo/Aquatag/internal/config"
	"github.com/zlElo/Aquatag/internal/service"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool

	cfg    *config.Config
	logger *zap.Logger
	tags   *service.TagService
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "aquatag",
		Short:        "Read and write tags of MP3, FLAC and WAV files",
		Version:      aquatag.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "aquatag.json", "Config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(newReadCmd())
	rootCmd.AddCommand(newWriteCmd())
	rootCmd.AddCommand(newCoverCmd())
	rootCmd.AddCommand(newRenameCmd())

	return rootCmd
}

func setup() error {
	var err error
	cfg, err = config.LoadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}

	logger, err = cfg.NewLogger()
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	tags = service.New(logger)
	return nil
}
