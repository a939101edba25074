package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LianHaeming/raw2hdr-site/config"
)

// BuildVersion is set at compile time via -ldflags.
// If empty (local dev), falls back to a timestamp so assets are never cached.
var BuildVersion string

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "raw2hdr-site",
	Short: "Raw2HDR marketing site and pipeline explainer",
	Long: `raw2hdr-site serves the Raw2HDR landing page, the step-by-step RAW to
HDR pipeline explainer and the bit-depth deep dive.

All charts and sample data are synthetic; they illustrate ideas and are not
measurements.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger, err = cfg.Logging.NewLogger(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "raw2hdr.yaml", "Config file (missing file uses defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(chartCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// assetVersion resolves the cache-busting suffix for static assets.
func assetVersion() string {
	if BuildVersion != "" {
		return BuildVersion
	}
	return strconv.FormatInt(time.Now().Unix(), 10)
}
