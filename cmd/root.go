// Package cmd contains the omniexport CLI commands
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/omnivore-tools/omniexport/internal/config"
	"github.com/omnivore-tools/omniexport/internal/export"
	"github.com/omnivore-tools/omniexport/internal/omnivore"
	"github.com/omnivore-tools/omniexport/internal/output"
)

var (
	excludeUnfetched bool
	outputPath       string
	jsonOutput       bool
	quiet            bool
	verbose          bool
	colorMode        string
	logger           *slog.Logger
	version          = "dev"
)

// rootCmd performs the export when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "omniexport",
	Short: "Export Omnivore RSS subscriptions to OPML",
	Long: `omniexport fetches the RSS feed subscriptions of an Omnivore account
over the GraphQL API and writes them to an OPML 2.0 file, for backup or
migration to another RSS reader.

Required environment variables:
  OMNIVORE_API_TOKEN       API token, sent verbatim as the Authorization header
  OMNIVORE_HOST            API host, e.g. api-prod.omnivore.app
  OMNIVORE_GRAPH_QL_PATH   GraphQL endpoint path, e.g. /api/graphql

Example usage:
  omniexport                        # export to omnivore_rss_export_<date>.opml
  omniexport --exclude-unfetched    # skip feeds that were never fetched
  omniexport -o feeds.opml          # export to a specific file
  omniexport --json                 # print subscriptions as JSON`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
	RunE: runExport,
}

// Execute runs the root command and returns its error for main to map
// to an exit code.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	rootCmd.Flags().BoolVar(&excludeUnfetched, "exclude-unfetched", false, "exclude feeds that were never fetched after creation")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: omnivore_rss_export_<YYYYMMDD>.opml)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the subscription list as JSON instead of the text report")

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "colorize output: auto, always, or never")
}

func initLogger() {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func runExport(cmd *cobra.Command, args []string) error {
	mode, err := output.ParseColorMode(colorMode)
	if err != nil {
		return err
	}
	printer := output.NewPrinter(output.PrinterOptions{ColorMode: mode, Quiet: quiet})
	reporter := output.NewConsoleReporter(printer)

	cfg, err := config.Load()
	if err != nil {
		return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitConfig}
	}
	logger.Debug("configuration loaded", "host", cfg.Host, "path", cfg.GraphQLPath)

	client := omnivore.NewClient(cfg.Endpoint(), cfg.APIToken, logger)

	reporter.Fetching()
	subs, err := client.GetSubscriptions(cmd.Context())
	if err != nil {
		return &output.CLIError{Summary: err.Error(), ExitCode: output.ExitTransport}
	}

	if excludeUnfetched {
		var removed int
		subs, removed = export.ExcludeUnfetched(subs)
		logger.Debug("filter applied", "removed", removed, "kept", len(subs))
		reporter.FilteredOut(removed)
	}

	folders := export.GroupByFolder(subs)

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(subs); err != nil {
			return fmt.Errorf("encoding subscriptions: %w", err)
		}
	} else {
		reporter.Subscriptions(subs)
		reporter.FolderSummary(folders)
	}

	now := time.Now()
	path := outputPath
	if path == "" {
		path = export.DefaultFilename(now)
	}
	if err := export.WriteFile(path, export.OPML(folders, now)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	reporter.Exported(path)

	return nil
}
