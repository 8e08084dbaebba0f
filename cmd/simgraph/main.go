package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/simgraph/config"
	"github.com/katalvlaran/simgraph/pipeline"
	"github.com/katalvlaran/simgraph/report"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "simgraph",
		Short:         "Similarity-graph analysis of entity feature tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(newAnalyzeCmd(), newVersionCmd())

	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	var configPath string
	v := config.New()

	cmd := &cobra.Command{
		Use:   "analyze [input.csv]",
		Short: "Build the similarity graph and report centrality and the densest subgraph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			return runAnalyze(cmd, v, configPath)
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "Config file path (YAML)")
	f.Float64("threshold", 0.5, "Minimum cosine similarity for an edge")
	f.String("input", "", "Input CSV path")
	f.String("output", "output_results.txt", "Results file path (empty to skip)")
	f.String("format", "text", "Results format: text, json or yaml")
	f.Int("top", 5, "Entries per ranking")
	f.String("id-column", "Full Team Name", "Header of the entity name column")
	f.String("group-column", "Season", "Header of the group column (empty to disable)")
	f.StringSlice("exclude", []string{"Seed"}, "Columns dropped from the feature vector")
	f.String("log-level", "info", "Log level: debug, info, warn or error")
	f.String("log-format", "console", "Log encoding: console or json")
	f.String("log-file", "", "Also write JSON logs to this rotating file")

	for key, flag := range map[string]string{
		"threshold":       "threshold",
		"input":           "input",
		"output":          "output",
		"format":          "format",
		"top":             "top",
		"columns.id":      "id-column",
		"columns.group":   "group-column",
		"columns.exclude": "exclude",
		"log.level":       "log-level",
		"log.format":      "log-format",
		"log.file":        "log-file",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}

	return cmd
}

func runAnalyze(cmd *cobra.Command, v *viper.Viper, configPath string) error {
	cfg, err := config.LoadFrom(v, configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := pipeline.Run(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Output == "" {
		format, _ := report.ParseFormat(cfg.Format)
		return report.Write(out, format, res.Summary)
	}
	fmt.Fprintf(out, "Results written to %s\n", cfg.Output)

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "simgraph", version)
		},
	}
}
