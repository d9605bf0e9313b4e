package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/giturl-go/internal/batch"
	"github.com/quantmind-br/giturl-go/internal/config"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Parse many URLs from a file or stdin",
	Long: `Reads one URL per line from the given file, or from stdin when no file
is given. Blank lines and lines starting with # are skipped. Results are
written as JSON lines in input order; failures are reported on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntP("workers", "w", 0, "Concurrent workers (0 uses config)")
	batchCmd.Flags().Int("skip-parts", 0, "Leading path segments to skip on every URL")
	batchCmd.Flags().Bool("progress", false, "Show a progress bar on stderr")
}

func runBatch(cmd *cobra.Command, args []string) error {
	log = newLog()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		in = f
	}

	inputs, err := batch.ReadLines(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(inputs) == 0 {
		log.Warn().Msg("No URLs to parse")
		return nil
	}

	workers := cfg.Batch.Workers
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		workers = w
	}
	skip, _ := cmd.Flags().GetInt("skip-parts")

	opts := batch.Options{
		Workers:   workers,
		SkipParts: skip,
		Log:       log,
	}
	if showProgress, _ := cmd.Flags().GetBool("progress"); showProgress {
		opts.Progress = cmd.ErrOrStderr()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn().Msg("Interrupted, stopping workers")
		cancel()
	}()

	results, err := batch.Run(ctx, inputs, opts)
	if err != nil {
		return err
	}

	trimAuth := viper.GetBool("output.trim_auth")

	enc := json.NewEncoder(cmd.OutOrStdout())
	for _, res := range results {
		if res.Err != nil {
			log.Error().Str("input", res.Input).Err(res.Err).Msg("Parse failed")
			continue
		}
		record := res.URL
		if trimAuth {
			record = record.TrimAuth()
		}
		if err := enc.Encode(record); err != nil {
			return err
		}
	}

	if failed := batch.FailedCount(results); failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, len(results))
	}
	return nil
}
