package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/giturl-go/internal/config"
	"github.com/quantmind-br/giturl-go/internal/gitrepo"
)

var remotesCmd = &cobra.Command{
	Use:   "remotes [dir]",
	Short: "Parse the remote URLs of a local repository",
	Long: `Opens the git repository at the given directory (or the current one)
and parses every configured remote URL. Provider skip rules from the
config file are applied per host.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemotes,
}

func runRemotes(cmd *cobra.Command, args []string) error {
	log = newLog()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	remotes, err := gitrepo.ListRemotes(dir, cfg.SkipPartsFor)
	if err != nil {
		return err
	}
	if len(remotes) == 0 {
		log.Warn().Str("dir", dir).Msg("Repository has no remotes")
		return nil
	}

	failed := 0
	format := outputFormat(cmd, cfg)
	for _, remote := range remotes {
		if remote.Err != nil {
			failed++
			log.Error().
				Str("remote", remote.Name).
				Str("url", remote.Raw).
				Err(remote.Err).
				Msg("Parse failed")
			continue
		}
		record := remote.URL
		if cfg.Output.TrimAuth {
			record = record.TrimAuth()
		}
		if format == "json" {
			if err := printRecord(cmd.OutOrStdout(), record, "json"); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", remote.Name, record.Fullname, record.String())
	}

	if failed > 0 {
		return fmt.Errorf("%d remote URLs failed to parse", failed)
	}
	return nil
}
