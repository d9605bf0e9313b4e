package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/giturl-go/internal/config"
	"github.com/quantmind-br/giturl-go/internal/utils"
	"github.com/quantmind-br/giturl-go/pkg/giturl"
	"github.com/quantmind-br/giturl-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "giturl [url]",
	Short: "Parse git remote URLs into structured form",
	Long: `giturl decomposes git remote URLs into their components: scheme, host,
credentials, owner, subgroups and repository name.

It understands explicit schemes (ssh://, https://, git://, ...), SCP-style
shorthand (git@host:owner/repo.git) and local filesystem paths.`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.giturl/config.yaml)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "JSON output")
	rootCmd.PersistentFlags().Bool("trim-auth", false, "Drop embedded credentials from output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().Int("skip-parts", -1, "Leading path segments to skip (-1 applies provider rules)")

	_ = viper.BindPFlag("output.trim_auth", rootCmd.PersistentFlags().Lookup("trim-auth"))

	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(remotesCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func newLog() *utils.Logger {
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})
}

func run(cmd *cobra.Command, args []string) error {
	log = newLog()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) == 0 {
		return cmd.Help()
	}
	raw := args[0]

	skip, _ := cmd.Flags().GetInt("skip-parts")
	parsed, err := parseOne(raw, skip, cfg)
	if err != nil {
		return err
	}

	if cfg.Output.TrimAuth {
		parsed = parsed.TrimAuth()
	}

	return printRecord(cmd.OutOrStdout(), parsed, outputFormat(cmd, cfg))
}

// parseOne parses a single URL, applying provider skip rules from config
// unless the caller pinned an explicit skip count
func parseOne(raw string, skip int, cfg *config.Config) (*giturl.GitURL, error) {
	if skip >= 0 {
		return giturl.ParseWithSkips(raw, skip)
	}
	parsed, err := giturl.Parse(raw)
	if err != nil || parsed.Host == nil {
		return parsed, err
	}
	if s := cfg.SkipPartsFor(*parsed.Host); s > 0 {
		return giturl.ParseWithSkips(raw, s)
	}
	return parsed, nil
}

// outputFormat resolves the output format from the --json flag and config
func outputFormat(cmd *cobra.Command, cfg *config.Config) string {
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return "json"
	}
	return cfg.Output.Format
}

func printRecord(w io.Writer, g *giturl.GitURL, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}

	fmt.Fprintf(w, "scheme:        %s\n", g.Scheme)
	if g.Host != nil {
		fmt.Fprintf(w, "host:          %s\n", *g.Host)
	}
	if g.Port != nil {
		fmt.Fprintf(w, "port:          %d\n", *g.Port)
	}
	if g.AuthUser != nil {
		fmt.Fprintf(w, "auth user:     %s\n", *g.AuthUser)
	}
	if g.AuthToken != nil {
		fmt.Fprintf(w, "auth token:    %s\n", *g.AuthToken)
	}
	if g.Owner != nil {
		fmt.Fprintf(w, "owner:         %s\n", *g.Owner)
	}
	if len(g.Subgroups) > 0 {
		fmt.Fprintf(w, "subgroups:     %s\n", strings.Join(g.Subgroups, "/"))
	}
	if g.Organization != nil {
		fmt.Fprintf(w, "organization:  %s\n", *g.Organization)
	}
	fmt.Fprintf(w, "name:          %s\n", g.Name)
	fmt.Fprintf(w, "fullname:      %s\n", g.Fullname)
	if g.Path != nil {
		fmt.Fprintf(w, "path:          %s\n", *g.Path)
	}
	fmt.Fprintf(w, "git suffix:    %t\n", g.GitSuffix)
	fmt.Fprintf(w, "scheme prefix: %t\n", g.SchemePrefix)
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
