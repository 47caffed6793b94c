// Package commands implements the prefixdfa CLI subcommands.
package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/milden6/prefixdfa"
	"github.com/milden6/prefixdfa/internal/config"
	"github.com/milden6/prefixdfa/wordlist"
)

// Version is the CLI version, overridden at link time.
var Version = "dev"

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	variant    string
	verbose    bool
}

// env is what a subcommand needs once flags and configuration are resolved.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// buildResult describes an automaton built from a word list.
type buildResult struct {
	set     prefixdfa.Set
	tokens  int
	added   int
	elapsed time.Duration
}

// NewRootCommand returns the prefixdfa command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "prefixdfa",
		Short: "Build and query prefix automata from word lists",
		Long: `prefixdfa loads a word list into a prefix automaton and queries it.

Two automata are available: "basic" allocates one state per prefix and
supports erase, "memory" keeps unshared word tails inline.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default .prefixdfa.yaml in . or $HOME)")
	rootCmd.PersistentFlags().StringVar(&flags.variant, "variant", "", "automaton variant: basic or memory")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newLoadCommand(flags))
	rootCmd.AddCommand(newQueryCommand(flags))
	rootCmd.AddCommand(newEraseCommand(flags))
	rootCmd.AddCommand(newDumpCommand(flags))
	rootCmd.AddCommand(newWordsCommand(flags))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (f *rootFlags) resolve(cmd *cobra.Command) (*env, error) {
	cfg, err := config.LoadConfig(f.configPath)
	if err != nil {
		return nil, err
	}

	if f.variant != "" {
		cfg.Automaton.Variant = f.variant

		validateErr := cfg.Validate()
		if validateErr != nil {
			return nil, validateErr
		}
	}

	level, err := cfg.Logging.SlogLevel()
	if err != nil {
		return nil, err
	}

	if f.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return &env{cfg: cfg, logger: logger}, nil
}

// build loads the word list at path into a fresh automaton.
func (e *env) build(path string) (*buildResult, error) {
	start := time.Now()

	words, err := wordlist.Load(path, e.cfg.Wordlist.Options())
	if err != nil {
		return nil, err
	}

	set := e.cfg.Automaton.NewSet()

	added, err := wordlist.Fill(set, words)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", path, err)
	}

	result := &buildResult{set: set, tokens: len(words), added: added, elapsed: time.Since(start)}

	e.logger.Debug("built automaton",
		"path", path,
		"variant", e.cfg.Automaton.Variant,
		"tokens", result.tokens,
		"words", set.Size(),
		"states", set.StateCount(),
		"elapsed", result.elapsed,
	)

	return result, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "prefixdfa %s\n", Version)
		},
	}
}
