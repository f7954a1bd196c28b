package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/phpcst/internal/config"
)

const version = "0.1.0"

// globals holds the persistent flags and the configuration they select.
type globals struct {
	configPath string
	verbose    int
	cfg        *config.Config
}

func (g *globals) load() error {
	var err error
	if g.configPath != "" {
		g.cfg, err = config.Load(g.configPath)
	} else {
		g.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}

	var logFile *string
	if g.cfg.LogFile != "" {
		logFile = &g.cfg.LogFile
	}
	commonlog.Configure(g.cfg.LogVerbosity+g.verbose, logFile)
	return nil
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	rootCmd := &cobra.Command{
		Use:           "phpcst",
		Short:         "Lossless, error-tolerant PHP parser",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.load()
		},
	}
	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to a "+config.FileName+" file (default: search upward from the working directory)")
	rootCmd.PersistentFlags().CountVarP(&g.verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newParseCmd(g))
	rootCmd.AddCommand(newCheckCmd(g))
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newLSPCmd(g))
	rootCmd.AddCommand(newReplCmd(g))
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "phpcst:", err)
		os.Exit(1)
	}
}
