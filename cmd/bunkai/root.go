package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oukeidos/bunkai/internal/cleanup"
	"github.com/oukeidos/bunkai/internal/version"
)

func execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		fmt.Fprintln(os.Stderr, cleanupErr)
		if err == nil {
			err = cleanupErr
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	analyzeOpts := analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "bunkai",
		Short: "Sentence structure analyzer for English learners",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && isSubcommand(cmd, args[0]) {
				_ = cmd.Usage()
				return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			// Bare invocation from a script: show help rather than blocking
			// on an empty stdin. Flags signal intent to read piped input.
			if len(args) == 0 && !hasAnyFlagSet(cmd) && !isTerminal(int(os.Stdin.Fd())) {
				return cmd.Help()
			}
			return runAnalyze(cmd, args, &analyzeOpts)
		},
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
	}

	cmd.Version = version.Info()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetUsageTemplate(rootUsageTemplate)

	addAnalyzeFlags(cmd, &analyzeOpts)

	cmd.AddCommand(
		newAboutCmd(),
		newAnalyzeCmd(),
		newModelsCmd(),
		newLanguagesCmd(),
		newEnvCmd(),
	)

	cmd.InitDefaultCompletionCmd()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "completion" {
			sub.Short = "bunkai — sentence structure analyzer"
			sub.SetUsageTemplate(subcommandUsageTemplate)
			break
		}
	}

	return cmd
}

func hasAnyFlagSet(cmd *cobra.Command) bool {
	changed := false
	cmd.Flags().Visit(func(_ *pflag.Flag) {
		changed = true
	})
	return changed
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return true
		}
	}
	return false
}
