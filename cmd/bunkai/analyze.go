package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oukeidos/bunkai/internal/cleanup"
	"github.com/oukeidos/bunkai/internal/controller"
	"github.com/oukeidos/bunkai/internal/files"
	"github.com/oukeidos/bunkai/internal/logger"
	"github.com/oukeidos/bunkai/internal/metadata"
	"github.com/oukeidos/bunkai/internal/prompt"
	"github.com/oukeidos/bunkai/internal/render"
)

type analyzeOptions struct {
	modelName   string
	provider    string
	extended    bool
	explainLang string
	logFilePath string
	allowEnv    bool
	envOnly     bool
	debug       bool
	stats       bool
	noColor     bool
}

func newAnalyzeCmd() *cobra.Command {
	opts := analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <sentence>",
		Short: "Analyze the structure of an English sentence",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addAnalyzeFlags(cmd, &opts)
	return cmd
}

func addAnalyzeFlags(cmd *cobra.Command, opts *analyzeOptions) {
	cmd.Flags().StringVar(&opts.modelName, "model", "", "Model name (default depends on provider)")
	cmd.Flags().StringVar(&opts.provider, "provider", "gemini", "Generation backend (gemini or openai)")
	cmd.Flags().BoolVar(&opts.extended, "extended", false, "Also request a translation of the sentence")
	cmd.Flags().StringVar(&opts.explainLang, "explain-lang", "ja", "Language for explanations and translations")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading API key from environment variables")
	cmd.Flags().BoolVar(&opts.envOnly, "env-only", false, "Use only environment variables for API keys")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print token usage and cost after the run")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
}

func runAnalyze(cmd *cobra.Command, args []string, opts *analyzeOptions) error {
	provider, model, err := resolveProviderModel(opts)
	if err != nil {
		return err
	}
	langCode, err := resolveLanguageCode(opts.explainLang)
	if err != nil {
		return err
	}

	if opts.noColor {
		render.DisableColor()
	}

	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logLevel, logFileW)

	startTime := time.Now()

	actualKey, source, err := resolveAPIKey(string(provider), opts.allowEnv, opts.envOnly)
	if err != nil {
		return err
	}
	logger.Info("Using API Key", "service", string(provider), "source", source)

	variant := prompt.VariantBasic
	if opts.extended {
		variant = prompt.VariantExtended
	}

	ctrl := controller.New(controller.Config{
		APIKey:      actualKey,
		Provider:    provider,
		Model:       model,
		Variant:     variant,
		ExplainLang: langCode,
	})
	cleanup.Register(ctrl.Close)

	ctx, stop := signalContext()
	defer stop()

	var runErr error
	if len(args) > 0 {
		runErr = analyzeOnce(ctx, cmd, ctrl, strings.Join(args, " "))
	} else {
		runErr = analyzeLoop(ctx, cmd, ctrl)
	}

	if opts.stats {
		printUsageStats(ctrl.Usage(), time.Since(startTime), provider, model)
	}
	if runErr != nil && ctx.Err() != nil {
		logger.Warn("Analysis canceled", "error", runErr)
		return nil
	}
	return runErr
}

func resolveProviderModel(opts *analyzeOptions) (controller.Provider, string, error) {
	switch strings.ToLower(opts.provider) {
	case "", "gemini":
		model := opts.modelName
		if model == "" {
			model = metadata.DefaultGeminiModel
		}
		return controller.ProviderGemini, model, nil
	case "openai":
		model := opts.modelName
		if model == "" {
			model = metadata.DefaultOpenAIModel
		}
		return controller.ProviderOpenAI, model, nil
	default:
		return "", "", fmt.Errorf("invalid provider %q. Must be 'gemini' or 'openai'", opts.provider)
	}
}

func analyzeOnce(ctx context.Context, cmd *cobra.Command, ctrl *controller.Controller, sentence string) error {
	if strings.TrimSpace(sentence) == "" {
		_ = cmd.Usage()
		return fmt.Errorf("a sentence is required")
	}

	ctrl.Submit(ctx, sentence)

	snap := ctrl.Snapshot()
	switch snap.Phase {
	case controller.PhaseSuccess:
		fmt.Fprintln(cmd.OutOrStdout(), render.Result(snap.Result, terminalWidth()))
		return nil
	case controller.PhaseError:
		fmt.Fprintln(cmd.ErrOrStderr(), render.Error(snap.ErrMsg))
		return fmt.Errorf("analysis failed")
	default:
		return nil
	}
}

// analyzeLoop reads sentences from stdin one per line until EOF or an empty
// line on a terminal, letting learners iterate without restarting.
func analyzeLoop(ctx context.Context, cmd *cobra.Command, ctrl *controller.Controller) error {
	interactive := isTerminal(int(os.Stdin.Fd()))
	if !interactive {
		// Piped input: analyze every non-empty line, no prompts.
		return analyzePiped(ctx, cmd, ctrl)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Enter an English sentence (empty line to quit).")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ctrl.Submit(ctx, line)
		snap := ctrl.Snapshot()
		switch snap.Phase {
		case controller.PhaseSuccess:
			fmt.Fprintln(out, render.Result(snap.Result, terminalWidth()))
		case controller.PhaseError:
			fmt.Fprintln(out, render.Error(snap.ErrMsg))
		}
	}
	return scanner.Err()
}

func analyzePiped(ctx context.Context, cmd *cobra.Command, ctrl *controller.Controller) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(os.Stdin)
	var failed bool
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		ctrl.Submit(ctx, line)
		snap := ctrl.Snapshot()
		switch snap.Phase {
		case controller.PhaseSuccess:
			fmt.Fprintln(out, render.Result(snap.Result, terminalWidth()))
		case controller.PhaseError:
			fmt.Fprintln(cmd.ErrOrStderr(), render.Error(snap.ErrMsg))
			failed = true
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("one or more sentences failed")
	}
	return nil
}
