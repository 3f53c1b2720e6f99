package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oukeidos/bunkai/internal/language"
	"github.com/oukeidos/bunkai/internal/metadata"
)

func newModelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List known models and pricing",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Gemini (default provider):")
			for _, m := range metadata.GeminiModels {
				marker := " "
				if m.ID == metadata.DefaultGeminiModel {
					marker = "*"
				}
				fmt.Fprintf(out, " %s %-28s %-26s $%.2f in / $%.2f out per 1M tokens\n",
					marker, m.ID, m.Label, m.InputPerMillion, m.OutputPerMillion)
			}
			fmt.Fprintln(out, "OpenAI (--provider openai):")
			for _, m := range metadata.OpenAIModels {
				marker := " "
				if m.ID == metadata.DefaultOpenAIModel {
					marker = "*"
				}
				fmt.Fprintf(out, " %s %-28s %-26s $%.2f in / $%.2f out per 1M tokens\n",
					marker, m.ID, m.Label, m.InputPerMillion, m.OutputPerMillion)
			}
			fmt.Fprintln(out, "* = default model")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported explanation languages",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Supported Languages:")
			for _, l := range language.GetSupportedLanguages() {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-25s [%s]\n", l.Name, l.Code)
			}
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}
