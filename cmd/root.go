// Package cmd provides the CLI commands for the Sahayak assistant.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sahayak",
	Short: "Sahayak - a civic assistance agent",
	Long: `Sahayak answers civic questions about government schemes, health,
education, and the environment. Questions are classified into a domain,
wrapped in guarded prompt templates, and answered by a hosted model
(Gemini by default).

Set GEMINI_API_KEY (or OPENAI_API_KEY with LLM_PROVIDER=openai) before use.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
