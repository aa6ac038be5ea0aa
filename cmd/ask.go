// This file implements the ask command for one-shot questions.
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentforgood/sahayak-go/pkg/core"
)

var (
	askUserID  string
	askDomain  string
	askNoStore bool
)

// askCmd answers a single question and exits.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a single question",
	Long: `Ask classifies the question into a domain, sends it to the configured
model, and prints the formatted answer.

Examples:
  sahayak ask "How do I apply for PM Awas Yojana?"
  sahayak ask --domain health "What are the symptoms of heat stroke?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		client, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		opts := []core.AskOption{core.WithUserID(askUserID)}
		if askDomain != "" {
			d, ok := parseDomainFlag(askDomain)
			if !ok {
				return fmt.Errorf("unknown domain %q (see 'sahayak domains')", askDomain)
			}
			opts = append(opts, core.WithDomain(d))
		}
		if askNoStore {
			opts = append(opts, core.WithoutHistory())
		}

		answer, err := client.Ask(cmd.Context(), question, opts...)
		if err != nil {
			return askError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n%s\n", answer.Domain, answer.Text)
		return nil
	},
}

// askError maps pipeline errors to user-facing messages.
//
// Upstream failures are reported generically; the underlying cause still
// reaches the log via the returned error's message.
func askError(err error) error {
	if errors.Is(err, core.ErrUpstream) {
		return fmt.Errorf("the answering service is unavailable right now, please try again later (%w)", err)
	}
	return err
}

func init() {
	askCmd.Flags().StringVar(&askUserID, "user", "anonymous", "user ID for history records")
	askCmd.Flags().StringVar(&askDomain, "domain", "", "override the classified domain")
	askCmd.Flags().BoolVar(&askNoStore, "no-history", false, "do not record this question")
	rootCmd.AddCommand(askCmd)
}
