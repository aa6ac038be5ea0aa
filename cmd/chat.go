// This file implements the interactive chat loop.
package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentforgood/sahayak-go/pkg/core"
)

var chatUserID string

// chatCmd runs an interactive question loop on stdin.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question loop",
	Long: `Chat reads questions from standard input, one per line, and prints the
formatted answer for each. An empty line or "exit" ends the session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Sahayak is ready. Type a question, or \"exit\" to quit.")

		scanner := bufio.NewScanner(cmd.InOrStdin())
		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" || strings.EqualFold(question, "exit") {
				break
			}

			answer, err := client.Ask(cmd.Context(), question, core.WithUserID(chatUserID))
			if err != nil {
				fmt.Fprintf(out, "error: %v\n", askError(err))
				continue
			}
			fmt.Fprintf(out, "[%s]\n%s\n\n", answer.Domain, answer.Text)
		}

		fmt.Fprintln(out, "Goodbye.")
		return scanner.Err()
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatUserID, "user", "anonymous", "user ID for history records")
	rootCmd.AddCommand(chatCmd)
}
