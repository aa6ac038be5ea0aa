// This file implements the history command.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentforgood/sahayak-go/pkg/domain"
)

var (
	historyUserID string
	historyLimit  int
	historyCounts bool
)

// historyCmd shows recorded questions and answers.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent questions and answers",
	Long: `History lists a user's most recent questions along with the domain each
was classified into. With --counts, a per-domain total across all users
is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAssistant(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		out := cmd.OutOrStdout()

		if historyCounts {
			counts, err := client.DomainCounts(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range domain.All() {
				fmt.Fprintf(out, "%-20s %d\n", d, counts[d])
			}
			return nil
		}

		records, err := client.Recent(cmd.Context(), historyUserID, historyLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintln(out, "No history recorded.")
			return nil
		}
		for _, record := range records {
			fmt.Fprintf(out, "%s  [%s]  %s\n", record.CreatedAt.Format("2006-01-02 15:04"), record.Domain, record.Query)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyUserID, "user", "anonymous", "user ID to list history for")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "maximum records to show")
	historyCmd.Flags().BoolVar(&historyCounts, "counts", false, "show per-domain totals instead")
	rootCmd.AddCommand(historyCmd)
}
