// This file implements the domains command.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentforgood/sahayak-go/pkg/domain"
)

var domainsVerbose bool

// domainsCmd lists the supported domains.
var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List the supported question domains",
	Long: `Domains prints the closed set of domains a question can be classified
into, in classification priority order. With --keywords, the trigger
keywords for each domain are shown as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		classifier := domain.NewClassifier()

		for _, d := range domain.All() {
			fmt.Fprintln(out, d)
			if domainsVerbose {
				keywords := classifier.Keywords(d)
				if len(keywords) > 0 {
					fmt.Fprintf(out, "  %s\n", strings.Join(keywords, ", "))
				}
			}
		}
		return nil
	},
}

func init() {
	domainsCmd.Flags().BoolVar(&domainsVerbose, "keywords", false, "show trigger keywords per domain")
	rootCmd.AddCommand(domainsCmd)
}
