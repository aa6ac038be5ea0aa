// This file holds helpers shared by the CLI commands.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentforgood/sahayak-go/pkg/core"
	"github.com/agentforgood/sahayak-go/pkg/domain"
)

// newAssistant loads configuration from the environment and builds a client.
//
// A missing API key is a startup failure: it is reported here, before any
// network call, with a pointer to the variable to set.
func newAssistant(cmd *cobra.Command) (*core.Client, error) {
	config, err := core.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	client, err := core.NewClient(cmd.Context(), config)
	if err != nil {
		if errors.Is(err, core.ErrMissingAPIKey) {
			return nil, fmt.Errorf("no API key configured: set GEMINI_API_KEY (or OPENAI_API_KEY with LLM_PROVIDER=openai)")
		}
		return nil, fmt.Errorf("initialize assistant: %w", err)
	}
	return client, nil
}

// parseDomainFlag parses a --domain flag value into a Domain.
func parseDomainFlag(value string) (domain.Domain, bool) {
	return domain.Parse(value)
}
