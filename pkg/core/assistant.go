package core

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/agentforgood/sahayak-go/pkg/domain"
	"github.com/agentforgood/sahayak-go/pkg/format"
	"github.com/agentforgood/sahayak-go/pkg/history"
	mysqlStore "github.com/agentforgood/sahayak-go/pkg/history/mysql"
	postgresStore "github.com/agentforgood/sahayak-go/pkg/history/postgres"
	sqliteStore "github.com/agentforgood/sahayak-go/pkg/history/sqlite"
	"github.com/agentforgood/sahayak-go/pkg/llm"
	geminiLLM "github.com/agentforgood/sahayak-go/pkg/llm/gemini"
	openaiLLM "github.com/agentforgood/sahayak-go/pkg/llm/openai"
	"github.com/agentforgood/sahayak-go/pkg/prompt"
)

// Client is the main Sahayak assistant client.
//
// Each question flows through a single linear pass: the classifier assigns a
// domain, the builder assembles a guarded prompt from the read-only
// templates, the upstream provider generates a completion, and the formatter
// cleans it for display. There is no feedback loop, no retry beyond the
// provider's own behavior, and no state shared between requests beyond the
// read-only templates, so the client is safe for concurrent use.
//
// Example usage:
//
//	config, _ := core.LoadConfigFromEnv()
//	client, _ := core.NewClient(ctx, config)
//	defer client.Close()
//
//	answer, _ := client.Ask(ctx, "What are the symptoms of heat stroke?",
//	    core.WithUserID("user_001"),
//	)
//	fmt.Println(answer.Text)
type Client struct {
	// config contains the client configuration.
	config *Config

	// classifier assigns a domain to each query.
	classifier *domain.Classifier

	// builder assembles the final prompt for a classified query.
	builder *prompt.Builder

	// provider is the upstream reasoning client.
	provider llm.Provider

	// store is the query history store (nil if history is disabled).
	store history.Store

	// snowflakeNode generates unique IDs for answers.
	snowflakeNode *snowflake.Node
}

// NewClient creates a new Sahayak client.
//
// The client is initialized with:
//   - Prompt templates (from the configured directory, or compiled-in defaults)
//   - The upstream provider (Gemini by default, OpenAI-compatible optional)
//   - The query history store (if configured)
//
// Configuration is validated first, so a missing API key fails here with
// ErrMissingAPIKey before any network call is attempted.
//
// Parameters:
//   - ctx: Context for provider initialization
//   - cfg: Configuration containing LLM, prompt, and history settings
//
// Returns a new Client instance, or an error if initialization fails.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := initLLM(ctx, cfg.LLM)
	if err != nil {
		return nil, NewAssistantError("NewClient", err)
	}

	return newClient(cfg, provider)
}

// NewClientWithProvider creates a client around an existing provider.
//
// Intended for embedding the assistant with a custom or test upstream; the
// configuration's LLM section is kept for model metadata but no provider is
// constructed from it.
func NewClientWithProvider(cfg *Config, provider llm.Provider) (*Client, error) {
	return newClient(cfg, provider)
}

// newClient wires the pipeline around a ready provider.
func newClient(cfg *Config, provider llm.Provider) (*Client, error) {
	store, err := initPromptStore(cfg.Prompts)
	if err != nil {
		return nil, err
	}

	historyStore, err := initHistory(cfg.History)
	if err != nil {
		return nil, err
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, NewAssistantError("NewClient", err)
	}

	return &Client{
		config:        cfg,
		classifier:    domain.NewClassifier(),
		builder:       prompt.NewBuilder(store),
		provider:      provider,
		store:         historyStore,
		snowflakeNode: node,
	}, nil
}

// initPromptStore loads the prompt templates.
func initPromptStore(cfg PromptConfig) (*prompt.Store, error) {
	if cfg.Dir == "" {
		return prompt.DefaultStore(), nil
	}
	store, err := prompt.LoadStore(cfg.Dir)
	if err != nil {
		return nil, NewAssistantError("NewClient", fmt.Errorf("%w: %v", ErrTemplateNotFound, err))
	}
	return store, nil
}

// initLLM initializes the upstream provider from configuration.
func initLLM(ctx context.Context, cfg LLMConfig) (llm.Provider, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return openaiLLM.NewClient(&openaiLLM.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
		})
	default:
		return geminiLLM.NewClient(ctx, &geminiLLM.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
	}
}

// initHistory initializes the history store from configuration.
//
// A nil configuration or the "none" provider disables history.
func initHistory(cfg *HistoryConfig) (history.Store, error) {
	if cfg == nil || cfg.Provider == HistoryNone {
		return nil, nil
	}

	switch cfg.Provider {
	case HistoryPostgres:
		store, err := postgresStore.NewStore(&postgresStore.Config{
			Host:      getString(cfg.Config, "host"),
			Port:      getInt(cfg.Config, "port"),
			User:      getString(cfg.Config, "user"),
			Password:  getString(cfg.Config, "password"),
			DBName:    getString(cfg.Config, "db_name"),
			TableName: getString(cfg.Config, "table_name"),
			SSLMode:   getString(cfg.Config, "ssl_mode"),
		})
		if err != nil {
			return nil, NewAssistantError("NewClient", fmt.Errorf("%w: %v", ErrStorageOperation, err))
		}
		return store, nil
	case HistoryMySQL:
		store, err := mysqlStore.NewStore(&mysqlStore.Config{
			Host:      getString(cfg.Config, "host"),
			Port:      getInt(cfg.Config, "port"),
			User:      getString(cfg.Config, "user"),
			Password:  getString(cfg.Config, "password"),
			DBName:    getString(cfg.Config, "db_name"),
			TableName: getString(cfg.Config, "table_name"),
		})
		if err != nil {
			return nil, NewAssistantError("NewClient", fmt.Errorf("%w: %v", ErrStorageOperation, err))
		}
		return store, nil
	default:
		store, err := sqliteStore.NewStore(&sqliteStore.Config{
			DBPath:    getString(cfg.Config, "db_path"),
			TableName: getString(cfg.Config, "table_name"),
		})
		if err != nil {
			return nil, NewAssistantError("NewClient", fmt.Errorf("%w: %v", ErrStorageOperation, err))
		}
		return store, nil
	}
}

// Ask answers one question.
//
// The method:
//  1. Classifies the query into a domain (or uses the WithDomain override)
//  2. Assembles the guarded prompt (safety rules, base prompt, domain
//     guidance, raw query)
//  3. Calls the upstream provider exactly once with the configured model
//     and temperature
//  4. Formats the completion and records it in the history store
//
// The caller's context and the configured timeout propagate directly to the
// upstream call. An upstream failure is returned wrapped in ErrUpstream and
// is not retried.
//
// Parameters:
//   - ctx: Context for cancellation
//   - query: Raw question text (may be empty; empty queries classify as Other)
//   - opts: Optional parameters (UserID, Domain override, SkipHistory)
//
// Returns the Answer, or an error if the upstream call or history write fails.
func (c *Client) Ask(ctx context.Context, query string, opts ...AskOption) (*Answer, error) {
	options := applyAskOptions(opts)

	d := options.Domain
	if d == "" {
		d = c.classifier.Classify(query)
	} else if !d.Valid() {
		return nil, NewAssistantError("Ask",
			fmt.Errorf("%w: unknown domain %q", ErrInvalidInput, options.Domain))
	}

	assembled := c.builder.Build(query, d)

	callCtx := ctx
	if c.config.LLM.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, time.Duration(c.config.LLM.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	raw, err := c.provider.Generate(callCtx, assembled,
		llm.WithTemperature(c.config.LLM.Temperature),
	)
	if err != nil {
		return nil, NewAssistantError("Ask", fmt.Errorf("%w: %v", ErrUpstream, err))
	}

	answer := &Answer{
		ID:        c.snowflakeNode.Generate().Int64(),
		Query:     query,
		Domain:    d,
		Text:      format.Clean(raw),
		Model:     c.config.LLM.Model,
		CreatedAt: time.Now(),
	}

	if c.store != nil && !options.SkipHistory {
		rec := &history.Record{
			ID:        answer.ID,
			UserID:    options.UserID,
			Query:     answer.Query,
			Domain:    answer.Domain,
			Answer:    answer.Text,
			Model:     answer.Model,
			CreatedAt: answer.CreatedAt,
		}
		if err := c.store.Save(ctx, rec); err != nil {
			return nil, NewAssistantError("Ask", fmt.Errorf("%w: %v", ErrStorageOperation, err))
		}
	}

	return answer, nil
}

// Classify returns the domain the classifier assigns to a query, without
// calling upstream. Useful for diagnostics and the CLI.
func (c *Client) Classify(query string) domain.Domain {
	return c.classifier.Classify(query)
}

// Recent returns the most recent answers recorded for a user, newest first.
//
// Returns ErrStorageOperation-wrapped errors if history is disabled or the
// read fails.
func (c *Client) Recent(ctx context.Context, userID string, limit int) ([]*history.Record, error) {
	if c.store == nil {
		return nil, NewAssistantError("Recent",
			fmt.Errorf("%w: history is disabled", ErrStorageOperation))
	}
	records, err := c.store.RecentByUser(ctx, userID, limit)
	if err != nil {
		return nil, NewAssistantError("Recent", fmt.Errorf("%w: %v", ErrStorageOperation, err))
	}
	return records, nil
}

// DomainCounts returns how many recorded answers exist per domain tag.
func (c *Client) DomainCounts(ctx context.Context) (map[domain.Domain]int, error) {
	if c.store == nil {
		return nil, NewAssistantError("DomainCounts",
			fmt.Errorf("%w: history is disabled", ErrStorageOperation))
	}
	counts, err := c.store.CountByDomain(ctx)
	if err != nil {
		return nil, NewAssistantError("DomainCounts", fmt.Errorf("%w: %v", ErrStorageOperation, err))
	}
	return counts, nil
}

// Close closes the client and releases resources.
func (c *Client) Close() error {
	var firstErr error
	if c.provider != nil {
		if err := c.provider.Close(); err != nil {
			firstErr = err
		}
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return NewAssistantError("Close", firstErr)
}

// getString reads a string value from a provider config map.
func getString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt reads an int value from a provider config map.
func getInt(m map[string]interface{}, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}
