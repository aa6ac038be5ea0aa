package core_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentforgood/sahayak-go/pkg/core"
	"github.com/agentforgood/sahayak-go/pkg/domain"
	"github.com/agentforgood/sahayak-go/pkg/llm"
	"github.com/agentforgood/sahayak-go/pkg/prompt"
)

// mockProvider records the prompts it receives and returns a canned reply.
type mockProvider struct {
	mu      sync.Mutex
	calls   int
	prompts []string
	reply   string
	err     error
}

func (m *mockProvider) Generate(ctx context.Context, prompt string, opts ...llm.GenerateOption) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockProvider) GenerateWithMessages(ctx context.Context, messages []llm.Message, opts ...llm.GenerateOption) (string, error) {
	last := ""
	if len(messages) > 0 {
		last = messages[len(messages)-1].Content
	}
	return m.Generate(ctx, last)
}

func (m *mockProvider) Close() error {
	return nil
}

func testConfig() *core.Config {
	return &core.Config{
		LLM: core.LLMConfig{
			Provider:       core.ProviderGemini,
			APIKey:         "test-key",
			Model:          "gemini-2.0-flash",
			Temperature:    0.2,
			TimeoutSeconds: 5,
		},
		History: &core.HistoryConfig{Provider: core.HistoryNone},
	}
}

func newTestClient(t *testing.T, provider *mockProvider) *core.Client {
	t.Helper()
	client, err := core.NewClientWithProvider(testConfig(), provider)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestAsk(t *testing.T) {
	provider := &mockProvider{reply: "  Drink water and rest in the shade.  "}
	client := newTestClient(t, provider)

	answer, err := client.Ask(context.Background(), "What are the symptoms of heat stroke?")
	require.NoError(t, err)
	require.NotNil(t, answer)

	assert.Equal(t, domain.Health, answer.Domain)
	assert.Equal(t, "What are the symptoms of heat stroke?", answer.Query)
	assert.Equal(t, "Drink water and rest in the shade.", answer.Text)
	assert.Equal(t, "gemini-2.0-flash", answer.Model)
	assert.NotZero(t, answer.ID)
	assert.False(t, answer.CreatedAt.IsZero())

	// Exactly one upstream call per question.
	assert.Equal(t, 1, provider.calls)
}

func TestAskPromptAssembly(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	client := newTestClient(t, provider)

	_, err := client.Ask(context.Background(), "What are the symptoms of heat stroke?")
	require.NoError(t, err)

	require.Len(t, provider.prompts, 1)
	sent := provider.prompts[0]

	// The assembled prompt carries the safety rules, the domain guidance,
	// and the literal query text.
	assert.Contains(t, sent, prompt.DefaultSafetyRules)
	assert.Contains(t, sent, prompt.GuidanceFor(domain.Health))
	assert.Contains(t, sent, "What are the symptoms of heat stroke?")
}

func TestAskEmptyQuery(t *testing.T) {
	provider := &mockProvider{reply: "Please ask a question."}
	client := newTestClient(t, provider)

	answer, err := client.Ask(context.Background(), "")
	require.NoError(t, err)

	// Empty queries classify as Other and still reach the provider with the
	// full guarded template.
	assert.Equal(t, domain.Other, answer.Domain)
	assert.Equal(t, 1, provider.calls)
	assert.Contains(t, provider.prompts[0], prompt.DefaultSafetyRules)
}

func TestAskDomainOverride(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	client := newTestClient(t, provider)

	// The override replaces the classifier's assignment entirely.
	answer, err := client.Ask(context.Background(), "What are the symptoms of heat stroke?",
		core.WithDomain(domain.Education),
	)
	require.NoError(t, err)
	assert.Equal(t, domain.Education, answer.Domain)
	assert.Contains(t, provider.prompts[0], prompt.GuidanceFor(domain.Education))
}

func TestAskInvalidDomainOverride(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	client := newTestClient(t, provider)

	answer, err := client.Ask(context.Background(), "question",
		core.WithDomain(domain.Domain("finance")),
	)
	require.Error(t, err)
	assert.Nil(t, answer)
	assert.True(t, errors.Is(err, core.ErrInvalidInput))

	// The provider is never called for invalid input.
	assert.Equal(t, 0, provider.calls)
}

func TestAskUpstreamFailure(t *testing.T) {
	provider := &mockProvider{err: errors.New("503 service unavailable")}
	client := newTestClient(t, provider)

	answer, err := client.Ask(context.Background(), "question")
	require.Error(t, err)
	assert.Nil(t, answer)
	assert.True(t, errors.Is(err, core.ErrUpstream))
	assert.Contains(t, err.Error(), "503 service unavailable")

	// No retry: one failed call is one call.
	assert.Equal(t, 1, provider.calls)
}

func TestClassify(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	client := newTestClient(t, provider)

	assert.Equal(t, domain.GovernmentScheme, client.Classify("pm kisan installment"))
	assert.Equal(t, domain.Other, client.Classify("unrelated question"))
	assert.Equal(t, 0, provider.calls)
}

func TestHistoryDisabled(t *testing.T) {
	provider := &mockProvider{reply: "ok"}
	client := newTestClient(t, provider)

	_, err := client.Recent(context.Background(), "anonymous", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrStorageOperation))

	_, err = client.DomainCounts(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrStorageOperation))
}

func TestAskWithSQLiteHistory(t *testing.T) {
	cfg := testConfig()
	cfg.History = &core.HistoryConfig{
		Provider: core.HistorySQLite,
		Config: map[string]interface{}{
			"db_path": t.TempDir() + "/history.db",
		},
	}

	provider := &mockProvider{reply: "Apply at the local office."}
	client, err := core.NewClientWithProvider(cfg, provider)
	require.NoError(t, err)
	defer client.Close()

	ctx := context.Background()

	_, err = client.Ask(ctx, "How to apply for a ration card?", core.WithUserID("user_001"))
	require.NoError(t, err)
	_, err = client.Ask(ctx, "What are the symptoms of dengue?", core.WithUserID("user_001"))
	require.NoError(t, err)
	_, err = client.Ask(ctx, "off the record", core.WithUserID("user_001"), core.WithoutHistory())
	require.NoError(t, err)

	records, err := client.Recent(ctx, "user_001", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first; the unrecorded question never appears.
	assert.Equal(t, "What are the symptoms of dengue?", records[0].Query)
	assert.Equal(t, domain.Health, records[0].Domain)
	assert.Equal(t, "How to apply for a ration card?", records[1].Query)
	assert.Equal(t, domain.GovernmentScheme, records[1].Domain)

	counts, err := client.DomainCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[domain.Health])
	assert.Equal(t, 1, counts[domain.GovernmentScheme])
	assert.Zero(t, counts[domain.Other])
}

func TestNewClientValidatesFirst(t *testing.T) {
	config := &core.Config{
		LLM: core.LLMConfig{Provider: core.ProviderGemini},
	}

	client, err := core.NewClient(context.Background(), config)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.Is(err, core.ErrMissingAPIKey))
}
