package prompt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentforgood/sahayak-go/pkg/domain"
	"github.com/agentforgood/sahayak-go/pkg/prompt"
)

func TestBuildContainsSafetyRules(t *testing.T) {
	b := prompt.NewBuilder(prompt.DefaultStore())

	// The safety rules appear verbatim in every assembled prompt, for every
	// domain including the fallback.
	for _, d := range domain.All() {
		p := b.Build("some question", d)
		assert.Contains(t, p, prompt.DefaultSafetyRules, "domain %s", d)
	}
}

func TestBuildSectionOrder(t *testing.T) {
	store := prompt.NewStore("BASE-PROMPT-TEXT", "SAFETY-RULES-TEXT")
	b := prompt.NewBuilder(store)

	p := b.Build("my question", domain.Health)

	safetyIdx := strings.Index(p, "SAFETY-RULES-TEXT")
	baseIdx := strings.Index(p, "BASE-PROMPT-TEXT")
	queryIdx := strings.Index(p, "my question")

	require.GreaterOrEqual(t, safetyIdx, 0)
	require.Greater(t, baseIdx, safetyIdx)
	require.Greater(t, queryIdx, baseIdx)
}

func TestBuildIncludesQueryVerbatim(t *testing.T) {
	b := prompt.NewBuilder(nil)

	tests := []struct {
		name  string
		query string
	}{
		{"plain query", "How do I apply for PM Awas Yojana?"},
		{"query with markup", "<b>bold</b> & \"quoted\""},
		{"multiline query", "line one\nline two"},
		{"empty query", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := b.Build(tt.query, domain.Other)
			assert.Contains(t, p, "Question:\n"+tt.query)
		})
	}
}

func TestBuildDeterministic(t *testing.T) {
	b := prompt.NewBuilder(prompt.DefaultStore())

	first := b.Build("same question", domain.Education)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, b.Build("same question", domain.Education))
	}
}

func TestBuildDomainGuidance(t *testing.T) {
	b := prompt.NewBuilder(nil)

	// Each domain's prompt carries its own guidance fragment.
	health := b.Build("q", domain.Health)
	education := b.Build("q", domain.Education)
	assert.NotEqual(t, health, education)
	assert.Contains(t, health, prompt.GuidanceFor(domain.Health))
	assert.Contains(t, education, prompt.GuidanceFor(domain.Education))
}

func TestGuidanceForUnknownDomain(t *testing.T) {
	// Unknown values fall back to the Other fragment so assembly stays total.
	assert.Equal(t, prompt.GuidanceFor(domain.Other), prompt.GuidanceFor(domain.Domain("bogus")))
}

func TestNewStoreDefaults(t *testing.T) {
	store := prompt.NewStore("", "")
	assert.Equal(t, prompt.DefaultStore().BasePrompt(), store.BasePrompt())
	assert.Equal(t, prompt.DefaultStore().SafetyRules(), store.SafetyRules())

	custom := prompt.NewStore("custom base", "custom rules")
	assert.Equal(t, "custom base", custom.BasePrompt())
	assert.Equal(t, "custom rules", custom.SafetyRules())
}

func TestLoadStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prompt.BasePromptFile), []byte("file base prompt\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, prompt.SafetyRulesFile), []byte("file safety rules\n"), 0644))

	store, err := prompt.LoadStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "file base prompt", store.BasePrompt())
	assert.Equal(t, "file safety rules", store.SafetyRules())
}

func TestLoadStoreMissingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prompt.BasePromptFile), []byte("base"), 0644))

	// safety_rules.txt is absent; loading must fail rather than silently
	// falling back to defaults.
	_, err := prompt.LoadStore(dir)
	assert.Error(t, err)
}

func TestLoadStoreEmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, prompt.BasePromptFile), []byte("   \n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, prompt.SafetyRulesFile), []byte("rules"), 0644))

	_, err := prompt.LoadStore(dir)
	assert.Error(t, err)
}
