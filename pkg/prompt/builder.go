package prompt

import (
	"fmt"

	"github.com/agentforgood/sahayak-go/pkg/domain"
)

// assembleTemplate fixes the section order of every assembled prompt:
// safety rules, base prompt, domain guidance, then the raw question.
const assembleTemplate = `%s

%s

%s

Question:
%s`

// Builder assembles the final prompt for a classified query.
//
// Build is a pure function of the query, the domain, and the templates held
// by the Store: the same inputs always produce the same output, and the
// safety-rules text appears verbatim in every assembled prompt.
//
// Example usage:
//
//	b := prompt.NewBuilder(prompt.DefaultStore())
//	p := b.Build("What are the symptoms of heat stroke?", domain.Health)
type Builder struct {
	store *Store
}

// NewBuilder creates a Builder over a template store.
//
// A nil store falls back to the compiled-in defaults.
func NewBuilder(store *Store) *Builder {
	if store == nil {
		store = DefaultStore()
	}
	return &Builder{store: store}
}

// Build assembles the prompt for a query and its domain.
//
// The sections are concatenated in fixed order: safety rules, base prompt,
// domain-specific guidance, raw query. The query text is included unescaped
// and unmodified, even when empty. No I/O is performed.
func (b *Builder) Build(query string, d domain.Domain) string {
	return fmt.Sprintf(assembleTemplate,
		b.store.SafetyRules(),
		b.store.BasePrompt(),
		GuidanceFor(d),
		query,
	)
}
