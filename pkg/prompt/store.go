package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template file names looked up inside the prompts directory.
const (
	BasePromptFile  = "base_prompt.txt"
	SafetyRulesFile = "safety_rules.txt"
)

// Store holds the immutable prompt templates.
//
// Templates are loaded once at process start and shared read-only across all
// requests; the Store is never mutated after construction and is safe for
// concurrent use.
//
// Example usage:
//
//	store, err := prompt.LoadStore("./prompts")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	builder := prompt.NewBuilder(store)
type Store struct {
	basePrompt  string
	safetyRules string
}

// NewStore creates a Store from explicit template text.
//
// Empty strings fall back to the compiled-in defaults, so NewStore("", "")
// is equivalent to DefaultStore().
func NewStore(basePrompt, safetyRules string) *Store {
	if strings.TrimSpace(basePrompt) == "" {
		basePrompt = DefaultBasePrompt
	}
	if strings.TrimSpace(safetyRules) == "" {
		safetyRules = DefaultSafetyRules
	}
	return &Store{
		basePrompt:  strings.TrimSpace(basePrompt),
		safetyRules: strings.TrimSpace(safetyRules),
	}
}

// DefaultStore creates a Store holding the compiled-in default templates.
func DefaultStore() *Store {
	return NewStore("", "")
}

// LoadStore reads the base prompt and safety rules from a directory.
//
// The directory must contain base_prompt.txt and safety_rules.txt. Template
// content is opaque prose and is not parsed. A missing or unreadable file is
// a startup error; callers that want the compiled-in defaults instead should
// use DefaultStore.
//
// Parameters:
//   - dir: Path to the prompts directory
//
// Returns the loaded Store, or an error if either file cannot be read.
func LoadStore(dir string) (*Store, error) {
	base, err := readTemplate(filepath.Join(dir, BasePromptFile))
	if err != nil {
		return nil, err
	}
	safety, err := readTemplate(filepath.Join(dir, SafetyRulesFile))
	if err != nil {
		return nil, err
	}
	return NewStore(base, safety), nil
}

// readTemplate reads one template file and rejects empty content.
func readTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("prompt: read template %s: %w", filepath.Base(path), err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", fmt.Errorf("prompt: template %s is empty", filepath.Base(path))
	}
	return text, nil
}

// BasePrompt returns the base instruction text.
func (s *Store) BasePrompt() string {
	return s.basePrompt
}

// SafetyRules returns the safety rule text.
func (s *Store) SafetyRules() string {
	return s.safetyRules
}
