// Package format cleans raw model completions for display.
package format

import "strings"

// boilerplatePrefixes are leading marker lines some models emit before the
// actual answer. They are dropped when they appear as the first line.
var boilerplatePrefixes = []string{
	"Answer:",
	"Response:",
	"Output:",
}

// Clean normalizes a raw model completion for display.
//
// Cleaning is pure and total: it trims surrounding whitespace, unwraps a
// completion that arrives fenced as a single markdown code block, drops a
// leading boilerplate marker line, and collapses runs of three or more
// newlines to two. Empty input yields an empty string.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}

	text = stripFence(text)

	for _, prefix := range boilerplatePrefixes {
		if rest, ok := strings.CutPrefix(text, prefix); ok {
			text = strings.TrimSpace(rest)
			break
		}
	}

	// Collapse excessive blank lines left by template-heavy completions.
	for strings.Contains(text, "\n\n\n") {
		text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	}

	return strings.TrimSpace(text)
}

// stripFence unwraps a completion that is entirely one fenced code block.
// Fences inside a larger answer are left alone.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") || !strings.HasSuffix(text, "```") {
		return text
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(text, "```"), "```")
	// Drop the language tag on the opening fence, if any.
	if idx := strings.Index(inner, "\n"); idx >= 0 {
		inner = inner[idx+1:]
	} else {
		// Single-line fence like ```text``` has no body to keep.
		return strings.TrimSpace(inner)
	}
	if strings.Contains(inner, "```") {
		// Interior fences mean the block structure is ambiguous; keep as is.
		return text
	}
	return strings.TrimSpace(inner)
}
