package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentforgood/sahayak-go/pkg/format"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain text unchanged",
			raw:  "A clear answer.",
			want: "A clear answer.",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "  \n  A clear answer.  \n\n",
			want: "A clear answer.",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only input",
			raw:  "   \n\t  ",
			want: "",
		},
		{
			name: "fully fenced completion unwrapped",
			raw:  "```\nStep one.\nStep two.\n```",
			want: "Step one.\nStep two.",
		},
		{
			name: "fence with language tag unwrapped",
			raw:  "```markdown\nStep one.\n```",
			want: "Step one.",
		},
		{
			name: "interior fence kept as is",
			raw:  "Run this:\n```sh\nls\n```\nThen check the output.",
			want: "Run this:\n```sh\nls\n```\nThen check the output.",
		},
		{
			name: "answer prefix dropped",
			raw:  "Answer: The office opens at 10am.",
			want: "The office opens at 10am.",
		},
		{
			name: "response prefix dropped",
			raw:  "Response:\nThe office opens at 10am.",
			want: "The office opens at 10am.",
		},
		{
			name: "prefix only dropped at the start",
			raw:  "See below.\nAnswer: 42",
			want: "See below.\nAnswer: 42",
		},
		{
			name: "blank line runs collapsed",
			raw:  "First paragraph.\n\n\n\nSecond paragraph.",
			want: "First paragraph.\n\nSecond paragraph.",
		},
		{
			name: "single blank line kept",
			raw:  "First paragraph.\n\nSecond paragraph.",
			want: "First paragraph.\n\nSecond paragraph.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, format.Clean(tt.raw))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"```\nfenced\n```",
		"  padded  ",
		"a\n\n\nb",
		"Answer: plain",
	}
	for _, raw := range inputs {
		once := format.Clean(raw)
		assert.Equal(t, once, format.Clean(once))
	}
}
