package core

import "github.com/agentforgood/sahayak-go/pkg/domain"

// AskOption is a function type for configuring Ask operations.
//
// Options are applied using the functional options pattern, allowing
// flexible configuration without requiring all parameters.
type AskOption func(*AskOptions)

// AskOptions contains configuration options for Ask operations.
type AskOptions struct {
	// UserID identifies the user asking the question. Used to key history
	// records. Defaults to "anonymous".
	UserID string

	// Domain overrides the classifier's domain assignment when non-empty.
	// Must be a member of the closed domain set.
	Domain domain.Domain

	// SkipHistory disables history recording for this question.
	SkipHistory bool
}

// WithUserID sets the user ID for an Ask operation.
//
// Example:
//
//	answer, _ := client.Ask(ctx, "question", core.WithUserID("user_001"))
func WithUserID(userID string) AskOption {
	return func(opts *AskOptions) {
		opts.UserID = userID
	}
}

// WithDomain overrides the classifier's domain assignment.
//
// Example:
//
//	answer, _ := client.Ask(ctx, "question", core.WithDomain(domain.Health))
func WithDomain(d domain.Domain) AskOption {
	return func(opts *AskOptions) {
		opts.Domain = d
	}
}

// WithoutHistory disables history recording for this question.
func WithoutHistory() AskOption {
	return func(opts *AskOptions) {
		opts.SkipHistory = true
	}
}

// applyAskOptions applies a slice of AskOption functions to create AskOptions.
func applyAskOptions(opts []AskOption) *AskOptions {
	options := &AskOptions{
		UserID: "anonymous",
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
