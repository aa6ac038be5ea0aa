package core

import (
	"time"

	"github.com/agentforgood/sahayak-go/pkg/domain"
)

// Answer is the result of one answered query.
//
// An Answer is owned by the request that produced it: the assembled prompt
// is discarded after the upstream call, and the formatted text is the only
// model output retained.
type Answer struct {
	// ID is the unique identifier of the answer (snowflake).
	ID int64 `json:"id"`

	// Query is the raw question text as received.
	Query string `json:"query"`

	// Domain is the domain tag assigned by the classifier.
	Domain domain.Domain `json:"domain"`

	// Text is the formatted answer text.
	Text string `json:"text"`

	// Model is the upstream model that produced the answer.
	Model string `json:"model"`

	// CreatedAt is when the answer was produced.
	CreatedAt time.Time `json:"created_at"`
}
