package domain

import "strings"

// Classifier assigns a Domain to a raw query via keyword matching.
//
// Classification is a total function over all strings: every query, including
// the empty string, yields exactly one Domain. Matching is case-insensitive
// substring search against fixed per-domain keyword lists, checked in a fixed
// priority order; the first domain with a matching keyword wins and queries
// matching nothing fall back to Other.
//
// The classifier holds no mutable state and is safe for concurrent use.
//
// Example usage:
//
//	c := domain.NewClassifier()
//	d := c.Classify("How do I apply for PM Awas Yojana?")
//	// d == domain.GovernmentScheme
type Classifier struct {
	// rules holds the keyword lists in priority order.
	rules []rule
}

// rule pairs a domain with its lowercase keyword list.
type rule struct {
	domain   Domain
	keywords []string
}

// defaultRules is the fixed keyword table, in priority order.
//
// Keywords are matched as lowercase substrings, so partial forms like
// "vaccin" cover "vaccine", "vaccination", and "vaccinated".
var defaultRules = []rule{
	{
		domain: GovernmentScheme,
		keywords: []string{
			"yojana", "scheme", "pradhan mantri", "pm awas", "pm kisan",
			"subsidy", "ration card", "aadhaar", "pension", "mgnrega",
			"ayushman", "welfare", "government benefit", "sarkari",
		},
	},
	{
		domain: Health,
		keywords: []string{
			"health", "symptom", "disease", "doctor", "medicine", "fever",
			"heat stroke", "stroke", "vaccin", "hospital", "nutrition",
			"pregnan", "diabetes", "malaria", "dengue", "first aid",
		},
	},
	{
		domain: Education,
		keywords: []string{
			"school", "education", "scholarship", "exam", "college",
			"student", "admission", "teacher", "literacy", "study",
			"syllabus", "degree",
		},
	},
	{
		domain: Environment,
		keywords: []string{
			"environment", "pollution", "climate", "waste", "recycl",
			"conservation", "tree plantation", "air quality", "water quality",
			"drought", "deforestation", "wildlife",
		},
	},
}

// NewClassifier creates a Classifier with the default keyword table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules}
}

// Classify returns the Domain for a raw query.
//
// The query is lowercased once and each domain's keyword list is scanned in
// priority order. Returns Other when no keyword matches, including for the
// empty string. Never fails and has no side effects.
func (c *Classifier) Classify(query string) Domain {
	q := strings.ToLower(query)
	if q == "" {
		return Other
	}

	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(q, kw) {
				return r.domain
			}
		}
	}

	return Other
}

// Keywords returns a copy of the keyword list for a domain.
//
// Other has no keywords and returns nil. Useful for surfacing the
// classification table in diagnostics and CLI output.
func (c *Classifier) Keywords(d Domain) []string {
	for _, r := range c.rules {
		if r.domain == d {
			out := make([]string, len(r.keywords))
			copy(out, r.keywords)
			return out
		}
	}
	return nil
}
