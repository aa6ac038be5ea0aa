// Package domain provides the closed set of query domains and the keyword
// classifier that assigns exactly one domain to every query.
package domain

// Domain is a topic category used to select response guidance for a query.
//
// The domain set is closed: every query maps to exactly one of the constants
// below, with Other as the fallback when no keyword matches.
type Domain string

const (
	// GovernmentScheme covers welfare schemes, subsidies, and public benefits.
	GovernmentScheme Domain = "government-scheme"

	// Health covers symptoms, diseases, treatment, and public health.
	Health Domain = "health"

	// Education covers schools, scholarships, exams, and admissions.
	Education Domain = "education"

	// Environment covers pollution, climate, waste, and conservation.
	Environment Domain = "environment"

	// Other is the fallback for queries matching no domain keyword list.
	Other Domain = "other"
)

// All returns every domain in classification priority order, Other last.
//
// The order is fixed: government-scheme > health > education > environment.
// Classification checks domains in this order and the first match wins.
func All() []Domain {
	return []Domain{GovernmentScheme, Health, Education, Environment, Other}
}

// String returns the domain tag as a string.
func (d Domain) String() string {
	return string(d)
}

// Valid reports whether d is a member of the closed domain set.
func (d Domain) Valid() bool {
	switch d {
	case GovernmentScheme, Health, Education, Environment, Other:
		return true
	}
	return false
}

// Parse converts a string tag to a Domain.
//
// Unknown tags return Other with ok=false, keeping the domain set closed
// even for callers holding free-form strings.
func Parse(s string) (Domain, bool) {
	d := Domain(s)
	if d.Valid() {
		return d, true
	}
	return Other, false
}
