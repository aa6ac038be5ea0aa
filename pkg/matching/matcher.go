package matching

import (
	"sort"
	"strings"
)

// Default thresholds and limits for matching.
const (
	// MinMatchScore is the minimum normalized score for a volunteer match.
	MinMatchScore = 0.3

	// MaxRecommendations caps how many matches FindMatches returns.
	MaxRecommendations = 5

	// opportunityThresholdBoost raises the bar when matching volunteers
	// to a specific opportunity rather than browsing for a volunteer.
	opportunityThresholdBoost = 0.1
)

// Weights controls the contribution of each compatibility criterion.
//
// The weights sum to 1.0; scores are normalized against the total so a
// custom Weights with a different sum still yields scores in 0.0-1.0.
type Weights struct {
	Skills       float64
	Location     float64
	Interests    float64
	Urgency      float64
	Experience   float64
	Availability float64
}

// DefaultWeights returns the standard criterion weights.
func DefaultWeights() Weights {
	return Weights{
		Skills:       0.4,
		Location:     0.2,
		Interests:    0.15,
		Urgency:      0.1,
		Experience:   0.1,
		Availability: 0.05,
	}
}

// total returns the sum of all weights, used for normalization.
func (w Weights) total() float64 {
	return w.Skills + w.Location + w.Interests + w.Urgency + w.Experience + w.Availability
}

// Matcher scores volunteer-opportunity compatibility.
//
// Scoring is deterministic and purely computational: skill overlap, location
// proximity, interest alignment, urgency, experience, and availability are
// combined under the configured weights and normalized to 0.0-1.0.
//
// Example usage:
//
//	m := matching.NewMatcher(matching.DefaultWeights())
//	results := m.FindMatches(volunteer, opportunities)
type Matcher struct {
	weights Weights
}

// NewMatcher creates a Matcher with the given weights.
func NewMatcher(weights Weights) *Matcher {
	return &Matcher{weights: weights}
}

// FindMatches returns the best opportunities for a volunteer.
//
// Opportunities scoring below MinMatchScore are excluded. Results are sorted
// by score descending and capped at MaxRecommendations.
func (m *Matcher) FindMatches(v *Volunteer, opportunities []*Opportunity) []*MatchResult {
	var matches []*MatchResult
	for _, opp := range opportunities {
		score, reasoning, confidence := m.compatibility(v, opp)
		if score >= MinMatchScore {
			matches = append(matches, &MatchResult{
				Volunteer:   v,
				Opportunity: opp,
				Score:       score,
				Reasoning:   reasoning,
				Confidence:  confidence,
			})
		}
	}

	sortMatches(matches)
	if len(matches) > MaxRecommendations {
		matches = matches[:MaxRecommendations]
	}
	return matches
}

// FindVolunteers returns the best volunteers for an opportunity.
//
// The score threshold is MinMatchScore plus a boost, and results are capped
// at the number of volunteers the opportunity needs.
func (m *Matcher) FindVolunteers(opp *Opportunity, volunteers []*Volunteer) []*MatchResult {
	threshold := MinMatchScore + opportunityThresholdBoost

	var matches []*MatchResult
	for _, v := range volunteers {
		score, reasoning, confidence := m.compatibility(v, opp)
		if score >= threshold {
			matches = append(matches, &MatchResult{
				Volunteer:   v,
				Opportunity: opp,
				Score:       score,
				Reasoning:   reasoning,
				Confidence:  confidence,
			})
		}
	}

	sortMatches(matches)
	if opp.VolunteersNeeded > 0 && len(matches) > opp.VolunteersNeeded {
		matches = matches[:opp.VolunteersNeeded]
	}
	return matches
}

// compatibility computes the normalized score, reasoning, and confidence
// for one volunteer-opportunity pair.
func (m *Matcher) compatibility(v *Volunteer, opp *Opportunity) (float64, []string, float64) {
	w := m.weights
	score := 0.0
	var reasoning []string

	skillScore := skillMatch(v.Skills, opp.RequiredSkills)
	score += skillScore * w.Skills
	if skillScore > 0.6 {
		reasoning = append(reasoning, "Strong skill alignment")
	}

	locationScore := 0.3
	if strings.EqualFold(v.Location, opp.Location) {
		locationScore = 1.0
		reasoning = append(reasoning, "Perfect location match")
	}
	score += locationScore * w.Location

	interestScore := 0.2
	for _, area := range v.Interests {
		if area == opp.Area {
			interestScore = 1.0
			reasoning = append(reasoning, "Matches interests")
			break
		}
	}
	score += interestScore * w.Interests

	urgencyScore := float64(opp.Urgency) * 0.25
	if urgencyScore > w.Urgency {
		urgencyScore = w.Urgency
	}
	score += urgencyScore
	if opp.Urgency >= UrgencyHigh {
		reasoning = append(reasoning, "High urgency need")
	}

	score += experienceScore(v.Experience) * w.Experience
	score += availabilityScore(v.Availability) * w.Availability

	total := w.total()
	if total <= 0 {
		return 0, reasoning, 0
	}
	normalized := score / total

	confidence := normalized * 1.2
	if confidence > 1.0 {
		confidence = 1.0
	}

	return normalized, reasoning, confidence
}

// skillMatch returns the fraction of required skills the volunteer covers.
//
// No required skills yields a neutral 0.5. Matching is case-insensitive.
func skillMatch(volunteerSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0.5
	}

	have := make(map[string]bool, len(volunteerSkills))
	for _, s := range volunteerSkills {
		have[strings.ToLower(s)] = true
	}

	matched := 0
	for _, s := range requiredSkills {
		if have[strings.ToLower(s)] {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

// experienceScore maps an experience level to a 0.0-1.0 score.
func experienceScore(level ExperienceLevel) float64 {
	switch level {
	case ExperienceBeginner:
		return 0.3
	case ExperienceIntermediate:
		return 0.7
	case ExperienceExpert:
		return 1.0
	}
	return 0.5
}

// availabilityScore scores a volunteer's availability map.
func availabilityScore(availability map[string]bool) float64 {
	for _, available := range availability {
		if available {
			return 0.8
		}
	}
	return 0.2
}

// sortMatches orders matches by score descending, breaking ties by
// opportunity ID for deterministic output.
func sortMatches(matches []*MatchResult) {
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Opportunity.ID < matches[j].Opportunity.ID
	})
}
