// Package impact tracks completed volunteer work and measures social impact.
package impact

import (
	"sync"
	"time"

	"github.com/agentforgood/sahayak-go/pkg/matching"
)

// areaMultipliers weight the impact score by cause area.
var areaMultipliers = map[matching.ImpactArea]float64{
	matching.AreaDisasterRelief: 2.0,
	matching.AreaHealthcare:     1.5,
	matching.AreaPoverty:        1.4,
	matching.AreaEducation:      1.3,
	matching.AreaEquality:       1.3,
	matching.AreaEnvironment:    1.2,
}

// Outcomes captures the measured results of a completed opportunity.
type Outcomes struct {
	// HoursContributed is the volunteer hours spent.
	HoursContributed float64 `json:"hours_contributed"`

	// PeopleImpacted counts people directly helped.
	PeopleImpacted int `json:"people_impacted"`

	// QualityRating grades the work quality (0.0-1.0). Defaults to 0.5.
	QualityRating float64 `json:"quality_rating"`

	// Sustainability grades long-term versus one-off impact (0.0-1.0).
	// Defaults to 0.5.
	Sustainability float64 `json:"sustainability"`

	// Feedback is free-form feedback text.
	Feedback string `json:"feedback,omitempty"`
}

// Completion is one recorded completion with its computed impact score.
type Completion struct {
	// VolunteerID and VolunteerName identify the volunteer.
	VolunteerID   int64  `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name"`

	// OpportunityID and OpportunityTitle identify the opportunity.
	OpportunityID    int64  `json:"opportunity_id"`
	OpportunityTitle string `json:"opportunity_title"`

	// Outcomes holds the measured results.
	Outcomes Outcomes `json:"outcomes"`

	// Score is the computed impact score (0.0-1.0).
	Score float64 `json:"impact_score"`

	// CompletedAt is when the completion was recorded.
	CompletedAt time.Time `json:"completed_at"`
}

// Report aggregates impact over a reporting window.
type Report struct {
	// WindowDays is the length of the reporting window in days.
	WindowDays int `json:"window_days"`

	// TotalCompletions counts completions inside the window.
	TotalCompletions int `json:"total_completions"`

	// TotalHours sums volunteer hours inside the window.
	TotalHours float64 `json:"total_hours"`

	// TotalPeopleImpacted sums people helped inside the window.
	TotalPeopleImpacted int `json:"total_people_impacted"`

	// TotalScore sums impact scores inside the window.
	TotalScore float64 `json:"total_score"`

	// UniqueVolunteers counts distinct volunteers inside the window.
	UniqueVolunteers int `json:"unique_volunteers"`

	// AverageScorePerCompletion is TotalScore / TotalCompletions.
	AverageScorePerCompletion float64 `json:"average_score_per_completion"`
}

// Tracker records completions and generates impact reports.
//
// The tracker is safe for concurrent use.
//
// Example usage:
//
//	t := impact.NewTracker()
//	c := t.RecordCompletion(volunteer, opportunity, outcomes)
//	report := t.GenerateReport(30)
type Tracker struct {
	mu          sync.RWMutex
	completions []*Completion
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordCompletion records a completed opportunity and computes its impact.
func (t *Tracker) RecordCompletion(v *matching.Volunteer, opp *matching.Opportunity, outcomes Outcomes) *Completion {
	if outcomes.QualityRating == 0 {
		outcomes.QualityRating = 0.5
	}
	if outcomes.Sustainability == 0 {
		outcomes.Sustainability = 0.5
	}

	completion := &Completion{
		VolunteerID:      v.ID,
		VolunteerName:    v.Name,
		OpportunityID:    opp.ID,
		OpportunityTitle: opp.Title,
		Outcomes:         outcomes,
		Score:            Score(opp, outcomes),
		CompletedAt:      time.Now(),
	}

	t.mu.Lock()
	t.completions = append(t.completions, completion)
	t.mu.Unlock()

	return completion
}

// Score computes the impact score for an opportunity's outcomes.
//
// The base score from people helped and quality-weighted hours is multiplied
// by the area multiplier, the urgency multiplier, and a sustainability
// factor, then capped at 1.0.
func Score(opp *matching.Opportunity, outcomes Outcomes) float64 {
	base := 0.0

	people := float64(outcomes.PeopleImpacted) * 0.1
	if people > 0.4 {
		people = 0.4
	}
	base += people

	base += outcomes.HoursContributed * outcomes.QualityRating * 0.05

	area := areaMultipliers[opp.Area]
	if area == 0 {
		area = 1.0
	}

	final := base * area * urgencyMultiplier(opp.Urgency) * (1 + outcomes.Sustainability)
	if final > 1.0 {
		final = 1.0
	}
	return final
}

// urgencyMultiplier scales impact by how urgent the opportunity was.
func urgencyMultiplier(u matching.UrgencyLevel) float64 {
	switch u {
	case matching.UrgencyLow:
		return 0.5
	case matching.UrgencyMedium:
		return 1.0
	case matching.UrgencyHigh:
		return 1.5
	case matching.UrgencyCritical:
		return 2.0
	}
	return 1.0
}

// GenerateReport aggregates completions recorded in the last windowDays days.
func (t *Tracker) GenerateReport(windowDays int) *Report {
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	t.mu.RLock()
	defer t.mu.RUnlock()

	report := &Report{WindowDays: windowDays}
	volunteers := make(map[int64]bool)

	for _, c := range t.completions {
		if c.CompletedAt.Before(cutoff) {
			continue
		}
		report.TotalCompletions++
		report.TotalHours += c.Outcomes.HoursContributed
		report.TotalPeopleImpacted += c.Outcomes.PeopleImpacted
		report.TotalScore += c.Score
		volunteers[c.VolunteerID] = true
	}

	report.UniqueVolunteers = len(volunteers)
	if report.TotalCompletions > 0 {
		report.AverageScorePerCompletion = report.TotalScore / float64(report.TotalCompletions)
	}
	return report
}
