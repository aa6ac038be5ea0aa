// Package matching provides weighted volunteer-opportunity matching.
package matching

import "time"

// ImpactArea is the cause area an opportunity serves.
type ImpactArea string

const (
	AreaEducation      ImpactArea = "education"
	AreaHealthcare     ImpactArea = "healthcare"
	AreaEnvironment    ImpactArea = "environment"
	AreaPoverty        ImpactArea = "poverty"
	AreaEquality       ImpactArea = "equality"
	AreaDisasterRelief ImpactArea = "disaster_relief"
)

// UrgencyLevel ranks how quickly an opportunity needs volunteers.
type UrgencyLevel int

const (
	UrgencyLow UrgencyLevel = iota + 1
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

// String returns the urgency level name.
func (u UrgencyLevel) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyMedium:
		return "medium"
	case UrgencyHigh:
		return "high"
	case UrgencyCritical:
		return "critical"
	}
	return "unknown"
}

// ExperienceLevel describes a volunteer's experience.
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceExpert       ExperienceLevel = "expert"
)

// Volunteer is a registered volunteer profile.
type Volunteer struct {
	// ID is the unique identifier of the volunteer.
	ID int64 `json:"id"`

	// Name is the volunteer's display name.
	Name string `json:"name"`

	// Skills lists the volunteer's skills (free-form tags).
	Skills []string `json:"skills"`

	// Location is the volunteer's home location.
	Location string `json:"location"`

	// Availability maps period names ("weekdays", "weekends", "emergency")
	// to whether the volunteer is available then.
	Availability map[string]bool `json:"availability"`

	// Interests lists the impact areas the volunteer cares about.
	Interests []ImpactArea `json:"interests"`

	// Experience is the volunteer's experience level.
	Experience ExperienceLevel `json:"experience"`

	// Languages lists the languages the volunteer speaks.
	Languages []string `json:"languages,omitempty"`

	// MaxHoursPerWeek caps the volunteer's weekly commitment.
	MaxHoursPerWeek int `json:"max_hours_per_week,omitempty"`

	// CreatedAt is when the profile was registered.
	CreatedAt time.Time `json:"created_at"`
}

// Opportunity is a community service opportunity seeking volunteers.
type Opportunity struct {
	// ID is the unique identifier of the opportunity.
	ID int64 `json:"id"`

	// Title is the short opportunity title.
	Title string `json:"title"`

	// Organization is the hosting organization.
	Organization string `json:"organization"`

	// Description describes the work.
	Description string `json:"description,omitempty"`

	// RequiredSkills lists the skills the opportunity needs.
	RequiredSkills []string `json:"required_skills"`

	// Location is where the work happens.
	Location string `json:"location"`

	// Area is the impact area the opportunity serves.
	Area ImpactArea `json:"impact_area"`

	// Urgency ranks how quickly volunteers are needed.
	Urgency UrgencyLevel `json:"urgency"`

	// Start and End bound the opportunity timeframe.
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// VolunteersNeeded is how many volunteers the opportunity can take.
	VolunteersNeeded int `json:"volunteers_needed"`

	// CreatedAt is when the opportunity was posted.
	CreatedAt time.Time `json:"created_at"`
}

// MatchResult pairs a volunteer with an opportunity and the computed fit.
type MatchResult struct {
	// Volunteer is the matched volunteer.
	Volunteer *Volunteer `json:"volunteer"`

	// Opportunity is the matched opportunity.
	Opportunity *Opportunity `json:"opportunity"`

	// Score is the normalized compatibility score (0.0-1.0).
	Score float64 `json:"score"`

	// Reasoning lists human-readable reasons for the match.
	Reasoning []string `json:"reasoning"`

	// Confidence is the confidence in the score (0.0-1.0).
	Confidence float64 `json:"confidence"`
}
