// Package crisis generates rapid-response plans for emergencies and selects
// volunteers to mobilize.
package crisis

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentforgood/sahayak-go/pkg/matching"
)

// DefaultResponseRadiusKM is how far from the crisis location volunteers are
// considered nearby enough to mobilize.
const DefaultResponseRadiusKM = 50.0

// responseWindow is how long a crisis response opportunity stays open.
const responseWindow = 7 * 24 * time.Hour

// Alert describes a reported crisis.
type Alert struct {
	// Type names the crisis, e.g. "flood" or "heat_wave".
	Type string `json:"type"`

	// Location is where the crisis is happening.
	Location string `json:"location"`

	// Severity is a free-form severity label.
	Severity string `json:"severity"`

	// PeopleAffected estimates how many people are affected.
	PeopleAffected int `json:"people_affected"`

	// ResourcesNeeded lists the skills and supplies the response needs.
	ResourcesNeeded []string `json:"resources_needed"`
}

// Validate checks that the alert carries the required fields.
func (a *Alert) Validate() error {
	if a.Type == "" {
		return fmt.Errorf("crisis: alert type is required")
	}
	if a.Location == "" {
		return fmt.Errorf("crisis: alert location is required")
	}
	if len(a.ResourcesNeeded) == 0 {
		return fmt.Errorf("crisis: at least one needed resource is required")
	}
	return nil
}

// Responder builds response plans from crisis alerts.
//
// Example usage:
//
//	r := crisis.NewResponder(crisis.DefaultResponseRadiusKM)
//	opp, err := r.ResponsePlan(alert, idGen)
//	nearby := r.Mobilize(alert, volunteers)
type Responder struct {
	// radiusKM bounds the mobilization distance.
	radiusKM float64

	// distance estimates kilometers between two named locations. The default
	// treats equal names (case-insensitive) as 0 km and everything else as
	// 25 km; deployments with a geocoder can replace it.
	distance func(a, b string) float64
}

// NewResponder creates a Responder with the given mobilization radius.
//
// A non-positive radius falls back to DefaultResponseRadiusKM.
func NewResponder(radiusKM float64) *Responder {
	if radiusKM <= 0 {
		radiusKM = DefaultResponseRadiusKM
	}
	return &Responder{
		radiusKM: radiusKM,
		distance: nameDistance,
	}
}

// WithDistanceFunc replaces the location distance estimate.
func (r *Responder) WithDistanceFunc(fn func(a, b string) float64) *Responder {
	r.distance = fn
	return r
}

// ResponsePlan builds a critical-urgency opportunity from a crisis alert.
//
// The opportunity is tagged disaster relief, requires the alert's needed
// resources as skills, and stays open for seven days.
//
// Parameters:
//   - alert: The crisis alert (validated)
//   - id: Unique ID for the new opportunity
//
// Returns the opportunity, or an error if the alert is invalid.
func (r *Responder) ResponsePlan(alert *Alert, id int64) (*matching.Opportunity, error) {
	if err := alert.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	title := fmt.Sprintf("Emergency Response: %s", titleCase(alert.Type))

	return &matching.Opportunity{
		ID:               id,
		Title:            title,
		Organization:     "Rapid Response Team",
		Description:      fmt.Sprintf("Urgent assistance needed for %s in %s", alert.Type, alert.Location),
		RequiredSkills:   alert.ResourcesNeeded,
		Location:         alert.Location,
		Area:             matching.AreaDisasterRelief,
		Urgency:          matching.UrgencyCritical,
		Start:            now,
		End:              now.Add(responseWindow),
		VolunteersNeeded: 50,
		CreatedAt:        now,
	}, nil
}

// Mobilize returns the volunteers within the response radius of the crisis.
func (r *Responder) Mobilize(alert *Alert, volunteers []*matching.Volunteer) []*matching.Volunteer {
	var nearby []*matching.Volunteer
	for _, v := range volunteers {
		if r.distance(v.Location, alert.Location) < r.radiusKM {
			nearby = append(nearby, v)
		}
	}
	return nearby
}

// nameDistance is the default location distance estimate.
func nameDistance(a, b string) float64 {
	if strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b)) {
		return 0
	}
	return 25
}

// titleCase renders a snake_case crisis type as a title.
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
