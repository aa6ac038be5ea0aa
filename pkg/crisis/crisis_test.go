package crisis_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentforgood/sahayak-go/pkg/crisis"
	"github.com/agentforgood/sahayak-go/pkg/matching"
)

func testAlert() *crisis.Alert {
	return &crisis.Alert{
		Type:            "flood",
		Location:        "Guwahati",
		Severity:        "high",
		PeopleAffected:  5000,
		ResourcesNeeded: []string{"first aid", "boats", "food distribution"},
	}
}

func TestAlertValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*crisis.Alert)
		wantErr bool
	}{
		{
			name:   "valid alert",
			mutate: func(a *crisis.Alert) {},
		},
		{
			name:    "missing type",
			mutate:  func(a *crisis.Alert) { a.Type = "" },
			wantErr: true,
		},
		{
			name:    "missing location",
			mutate:  func(a *crisis.Alert) { a.Location = "" },
			wantErr: true,
		},
		{
			name:    "no resources needed",
			mutate:  func(a *crisis.Alert) { a.ResourcesNeeded = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := testAlert()
			tt.mutate(alert)
			err := alert.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponsePlan(t *testing.T) {
	r := crisis.NewResponder(crisis.DefaultResponseRadiusKM)
	alert := testAlert()

	opp, err := r.ResponsePlan(alert, 42)
	require.NoError(t, err)
	require.NotNil(t, opp)

	assert.Equal(t, int64(42), opp.ID)
	assert.Equal(t, "Emergency Response: Flood", opp.Title)
	assert.Equal(t, matching.AreaDisasterRelief, opp.Area)
	assert.Equal(t, matching.UrgencyCritical, opp.Urgency)
	assert.Equal(t, "Guwahati", opp.Location)
	assert.Equal(t, alert.ResourcesNeeded, opp.RequiredSkills)
	assert.Equal(t, 50, opp.VolunteersNeeded)

	// The response stays open for a week.
	assert.WithinDuration(t, opp.Start.Add(7*24*time.Hour), opp.End, time.Second)
}

func TestResponsePlanTitleCase(t *testing.T) {
	r := crisis.NewResponder(0)
	alert := testAlert()
	alert.Type = "heat_wave"

	opp, err := r.ResponsePlan(alert, 1)
	require.NoError(t, err)
	assert.Equal(t, "Emergency Response: Heat Wave", opp.Title)
}

func TestResponsePlanInvalidAlert(t *testing.T) {
	r := crisis.NewResponder(crisis.DefaultResponseRadiusKM)

	opp, err := r.ResponsePlan(&crisis.Alert{}, 1)
	assert.Error(t, err)
	assert.Nil(t, opp)
}

func TestMobilize(t *testing.T) {
	r := crisis.NewResponder(crisis.DefaultResponseRadiusKM)
	alert := testAlert()

	local := &matching.Volunteer{ID: 1, Name: "Asha", Location: "Guwahati"}
	nearbyCity := &matching.Volunteer{ID: 2, Name: "Ravi", Location: "Jorhat"}

	// The default estimate puts any differently named location 25 km away,
	// inside the 50 km default radius.
	mobilized := r.Mobilize(alert, []*matching.Volunteer{local, nearbyCity})
	assert.Len(t, mobilized, 2)
}

func TestMobilizeWithDistanceFunc(t *testing.T) {
	distances := map[string]float64{
		"Guwahati": 0,
		"Jorhat":   280,
		"Tezpur":   180,
	}

	r := crisis.NewResponder(crisis.DefaultResponseRadiusKM).
		WithDistanceFunc(func(a, b string) float64 {
			return distances[a]
		})

	alert := testAlert()
	volunteers := []*matching.Volunteer{
		{ID: 1, Location: "Guwahati"},
		{ID: 2, Location: "Jorhat"},
		{ID: 3, Location: "Tezpur"},
	}

	mobilized := r.Mobilize(alert, volunteers)
	require.Len(t, mobilized, 1)
	assert.Equal(t, int64(1), mobilized[0].ID)
}

func TestNewResponderDefaultRadius(t *testing.T) {
	// A non-positive radius falls back to the default; with the default
	// name-based estimate every volunteer is within range.
	r := crisis.NewResponder(-1)
	alert := testAlert()

	mobilized := r.Mobilize(alert, []*matching.Volunteer{{ID: 1, Location: "Anywhere"}})
	assert.Len(t, mobilized, 1)
}
