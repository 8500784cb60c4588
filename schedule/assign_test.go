package schedule

import (
	"testing"
	"time"

	"github.com/Dosada05/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityShuffler keeps the natural order so assignment outcomes are exact.
type identityShuffler struct{}

func (identityShuffler) Perm(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}

func day(offset int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func fixtureOn(id int, date time.Time) *models.Fixture {
	return &models.Fixture{ID: id, GameDate: date, GameTime: "18:00"}
}

func TestAssignVenues_RoundRobinWithinDay(t *testing.T) {
	fixtures := []*models.Fixture{
		fixtureOn(1, day(0)), fixtureOn(2, day(0)), fixtureOn(3, day(0)), fixtureOn(4, day(0)),
	}
	venues := []models.Venue{
		{ID: 10, Name: "Central Arena", Available: true},
		{ID: 20, Name: "West Hall", Available: true},
	}

	require.NoError(t, AssignVenues(fixtures, venues, identityShuffler{}))

	// Venues repeat within a day only after every other one has been used.
	assert.Equal(t, 10, *fixtures[0].VenueID)
	assert.Equal(t, 20, *fixtures[1].VenueID)
	assert.Equal(t, 10, *fixtures[2].VenueID)
	assert.Equal(t, 20, *fixtures[3].VenueID)
}

func TestAssignVenues_NoDoubleBookWhenEnoughVenues(t *testing.T) {
	fixtures := []*models.Fixture{
		fixtureOn(1, day(0)), fixtureOn(2, day(0)), fixtureOn(3, day(1)), fixtureOn(4, day(1)),
	}
	venues := []models.Venue{
		{ID: 1, Available: true}, {ID: 2, Available: true}, {ID: 3, Available: true},
	}

	require.NoError(t, AssignVenues(fixtures, venues, identityShuffler{}))

	perDay := make(map[string]map[int]bool)
	for _, fx := range fixtures {
		require.NotNil(t, fx.VenueID)
		key := fx.GameDate.Format("2006-01-02")
		if perDay[key] == nil {
			perDay[key] = make(map[int]bool)
		}
		assert.Falsef(t, perDay[key][*fx.VenueID], "venue %d double-booked on %s", *fx.VenueID, key)
		perDay[key][*fx.VenueID] = true
	}
}

func TestAssignVenues_SkipsUnavailable(t *testing.T) {
	fixtures := []*models.Fixture{fixtureOn(1, day(0)), fixtureOn(2, day(0))}
	venues := []models.Venue{
		{ID: 1, Available: false},
		{ID: 2, Available: true},
	}

	require.NoError(t, AssignVenues(fixtures, venues, identityShuffler{}))
	assert.Equal(t, 2, *fixtures[0].VenueID)
	assert.Equal(t, 2, *fixtures[1].VenueID)
}

func TestAssignVenues_OverwritesPreviousChoices(t *testing.T) {
	old := 99
	fixtures := []*models.Fixture{fixtureOn(1, day(0))}
	fixtures[0].VenueID = &old

	require.NoError(t, AssignVenues(fixtures, []models.Venue{{ID: 5, Available: true}}, identityShuffler{}))
	assert.Equal(t, 5, *fixtures[0].VenueID)
}

func TestAssignVenues_FailsWithoutVenues(t *testing.T) {
	fixtures := []*models.Fixture{fixtureOn(1, day(0))}
	err := AssignVenues(fixtures, []models.Venue{{ID: 1, Available: false}}, identityShuffler{})
	assert.ErrorIs(t, err, ErrNoVenuesAvailable)
	assert.Nil(t, fixtures[0].VenueID)
}

func TestAssignReferees_UniquePerDay(t *testing.T) {
	fixtures := []*models.Fixture{fixtureOn(1, day(0)), fixtureOn(2, day(0))}
	referees := []models.Referee{{ID: 1}, {ID: 2}}

	AssignReferees(fixtures, referees, identityShuffler{})

	require.NotNil(t, fixtures[0].RefereeID)
	require.NotNil(t, fixtures[1].RefereeID)
	assert.NotEqual(t, *fixtures[0].RefereeID, *fixtures[1].RefereeID)
}

func TestAssignReferees_RestDayBetweenAssignments(t *testing.T) {
	fixtures := []*models.Fixture{fixtureOn(1, day(0)), fixtureOn(2, day(1)), fixtureOn(3, day(2))}
	referees := []models.Referee{{ID: 1}, {ID: 2}}

	AssignReferees(fixtures, referees, identityShuffler{})

	// Day 0 takes referee 1, so day 1 must take referee 2 and day 2 is free
	// for referee 1 again.
	assert.Equal(t, 1, *fixtures[0].RefereeID)
	assert.Equal(t, 2, *fixtures[1].RefereeID)
	assert.Equal(t, 1, *fixtures[2].RefereeID)
}

func TestAssignReferees_ManualChoicePreserved(t *testing.T) {
	manual := 2
	fixtures := []*models.Fixture{fixtureOn(1, day(0)), fixtureOn(2, day(0))}
	fixtures[0].RefereeID = &manual
	referees := []models.Referee{{ID: 1}, {ID: 2}}

	AssignReferees(fixtures, referees, identityShuffler{})

	assert.Equal(t, 2, *fixtures[0].RefereeID)
	// The manually booked referee is busy that day, so the other one is picked.
	assert.Equal(t, 1, *fixtures[1].RefereeID)
}

func TestAssignReferees_ExhaustionLeavesUnassigned(t *testing.T) {
	fixtures := []*models.Fixture{fixtureOn(1, day(0)), fixtureOn(2, day(0))}
	referees := []models.Referee{{ID: 1}}

	AssignReferees(fixtures, referees, identityShuffler{})

	assert.Equal(t, 1, *fixtures[0].RefereeID)
	assert.Nil(t, fixtures[1].RefereeID, "no candidate left: fixture stays unassigned, not an error")
}

func TestAssignReferees_NoReferees(t *testing.T) {
	fixtures := []*models.Fixture{fixtureOn(1, day(0))}
	AssignReferees(fixtures, nil, identityShuffler{})
	assert.Nil(t, fixtures[0].RefereeID)
}
