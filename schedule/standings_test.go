package schedule

import (
	"encoding/json"
	"testing"

	"github.com/Dosada05/league-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completed(fixtureID, home, away, homeScore, awayScore int) models.MatchResult {
	return models.MatchResult{
		FixtureID:  fixtureID,
		HomeTeamID: home,
		AwayTeamID: away,
		HomeScore:  homeScore,
		AwayScore:  awayScore,
		Completed:  true,
	}
}

func TestComputeStandings_Aggregation(t *testing.T) {
	teams := makeTeams(4)
	results := []models.MatchResult{
		completed(1, 1, 2, 80, 70),
		completed(2, 3, 4, 65, 90),
		completed(3, 1, 3, 77, 60),
	}

	rows, err := ComputeStandings(teams, results)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Team 1: two wins.
	assert.Equal(t, 1, rows[0].TeamID)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 2, rows[0].Played)
	assert.Equal(t, 2, rows[0].Wins)
	assert.Equal(t, 0, rows[0].Losses)
	assert.Equal(t, 2, rows[0].Points)
	assert.Equal(t, 157, rows[0].GoalsFor)
	assert.Equal(t, 130, rows[0].GoalsAgainst)
	assert.Equal(t, 27, rows[0].Diff)

	// Team 4: one win with the biggest margin among one-win teams.
	assert.Equal(t, 4, rows[1].TeamID)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, 25, rows[1].Diff)
}

func TestComputeStandings_IgnoresUncompletedResults(t *testing.T) {
	teams := makeTeams(2)
	pending := completed(1, 1, 2, 50, 40)
	pending.Completed = false

	rows, err := ComputeStandings(teams, []models.MatchResult{pending})
	require.NoError(t, err)
	assert.Equal(t, 0, rows[0].Played)
	assert.Equal(t, 0, rows[1].Played)
}

func TestComputeStandings_TiedScoreIsDataError(t *testing.T) {
	teams := makeTeams(2)
	rows, err := ComputeStandings(teams, []models.MatchResult{completed(9, 1, 2, 75, 75)})
	assert.ErrorIs(t, err, ErrTiedScore)
	assert.Contains(t, err.Error(), "fixture 9")
	assert.Nil(t, rows)
}

func TestComputeStandings_TieBreakByGoalsFor(t *testing.T) {
	teams := makeTeams(4)
	// Teams 1 and 2 each beat a different opponent by 10, so equal points and
	// equal differential, but team 2 scored more.
	results := []models.MatchResult{
		completed(1, 1, 3, 60, 50),
		completed(2, 2, 4, 90, 80),
	}

	rows, err := ComputeStandings(teams, results)
	require.NoError(t, err)
	assert.Equal(t, 2, rows[0].TeamID)
	assert.Equal(t, 1, rows[1].TeamID)
}

func TestComputeStandings_FullTieKeepsRosterOrder(t *testing.T) {
	teams := makeTeams(4)

	rows, err := ComputeStandings(teams, nil)
	require.NoError(t, err)
	for i, row := range rows {
		assert.Equal(t, teams[i].ID, row.TeamID)
		assert.Equal(t, i+1, row.Rank)
	}
}

func TestComputeStandings_Idempotent(t *testing.T) {
	teams := makeTeams(4)
	results := []models.MatchResult{
		completed(1, 1, 2, 80, 70),
		completed(2, 3, 4, 81, 85),
		completed(3, 1, 4, 70, 72),
	}

	first, err := ComputeStandings(teams, results)
	require.NoError(t, err)
	second, err := ComputeStandings(teams, results)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestQualifierCount(t *testing.T) {
	assert.Equal(t, 2, QualifierCount(8))
	assert.Equal(t, 4, QualifierCount(16))
}

func TestResolveQualification_CrossGroupPairing(t *testing.T) {
	groupA := []models.StandingRow{{TeamID: 11, Rank: 1}, {TeamID: 12, Rank: 2}, {TeamID: 13, Rank: 3}, {TeamID: 14, Rank: 4}}
	groupB := []models.StandingRow{{TeamID: 21, Rank: 1}, {TeamID: 22, Rank: 2}, {TeamID: 23, Rank: 3}, {TeamID: 24, Rank: 4}}

	bracket := ResolveQualification(QualificationInput{
		GroupA: groupA, GroupB: groupB,
		GroupAComplete: true, GroupBComplete: true,
	})

	assert.Equal(t, 11, *bracket.Semifinal1.TeamA.TeamID)
	assert.Equal(t, 22, *bracket.Semifinal1.TeamB.TeamID)
	assert.Equal(t, 12, *bracket.Semifinal2.TeamA.TeamID)
	assert.Equal(t, 21, *bracket.Semifinal2.TeamB.TeamID)
	assert.Equal(t, models.PendingSlot, bracket.Final.TeamA.Placeholder)
	assert.Equal(t, models.PendingSlot, bracket.Final.TeamB.Placeholder)
}

func TestResolveQualification_PendingUntilGroupsComplete(t *testing.T) {
	groupA := []models.StandingRow{{TeamID: 11, Rank: 1}, {TeamID: 12, Rank: 2}}
	groupB := []models.StandingRow{{TeamID: 21, Rank: 1}, {TeamID: 22, Rank: 2}}

	bracket := ResolveQualification(QualificationInput{
		GroupA: groupA, GroupB: groupB,
		GroupAComplete: true, GroupBComplete: false,
	})

	assert.Nil(t, bracket.Semifinal1.TeamA.TeamID)
	assert.Equal(t, models.PendingSlot, bracket.Semifinal1.TeamA.Placeholder)
	assert.Equal(t, models.PendingSlot, bracket.Semifinal2.TeamB.Placeholder)
}

func TestResolveQualification_FinalFromSemifinalWinners(t *testing.T) {
	winner1, winner2 := 11, 21
	bracket := ResolveQualification(QualificationInput{
		Semifinal1Winner: &winner1,
		Semifinal2Winner: &winner2,
	})

	assert.Equal(t, 11, *bracket.Final.TeamA.TeamID)
	assert.Equal(t, 21, *bracket.Final.TeamB.TeamID)
}
