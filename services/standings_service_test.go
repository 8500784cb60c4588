package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-system/models"
)

func standingsFixtures() []*models.Fixture {
	return []*models.Fixture{
		{ID: 1, HomeTeamID: 1, AwayTeamID: 2, Group: models.GroupA, Sequence: 1},
		{ID: 2, HomeTeamID: 3, AwayTeamID: 4, Group: models.GroupB, Sequence: 2},
	}
}

func newStandingsTestService(results map[models.GroupLabel][]models.MatchResult, playoffs []*models.PlayoffFixture) StandingsService {
	fixtureRepo := &fakeFixtureRepo{
		listByTournament: func(ctx context.Context, tournamentID int) ([]*models.Fixture, error) {
			return standingsFixtures(), nil
		},
		listResults: func(ctx context.Context, tournamentID int, group models.GroupLabel) ([]models.MatchResult, error) {
			return results[group], nil
		},
	}
	playoffRepo := &fakePlayoffRepo{
		listByTournament: func(ctx context.Context, tournamentID int) ([]*models.PlayoffFixture, error) {
			return playoffs, nil
		},
	}
	return NewStandingsService(nil, fixtureRepo, playoffRepo, nil)
}

func TestStandingsServiceNoScheduleYet(t *testing.T) {
	fixtureRepo := &fakeFixtureRepo{}
	svc := NewStandingsService(nil, fixtureRepo, &fakePlayoffRepo{}, nil)

	_, err := svc.GetStandings(context.Background(), 3)
	require.ErrorIs(t, err, ErrScheduleNotGenerated)
}

func TestStandingsServicePendingUntilGroupsComplete(t *testing.T) {
	results := map[models.GroupLabel][]models.MatchResult{
		models.GroupA: {{FixtureID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 80, AwayScore: 70, Completed: true}},
		models.GroupB: {{FixtureID: 2, HomeTeamID: 3, AwayTeamID: 4, Completed: false}},
	}
	svc := newStandingsTestService(results, nil)

	view, err := svc.GetStandings(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 1, view.GroupA[0].TeamID)
	assert.Equal(t, 1, view.GroupA[0].Points)
	// Группа B не доиграна: полуфиналы остаются pending.
	assert.Nil(t, view.Qualification.Semifinal1.TeamA.TeamID)
	assert.Equal(t, models.PendingSlot, view.Qualification.Semifinal1.TeamA.Placeholder)
}

func TestStandingsServiceResolvesSemifinalsAndFinal(t *testing.T) {
	results := map[models.GroupLabel][]models.MatchResult{
		models.GroupA: {{FixtureID: 1, HomeTeamID: 1, AwayTeamID: 2, HomeScore: 80, AwayScore: 70, Completed: true}},
		models.GroupB: {{FixtureID: 2, HomeTeamID: 3, AwayTeamID: 4, HomeScore: 90, AwayScore: 60, Completed: true}},
	}
	playoffs := []*models.PlayoffFixture{
		{
			ID: 10, Stage: models.StageSemifinal, Slot: 1,
			HomeTeamID: intp(1), AwayTeamID: intp(4),
			HomeScore: intp(77), AwayScore: intp(70), Completed: true,
		},
		{ID: 11, Stage: models.StageSemifinal, Slot: 2},
		{ID: 12, Stage: models.StageFinal, Slot: 1},
	}
	svc := newStandingsTestService(results, playoffs)

	view, err := svc.GetStandings(context.Background(), 3)
	require.NoError(t, err)

	// SF1 = A1 vs B2, SF2 = A2 vs B1.
	require.NotNil(t, view.Qualification.Semifinal1.TeamA.TeamID)
	assert.Equal(t, 1, *view.Qualification.Semifinal1.TeamA.TeamID)
	assert.Equal(t, 4, *view.Qualification.Semifinal1.TeamB.TeamID)
	assert.Equal(t, 2, *view.Qualification.Semifinal2.TeamA.TeamID)
	assert.Equal(t, 3, *view.Qualification.Semifinal2.TeamB.TeamID)

	// Финал: победитель первого полуфинала известен, второй слот pending.
	require.NotNil(t, view.Qualification.Final.TeamA.TeamID)
	assert.Equal(t, 1, *view.Qualification.Final.TeamA.TeamID)
	assert.Nil(t, view.Qualification.Final.TeamB.TeamID)
	assert.Equal(t, models.PendingSlot, view.Qualification.Final.TeamB.Placeholder)
}
