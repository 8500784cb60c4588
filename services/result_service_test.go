package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-system/models"
)

func intp(v int) *int { return &v }

func TestResultServiceValidatesScores(t *testing.T) {
	svc := NewResultService(&fakeFixtureRepo{}, &fakePlayoffRepo{}, &fakeStandingsService{}, nil)

	cases := []struct {
		name  string
		input ResultInput
		want  error
	}{
		{"missing home score", ResultInput{AwayScore: intp(80)}, ErrResultScoreRequired},
		{"missing away score", ResultInput{HomeScore: intp(80)}, ErrResultScoreRequired},
		{"negative score", ResultInput{HomeScore: intp(-1), AwayScore: intp(80)}, ErrResultNegativeScore},
		{"tied score", ResultInput{HomeScore: intp(77), AwayScore: intp(77)}, ErrResultScoresTied},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordGroupResult(context.Background(), 1, tc.input)
			require.ErrorIs(t, err, tc.want)

			_, err = svc.RecordPlayoffResult(context.Background(), 1, tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestResultServiceRecordGroupResult(t *testing.T) {
	var recordedHome, recordedAway int
	fixtureRepo := &fakeFixtureRepo{
		getByID: func(ctx context.Context, id int) (*models.Fixture, error) {
			return &models.Fixture{ID: id, TournamentID: 3, HomeTeamID: 1, AwayTeamID: 2}, nil
		},
		updateResult: func(ctx context.Context, fixtureID, homeScore, awayScore int) error {
			recordedHome, recordedAway = homeScore, awayScore
			return nil
		},
	}
	synced := 0
	standings := &fakeStandingsService{
		syncBracket: func(ctx context.Context, tournamentID int) (*StandingsView, error) {
			synced++
			return &StandingsView{}, nil
		},
	}
	svc := NewResultService(fixtureRepo, &fakePlayoffRepo{}, standings, nil)

	fixture, err := svc.RecordGroupResult(context.Background(), 7, ResultInput{HomeScore: intp(91), AwayScore: intp(84)})
	require.NoError(t, err)
	assert.Equal(t, 91, recordedHome)
	assert.Equal(t, 84, recordedAway)
	assert.True(t, fixture.Completed)
	assert.Equal(t, 91, *fixture.HomeScore)
	assert.Equal(t, 1, synced, "bracket should be synced after a recorded result")
}

func TestResultServiceRecordGroupResultUnknownFixture(t *testing.T) {
	svc := NewResultService(&fakeFixtureRepo{}, &fakePlayoffRepo{}, &fakeStandingsService{}, nil)

	_, err := svc.RecordGroupResult(context.Background(), 404, ResultInput{HomeScore: intp(91), AwayScore: intp(84)})
	require.ErrorIs(t, err, ErrFixtureNotFound)
}

func TestResultServicePlayoffRequiresResolvedParticipants(t *testing.T) {
	playoffRepo := &fakePlayoffRepo{
		getByID: func(ctx context.Context, id int) (*models.PlayoffFixture, error) {
			return &models.PlayoffFixture{
				ID: id, TournamentID: 3, Stage: models.StageSemifinal, Slot: 1,
				HomePlaceholder: "A1", AwayPlaceholder: "B2",
			}, nil
		},
	}
	svc := NewResultService(&fakeFixtureRepo{}, playoffRepo, &fakeStandingsService{}, nil)

	_, err := svc.RecordPlayoffResult(context.Background(), 10, ResultInput{HomeScore: intp(70), AwayScore: intp(65)})
	require.ErrorIs(t, err, ErrPlayoffParticipantsPending)
}

func TestResultServiceRecordPlayoffResult(t *testing.T) {
	playoffRepo := &fakePlayoffRepo{
		getByID: func(ctx context.Context, id int) (*models.PlayoffFixture, error) {
			return &models.PlayoffFixture{
				ID: id, TournamentID: 3, Stage: models.StageSemifinal, Slot: 1,
				HomeTeamID: intp(1), AwayTeamID: intp(6),
			}, nil
		},
	}
	svc := NewResultService(&fakeFixtureRepo{}, playoffRepo, &fakeStandingsService{}, nil)

	fixture, err := svc.RecordPlayoffResult(context.Background(), 10, ResultInput{HomeScore: intp(70), AwayScore: intp(65)})
	require.NoError(t, err)
	assert.True(t, fixture.Completed)
	assert.Equal(t, 70, *fixture.HomeScore)
	assert.Equal(t, 65, *fixture.AwayScore)
}
