package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Dosada05/league-system/models"
)

const (
	timeSlotLayout = "15:04"

	// Полуфиналы получают разные слоты по умолчанию, финал — середину дня.
	// Всё это редактируется оператором до коммита расписания.
	defaultSemifinal1Time = "17:00"
	defaultSemifinal2Time = "19:30"
	defaultFinalTime      = "16:00"
)

// Placeholder values used on playoff fixtures until the standings engine
// resolves real team identities.
const (
	PlaceholderGroupARank1 = "A1"
	PlaceholderGroupARank2 = "A2"
	PlaceholderGroupBRank1 = "B1"
	PlaceholderGroupBRank2 = "B2"
	PlaceholderWinnerSF1   = "winner_sf1"
	PlaceholderWinnerSF2   = "winner_sf2"
)

type GroupStageGenerator struct{}

func NewGroupStageGenerator() ScheduleGenerator {
	return &GroupStageGenerator{}
}

func (g *GroupStageGenerator) GetName() string {
	return "GroupStagePlayoff"
}

// SplitGroups делит состав пополам по порядку подачи: первая половина —
// группа A, вторая — группа B.
func SplitGroups(teams []*models.Team) (groupA, groupB []*models.Team) {
	half := len(teams) / 2
	return teams[:half], teams[half:]
}

// GenerateSchedule creates the full group-stage fixture list plus the fixed
// playoff skeleton (2 semifinals, 1 final). Venue and referee fields are left
// empty for a later assignment pass or manual operator edits.
func (g *GroupStageGenerator) GenerateSchedule(ctx context.Context, params GenerateParams) (*GeneratedSchedule, error) {
	tournament := params.Tournament
	teams := params.Teams

	if len(teams) != 8 && len(teams) != 16 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTeamCount, len(teams))
	}
	seen := make(map[int]bool, len(teams))
	for _, team := range teams {
		if seen[team.ID] {
			return nil, fmt.Errorf("%w: id %d", ErrDuplicateTeam, team.ID)
		}
		seen[team.ID] = true
	}
	if len(params.TimeSlots) == 0 {
		return nil, ErrNoTimeSlots
	}
	for _, slot := range params.TimeSlots {
		if _, err := time.Parse(timeSlotLayout, slot); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, slot)
		}
	}
	if params.MatchesPerDay < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMatchesPerDay, params.MatchesPerDay)
	}
	if tournament.EndDate.Before(tournament.StartDate) {
		return nil, ErrInvalidDateRange
	}

	groupATeams, groupBTeams := SplitGroups(teams)
	groupAFixtures := roundRobinFixtures(tournament.ID, groupATeams, models.GroupA)
	groupBFixtures := roundRobinFixtures(tournament.ID, groupBTeams, models.GroupB)

	// Чередуем группы A,B,A,B..., чтобы одна группа не монополизировала
	// площадки и судей в рамках дня. Обычный two-pointer merge.
	fixtures := make([]*models.Fixture, 0, len(groupAFixtures)+len(groupBFixtures))
	for i, j := 0, 0; i < len(groupAFixtures) || j < len(groupBFixtures); {
		if i < len(groupAFixtures) {
			fixtures = append(fixtures, groupAFixtures[i])
			i++
		}
		if j < len(groupBFixtures) {
			fixtures = append(fixtures, groupBFixtures[j])
			j++
		}
	}

	// Последовательная раздача пар (дата, слот). День закрывается тем, что
	// наступит раньше: кончились слоты или достигнут лимит матчей в день.
	day := tournament.StartDate
	slotIdx := 0
	matchesOnDay := 0
	for seq, fixture := range fixtures {
		if slotIdx >= len(params.TimeSlots) || matchesOnDay >= params.MatchesPerDay {
			day = day.AddDate(0, 0, 1)
			slotIdx = 0
			matchesOnDay = 0
		}
		fixture.Sequence = seq
		fixture.GameDate = day
		fixture.GameTime = params.TimeSlots[slotIdx]
		slotIdx++
		matchesOnDay++
	}

	semifinalDate := tournament.EndDate.AddDate(0, 0, -1)
	playoffs := []*models.PlayoffFixture{
		{
			TournamentID:    tournament.ID,
			Stage:           models.StageSemifinal,
			Slot:            1,
			GameDate:        semifinalDate,
			GameTime:        defaultSemifinal1Time,
			HomePlaceholder: PlaceholderGroupARank1,
			AwayPlaceholder: PlaceholderGroupBRank2,
		},
		{
			TournamentID:    tournament.ID,
			Stage:           models.StageSemifinal,
			Slot:            2,
			GameDate:        semifinalDate,
			GameTime:        defaultSemifinal2Time,
			HomePlaceholder: PlaceholderGroupARank2,
			AwayPlaceholder: PlaceholderGroupBRank1,
		},
		{
			TournamentID:    tournament.ID,
			Stage:           models.StageFinal,
			Slot:            1,
			GameDate:        tournament.EndDate,
			GameTime:        defaultFinalTime,
			HomePlaceholder: PlaceholderWinnerSF1,
			AwayPlaceholder: PlaceholderWinnerSF2,
		},
	}

	return &GeneratedSchedule{
		GroupFixtures:   fixtures,
		PlayoffFixtures: playoffs,
	}, nil
}

// roundRobinFixtures produces every unordered pair within the group exactly
// once. Home/away carries no meaning beyond pair order.
func roundRobinFixtures(tournamentID int, teams []*models.Team, label models.GroupLabel) []*models.Fixture {
	fixtures := make([]*models.Fixture, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			fixtures = append(fixtures, &models.Fixture{
				TournamentID: tournamentID,
				HomeTeamID:   teams[i].ID,
				AwayTeamID:   teams[j].ID,
				Group:        label,
			})
		}
	}
	return fixtures
}
