package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-system/models"
	"github.com/Dosada05/league-system/repositories"
	"github.com/Dosada05/league-system/schedule"
)

type StandingsView struct {
	GroupA        []models.StandingRow        `json:"group_a"`
	GroupB        []models.StandingRow        `json:"group_b"`
	Qualification models.QualificationBracket `json:"qualification"`
}

type StandingsService interface {
	GetStandings(ctx context.Context, tournamentID int) (*StandingsView, error)
	// SyncBracket пересчитывает квалификацию и прописывает разрешённых
	// участников в матчи плей-офф. Вызывается после каждого записанного
	// результата.
	SyncBracket(ctx context.Context, tournamentID int) (*StandingsView, error)
}

type standingsService struct {
	db          *sql.DB
	fixtureRepo repositories.FixtureRepository
	playoffRepo repositories.PlayoffRepository
	hub         *schedule.Hub
}

func NewStandingsService(
	db *sql.DB,
	fixtureRepo repositories.FixtureRepository,
	playoffRepo repositories.PlayoffRepository,
	hub *schedule.Hub,
) StandingsService {
	return &standingsService{
		db:          db,
		fixtureRepo: fixtureRepo,
		playoffRepo: playoffRepo,
		hub:         hub,
	}
}

// groupSnapshot — всё, что нужно движку по одной группе: таблица, порядок
// состава и признак завершённости.
type groupSnapshot struct {
	rows     []models.StandingRow
	complete bool
}

func (s *standingsService) GetStandings(ctx context.Context, tournamentID int) (*StandingsView, error) {
	fixtures, err := s.fixtureRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures for tournament %d: %w", tournamentID, err)
	}
	if len(fixtures) == 0 {
		return nil, ErrScheduleNotGenerated
	}

	var snapA, snapB *groupSnapshot
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snapA, err = s.groupStandings(gCtx, tournamentID, models.GroupA, fixtures)
		return err
	})
	g.Go(func() error {
		var err error
		snapB, err = s.groupStandings(gCtx, tournamentID, models.GroupB, fixtures)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sf1Winner, sf2Winner, err := s.semifinalWinners(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	bracket := schedule.ResolveQualification(schedule.QualificationInput{
		GroupA:           snapA.rows,
		GroupB:           snapB.rows,
		GroupAComplete:   snapA.complete,
		GroupBComplete:   snapB.complete,
		Semifinal1Winner: sf1Winner,
		Semifinal2Winner: sf2Winner,
	})

	return &StandingsView{
		GroupA:        snapA.rows,
		GroupB:        snapB.rows,
		Qualification: bracket,
	}, nil
}

func (s *standingsService) SyncBracket(ctx context.Context, tournamentID int) (*StandingsView, error) {
	view, err := s.GetStandings(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	playoffs, err := s.playoffRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playoff fixtures for tournament %d: %w", tournamentID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	var txErr error
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if txErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, fixture := range playoffs {
		pairing, ok := pairingForFixture(view.Qualification, fixture)
		if !ok {
			continue
		}
		home, away := pairing.TeamA.TeamID, pairing.TeamB.TeamID
		if sameParticipants(fixture, home, away) {
			continue
		}
		if txErr = s.playoffRepo.UpdateParticipants(ctx, tx, fixture.ID, home, away); txErr != nil {
			return nil, txErr
		}
		fixture.HomeTeamID, fixture.AwayTeamID = home, away
	}
	if txErr = tx.Commit(); txErr != nil {
		return nil, fmt.Errorf("failed to commit bracket sync for tournament %d: %w", tournamentID, txErr)
	}

	if s.hub != nil {
		roomID := "tournament_" + strconv.Itoa(tournamentID)
		s.hub.BroadcastToRoom(roomID, schedule.WebSocketMessage{
			Type:    schedule.EventStandingsUpdated,
			Payload: view,
			RoomID:  roomID,
		})
	}
	log.Printf("Bracket synced for tournament %d", tournamentID)
	return view, nil
}

func (s *standingsService) groupStandings(ctx context.Context, tournamentID int, group models.GroupLabel, fixtures []*models.Fixture) (*groupSnapshot, error) {
	results, err := s.fixtureRepo.ListResults(ctx, tournamentID, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s results for tournament %d: %w", group, tournamentID, err)
	}

	teams := rosterFromFixtures(fixtures, group)
	rows, err := schedule.ComputeStandings(teams, results)
	if err != nil {
		return nil, err
	}

	complete := len(results) > 0
	for _, result := range results {
		if !result.Completed {
			complete = false
			break
		}
	}
	return &groupSnapshot{rows: rows, complete: complete}, nil
}

// rosterFromFixtures восстанавливает исходный порядок состава группы: при
// круговой схеме (i<j) первый матч идёт от первой команды, так что порядок
// первых появлений в sequence-сортировке совпадает с порядком подачи.
func rosterFromFixtures(fixtures []*models.Fixture, group models.GroupLabel) []*models.Team {
	seen := make(map[int]bool)
	teams := make([]*models.Team, 0)
	for _, fixture := range fixtures {
		if fixture.Group != group {
			continue
		}
		for _, id := range []int{fixture.HomeTeamID, fixture.AwayTeamID} {
			if !seen[id] {
				seen[id] = true
				teams = append(teams, &models.Team{ID: id})
			}
		}
	}
	return teams
}

func (s *standingsService) semifinalWinners(ctx context.Context, tournamentID int) (sf1, sf2 *int, err error) {
	playoffs, err := s.playoffRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list playoff fixtures for tournament %d: %w", tournamentID, err)
	}
	for _, fixture := range playoffs {
		if fixture.Stage != models.StageSemifinal || !fixture.Completed {
			continue
		}
		winner := playoffWinner(fixture)
		if winner == nil {
			continue
		}
		switch fixture.Slot {
		case 1:
			sf1 = winner
		case 2:
			sf2 = winner
		}
	}
	return sf1, sf2, nil
}

func playoffWinner(fixture *models.PlayoffFixture) *int {
	if fixture.HomeScore == nil || fixture.AwayScore == nil ||
		fixture.HomeTeamID == nil || fixture.AwayTeamID == nil {
		return nil
	}
	if *fixture.HomeScore > *fixture.AwayScore {
		return fixture.HomeTeamID
	}
	return fixture.AwayTeamID
}

func pairingForFixture(bracket models.QualificationBracket, fixture *models.PlayoffFixture) (models.BracketPairing, bool) {
	switch {
	case fixture.Stage == models.StageSemifinal && fixture.Slot == 1:
		return bracket.Semifinal1, true
	case fixture.Stage == models.StageSemifinal && fixture.Slot == 2:
		return bracket.Semifinal2, true
	case fixture.Stage == models.StageFinal:
		return bracket.Final, true
	}
	return models.BracketPairing{}, false
}

func sameParticipants(fixture *models.PlayoffFixture, home, away *int) bool {
	return intPtrEqual(fixture.HomeTeamID, home) && intPtrEqual(fixture.AwayTeamID, away)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
