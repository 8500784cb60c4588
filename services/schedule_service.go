package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/Dosada05/league-system/models"
	"github.com/Dosada05/league-system/repositories"
	"github.com/Dosada05/league-system/schedule"
)

type GenerateScheduleInput struct {
	// TeamIDs в порядке подачи: первая половина — группа A, вторая — B.
	TeamIDs       []int    `json:"team_ids"`
	TimeSlots     []string `json:"time_slots"`
	MatchesPerDay int      `json:"matches_per_day"`
}

type ScheduleView struct {
	Tournament      *models.Tournament       `json:"tournament"`
	GroupFixtures   []*models.Fixture        `json:"group_fixtures"`
	PlayoffFixtures []*models.PlayoffFixture `json:"playoff_fixtures"`
}

type ScheduleService interface {
	Generate(ctx context.Context, tournamentID int, input GenerateScheduleInput) (*ScheduleView, error)
	Get(ctx context.Context, tournamentID int) (*ScheduleView, error)
	AssignVenues(ctx context.Context, tournamentID int) ([]*models.Fixture, error)
	AssignReferees(ctx context.Context, tournamentID int) ([]*models.Fixture, error)
}

type scheduleService struct {
	db             *sql.DB
	generator      schedule.ScheduleGenerator
	shuffler       schedule.Shuffler
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	venueRepo      repositories.VenueRepository
	refereeRepo    repositories.RefereeRepository
	fixtureRepo    repositories.FixtureRepository
	playoffRepo    repositories.PlayoffRepository
	hub            *schedule.Hub
}

func NewScheduleService(
	db *sql.DB,
	generator schedule.ScheduleGenerator,
	shuffler schedule.Shuffler,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	venueRepo repositories.VenueRepository,
	refereeRepo repositories.RefereeRepository,
	fixtureRepo repositories.FixtureRepository,
	playoffRepo repositories.PlayoffRepository,
	hub *schedule.Hub,
) ScheduleService {
	return &scheduleService{
		db:             db,
		generator:      generator,
		shuffler:       shuffler,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		venueRepo:      venueRepo,
		refereeRepo:    refereeRepo,
		fixtureRepo:    fixtureRepo,
		playoffRepo:    playoffRepo,
		hub:            hub,
	}
}

// Generate строит полное расписание группового этапа плюс каркас плей-офф и
// коммитит его одной транзакцией. Создание одноразовое: повторная попытка
// упирается в compare-and-set на флаге schedule_generated.
func (s *scheduleService) Generate(ctx context.Context, tournamentID int, input GenerateScheduleInput) (*ScheduleView, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if tournament.ScheduleGenerated {
		return nil, ErrScheduleAlreadyGenerated
	}

	teams, err := s.teamRepo.ListByIDs(ctx, input.TeamIDs)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrTeamNotFound, err)
		}
		return nil, fmt.Errorf("failed to load teams for schedule generation: %w", err)
	}

	generated, err := s.generator.GenerateSchedule(ctx, schedule.GenerateParams{
		Tournament:    tournament,
		Teams:         teams,
		TimeSlots:     input.TimeSlots,
		MatchesPerDay: input.MatchesPerDay,
	})
	if err != nil {
		// Ошибки валидации генератора уходят вызывающему как есть.
		return nil, err
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
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("Rollback failed after schedule generation error for tournament %d: %v", tournamentID, rbErr)
			}
		}
	}()

	if txErr = s.tournamentRepo.MarkScheduleGenerated(ctx, tx, tournamentID); txErr != nil {
		if errors.Is(txErr, repositories.ErrScheduleAlreadyPresent) {
			txErr = ErrScheduleAlreadyGenerated
		}
		return nil, txErr
	}
	if txErr = s.fixtureRepo.CreateBatch(ctx, tx, generated.GroupFixtures); txErr != nil {
		return nil, txErr
	}
	if txErr = s.playoffRepo.CreateBatch(ctx, tx, generated.PlayoffFixtures); txErr != nil {
		return nil, txErr
	}
	if txErr = tx.Commit(); txErr != nil {
		return nil, fmt.Errorf("failed to commit generated schedule: %w", txErr)
	}

	tournament.ScheduleGenerated = true
	view := &ScheduleView{
		Tournament:      tournament,
		GroupFixtures:   generated.GroupFixtures,
		PlayoffFixtures: generated.PlayoffFixtures,
	}
	s.broadcast(tournamentID, schedule.EventScheduleGenerated, view)
	log.Printf("Schedule generated for tournament %d: %d group fixtures, %d playoff fixtures",
		tournamentID, len(generated.GroupFixtures), len(generated.PlayoffFixtures))
	return view, nil
}

func (s *scheduleService) Get(ctx context.Context, tournamentID int) (*ScheduleView, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if !tournament.ScheduleGenerated {
		return nil, ErrScheduleNotGenerated
	}

	fixtures, err := s.fixtureRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures for tournament %d: %w", tournamentID, err)
	}
	playoffs, err := s.playoffRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playoff fixtures for tournament %d: %w", tournamentID, err)
	}
	return &ScheduleView{Tournament: tournament, GroupFixtures: fixtures, PlayoffFixtures: playoffs}, nil
}

// AssignVenues перераздаёт площадки по всем матчам турнира. Каждый запуск
// раздаёт заново, включая ранее заполненные поля.
func (s *scheduleService) AssignVenues(ctx context.Context, tournamentID int) ([]*models.Fixture, error) {
	fixtures, err := s.loadCommittedFixtures(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	venuePtrs, err := s.venueRepo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}
	venues := make([]models.Venue, 0, len(venuePtrs))
	for _, v := range venuePtrs {
		venues = append(venues, *v)
	}

	if err := schedule.AssignVenues(fixtures, venues, s.shuffler); err != nil {
		return nil, err
	}
	if err := s.persistAssignments(ctx, tournamentID, fixtures); err != nil {
		return nil, err
	}
	s.broadcast(tournamentID, schedule.EventVenuesAssigned, fixtures)
	return fixtures, nil
}

// AssignReferees дозаполняет судей там, где их нет. Ручные назначения не
// трогаются; матчи без подходящего кандидата остаются пустыми.
func (s *scheduleService) AssignReferees(ctx context.Context, tournamentID int) ([]*models.Fixture, error) {
	fixtures, err := s.loadCommittedFixtures(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	refereePtrs, err := s.refereeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list referees: %w", err)
	}
	referees := make([]models.Referee, 0, len(refereePtrs))
	for _, r := range refereePtrs {
		referees = append(referees, *r)
	}

	schedule.AssignReferees(fixtures, referees, s.shuffler)
	if err := s.persistAssignments(ctx, tournamentID, fixtures); err != nil {
		return nil, err
	}
	s.broadcast(tournamentID, schedule.EventRefereesAssigned, fixtures)
	return fixtures, nil
}

func (s *scheduleService) loadTournament(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	tournament, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament %d: %w", tournamentID, err)
	}
	return tournament, nil
}

func (s *scheduleService) loadCommittedFixtures(ctx context.Context, tournamentID int) ([]*models.Fixture, error) {
	tournament, err := s.loadTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if !tournament.ScheduleGenerated {
		return nil, ErrScheduleNotGenerated
	}
	fixtures, err := s.fixtureRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures for tournament %d: %w", tournamentID, err)
	}
	return fixtures, nil
}

func (s *scheduleService) persistAssignments(ctx context.Context, tournamentID int, fixtures []*models.Fixture) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
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

	for _, fixture := range fixtures {
		if txErr = s.fixtureRepo.UpdateAssignments(ctx, tx, fixture); txErr != nil {
			return txErr
		}
	}
	if txErr = tx.Commit(); txErr != nil {
		return fmt.Errorf("failed to commit assignments for tournament %d: %w", tournamentID, txErr)
	}
	return nil
}

func (s *scheduleService) broadcast(tournamentID int, eventType string, payload interface{}) {
	if s.hub == nil {
		return
	}
	roomID := "tournament_" + strconv.Itoa(tournamentID)
	s.hub.BroadcastToRoom(roomID, schedule.WebSocketMessage{
		Type:    eventType,
		Payload: payload,
		RoomID:  roomID,
	})
}
