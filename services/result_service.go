package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/Dosada05/league-system/models"
	"github.com/Dosada05/league-system/repositories"
	"github.com/Dosada05/league-system/schedule"
)

type ResultInput struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

type ResultService interface {
	RecordGroupResult(ctx context.Context, fixtureID int, input ResultInput) (*models.Fixture, error)
	RecordPlayoffResult(ctx context.Context, fixtureID int, input ResultInput) (*models.PlayoffFixture, error)
}

type resultService struct {
	fixtureRepo repositories.FixtureRepository
	playoffRepo repositories.PlayoffRepository
	standings   StandingsService
	hub         *schedule.Hub
}

func NewResultService(
	fixtureRepo repositories.FixtureRepository,
	playoffRepo repositories.PlayoffRepository,
	standings StandingsService,
	hub *schedule.Hub,
) ResultService {
	return &resultService{
		fixtureRepo: fixtureRepo,
		playoffRepo: playoffRepo,
		standings:   standings,
		hub:         hub,
	}
}

// validateScores — общие правила для группового этапа и плей-офф: оба счёта
// обязательны, неотрицательны, и ничьих не бывает (баскетбол).
func validateScores(input ResultInput) error {
	if input.HomeScore == nil || input.AwayScore == nil {
		return ErrResultScoreRequired
	}
	if *input.HomeScore < 0 || *input.AwayScore < 0 {
		return ErrResultNegativeScore
	}
	if *input.HomeScore == *input.AwayScore {
		return ErrResultScoresTied
	}
	return nil
}

func (s *resultService) RecordGroupResult(ctx context.Context, fixtureID int, input ResultInput) (*models.Fixture, error) {
	if err := validateScores(input); err != nil {
		return nil, err
	}

	fixture, err := s.fixtureRepo.GetByID(ctx, fixtureID)
	if err != nil {
		if errors.Is(err, repositories.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to load fixture %d: %w", fixtureID, err)
	}

	if err := s.fixtureRepo.UpdateResult(ctx, nil, fixtureID, *input.HomeScore, *input.AwayScore); err != nil {
		if errors.Is(err, repositories.ErrFixtureNotFound) {
			return nil, ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to record result for fixture %d: %w", fixtureID, err)
	}
	fixture.HomeScore = input.HomeScore
	fixture.AwayScore = input.AwayScore
	fixture.Completed = true

	s.afterResult(ctx, fixture.TournamentID, fixture)
	return fixture, nil
}

func (s *resultService) RecordPlayoffResult(ctx context.Context, fixtureID int, input ResultInput) (*models.PlayoffFixture, error) {
	if err := validateScores(input); err != nil {
		return nil, err
	}

	fixture, err := s.playoffRepo.GetByID(ctx, fixtureID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayoffFixtureNotFound) {
			return nil, ErrPlayoffFixtureNotFound
		}
		return nil, fmt.Errorf("failed to load playoff fixture %d: %w", fixtureID, err)
	}
	// Нельзя записать счёт матчу, участники которого ещё символические.
	if fixture.HomeTeamID == nil || fixture.AwayTeamID == nil {
		return nil, ErrPlayoffParticipantsPending
	}

	if err := s.playoffRepo.UpdateResult(ctx, nil, fixtureID, *input.HomeScore, *input.AwayScore); err != nil {
		if errors.Is(err, repositories.ErrPlayoffFixtureNotFound) {
			return nil, ErrPlayoffFixtureNotFound
		}
		return nil, fmt.Errorf("failed to record result for playoff fixture %d: %w", fixtureID, err)
	}
	fixture.HomeScore = input.HomeScore
	fixture.AwayScore = input.AwayScore
	fixture.Completed = true

	s.afterResult(ctx, fixture.TournamentID, fixture)
	return fixture, nil
}

// afterResult двигает сетку вслед за записанным счётом и шлёт событие в
// комнату турнира. Ошибка пересчёта результат не откатывает: счёт уже в базе,
// сетка догонит на следующем результате или ручном запросе standings.
func (s *resultService) afterResult(ctx context.Context, tournamentID int, payload interface{}) {
	if _, err := s.standings.SyncBracket(ctx, tournamentID); err != nil {
		log.Printf("Bracket sync after result failed for tournament %d: %v", tournamentID, err)
	}
	if s.hub != nil {
		roomID := "tournament_" + strconv.Itoa(tournamentID)
		s.hub.BroadcastToRoom(roomID, schedule.WebSocketMessage{
			Type:    schedule.EventResultRecorded,
			Payload: payload,
			RoomID:  roomID,
		})
	}
}
