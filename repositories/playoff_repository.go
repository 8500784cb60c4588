package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-system/models"
)

var ErrPlayoffFixtureNotFound = errors.New("playoff fixture not found")

type PlayoffRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, fixtures []*models.PlayoffFixture) error
	GetByID(ctx context.Context, id int) (*models.PlayoffFixture, error)
	// ListByTournament: сначала полуфиналы по номеру слота, затем финал.
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayoffFixture, error)
	UpdateParticipants(ctx context.Context, exec SQLExecutor, id int, homeTeamID, awayTeamID *int) error
	UpdateResult(ctx context.Context, exec SQLExecutor, id, homeScore, awayScore int) error
}

type postgresPlayoffRepository struct {
	db *sql.DB
}

func NewPostgresPlayoffRepository(db *sql.DB) PlayoffRepository {
	return &postgresPlayoffRepository{db: db}
}

func (r *postgresPlayoffRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayoffRepository) CreateBatch(ctx context.Context, exec SQLExecutor, fixtures []*models.PlayoffFixture) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO playoff_fixtures
		    (tournament_id, stage, slot, game_date, game_time, venue_id, referee_id,
		     home_team_id, away_team_id, home_placeholder, away_placeholder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	for _, fixture := range fixtures {
		err := executor.QueryRowContext(ctx, query,
			fixture.TournamentID, fixture.Stage, fixture.Slot, fixture.GameDate, fixture.GameTime,
			fixture.VenueID, fixture.RefereeID, fixture.HomeTeamID, fixture.AwayTeamID,
			fixture.HomePlaceholder, fixture.AwayPlaceholder,
		).Scan(&fixture.ID)
		if err != nil {
			return fmt.Errorf("failed to insert playoff fixture (%s %d): %w", fixture.Stage, fixture.Slot, err)
		}
	}
	return nil
}

const playoffColumns = `
	id, tournament_id, stage, slot, game_date, game_time, venue_id, referee_id,
	home_team_id, away_team_id, home_placeholder, away_placeholder,
	home_score, away_score, completed`

func (r *postgresPlayoffRepository) GetByID(ctx context.Context, id int) (*models.PlayoffFixture, error) {
	query := `SELECT` + playoffColumns + ` FROM playoff_fixtures WHERE id = $1`
	var f models.PlayoffFixture
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.TournamentID, &f.Stage, &f.Slot, &f.GameDate, &f.GameTime, &f.VenueID, &f.RefereeID,
		&f.HomeTeamID, &f.AwayTeamID, &f.HomePlaceholder, &f.AwayPlaceholder,
		&f.HomeScore, &f.AwayScore, &f.Completed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayoffFixtureNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *postgresPlayoffRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayoffFixture, error) {
	query := `SELECT` + playoffColumns + ` FROM playoff_fixtures
		WHERE tournament_id = $1
		ORDER BY CASE stage WHEN 'semifinal' THEN 0 ELSE 1 END, slot`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixtures := make([]*models.PlayoffFixture, 0)
	for rows.Next() {
		var f models.PlayoffFixture
		if err := rows.Scan(
			&f.ID, &f.TournamentID, &f.Stage, &f.Slot, &f.GameDate, &f.GameTime, &f.VenueID, &f.RefereeID,
			&f.HomeTeamID, &f.AwayTeamID, &f.HomePlaceholder, &f.AwayPlaceholder,
			&f.HomeScore, &f.AwayScore, &f.Completed,
		); err != nil {
			return nil, err
		}
		fixtures = append(fixtures, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fixtures, nil
}

func (r *postgresPlayoffRepository) UpdateParticipants(ctx context.Context, exec SQLExecutor, id int, homeTeamID, awayTeamID *int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE playoff_fixtures SET home_team_id = $1, away_team_id = $2 WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, homeTeamID, awayTeamID, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayoffFixtureNotFound)
}

func (r *postgresPlayoffRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id, homeScore, awayScore int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE playoff_fixtures SET home_score = $1, away_score = $2, completed = TRUE WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, homeScore, awayScore, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayoffFixtureNotFound)
}
