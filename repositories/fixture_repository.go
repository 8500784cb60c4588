package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-system/models"
)

var ErrFixtureNotFound = errors.New("fixture not found")

type FixtureRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, fixtures []*models.Fixture) error
	GetByID(ctx context.Context, id int) (*models.Fixture, error)
	// ListByTournament возвращает матчи в порядке группового этапа (sequence).
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Fixture, error)
	UpdateAssignments(ctx context.Context, exec SQLExecutor, fixture *models.Fixture) error
	UpdateResult(ctx context.Context, exec SQLExecutor, fixtureID, homeScore, awayScore int) error
	// ListResults — проекция для движка таблиц: результаты матчей группы
	// вместе с id команд.
	ListResults(ctx context.Context, tournamentID int, group models.GroupLabel) ([]models.MatchResult, error)
}

type postgresFixtureRepository struct {
	db *sql.DB
}

func NewPostgresFixtureRepository(db *sql.DB) FixtureRepository {
	return &postgresFixtureRepository{db: db}
}

func (r *postgresFixtureRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresFixtureRepository) CreateBatch(ctx context.Context, exec SQLExecutor, fixtures []*models.Fixture) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO fixtures
		    (tournament_id, home_team_id, away_team_id, group_label, game_date, game_time, venue_id, referee_id, sequence)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	for _, fixture := range fixtures {
		err := executor.QueryRowContext(ctx, query,
			fixture.TournamentID, fixture.HomeTeamID, fixture.AwayTeamID, fixture.Group,
			fixture.GameDate, fixture.GameTime, fixture.VenueID, fixture.RefereeID, fixture.Sequence,
		).Scan(&fixture.ID)
		if err != nil {
			return fmt.Errorf("failed to insert fixture (seq %d): %w", fixture.Sequence, err)
		}
	}
	return nil
}

const fixtureColumns = `
	id, tournament_id, home_team_id, away_team_id, group_label, game_date, game_time,
	venue_id, referee_id, sequence, home_score, away_score, completed`

func (r *postgresFixtureRepository) GetByID(ctx context.Context, id int) (*models.Fixture, error) {
	query := `SELECT` + fixtureColumns + ` FROM fixtures WHERE id = $1`
	fixture, err := scanFixture(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	return fixture, nil
}

func (r *postgresFixtureRepository) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Fixture, error) {
	query := `SELECT` + fixtureColumns + ` FROM fixtures WHERE tournament_id = $1 ORDER BY sequence`
	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fixtures := make([]*models.Fixture, 0)
	for rows.Next() {
		var f models.Fixture
		if err := rows.Scan(
			&f.ID, &f.TournamentID, &f.HomeTeamID, &f.AwayTeamID, &f.Group, &f.GameDate, &f.GameTime,
			&f.VenueID, &f.RefereeID, &f.Sequence, &f.HomeScore, &f.AwayScore, &f.Completed,
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

func (r *postgresFixtureRepository) UpdateAssignments(ctx context.Context, exec SQLExecutor, fixture *models.Fixture) error {
	executor := r.getExecutor(exec)
	query := `UPDATE fixtures SET venue_id = $1, referee_id = $2 WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, fixture.VenueID, fixture.RefereeID, fixture.ID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrFixtureNotFound)
}

func (r *postgresFixtureRepository) UpdateResult(ctx context.Context, exec SQLExecutor, fixtureID, homeScore, awayScore int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE fixtures SET home_score = $1, away_score = $2, completed = TRUE WHERE id = $3`
	result, err := executor.ExecContext(ctx, query, homeScore, awayScore, fixtureID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrFixtureNotFound)
}

func (r *postgresFixtureRepository) ListResults(ctx context.Context, tournamentID int, group models.GroupLabel) ([]models.MatchResult, error) {
	query := `
		SELECT id, home_team_id, away_team_id, COALESCE(home_score, 0), COALESCE(away_score, 0), completed
		FROM fixtures
		WHERE tournament_id = $1 AND group_label = $2
		ORDER BY sequence`
	rows, err := r.db.QueryContext(ctx, query, tournamentID, group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]models.MatchResult, 0)
	for rows.Next() {
		var res models.MatchResult
		if err := rows.Scan(&res.FixtureID, &res.HomeTeamID, &res.AwayTeamID, &res.HomeScore, &res.AwayScore, &res.Completed); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanFixture(row *sql.Row) (*models.Fixture, error) {
	var f models.Fixture
	err := row.Scan(
		&f.ID, &f.TournamentID, &f.HomeTeamID, &f.AwayTeamID, &f.Group, &f.GameDate, &f.GameTime,
		&f.VenueID, &f.RefereeID, &f.Sequence, &f.HomeScore, &f.AwayScore, &f.Completed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFixtureNotFound
		}
		return nil, err
	}
	return &f, nil
}
