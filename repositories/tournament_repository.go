package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-system/models"
	"github.com/lib/pq"
)

var (
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrScheduleAlreadyPresent = errors.New("tournament already has a generated schedule")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	// MarkScheduleGenerated — compare-and-set на флаге schedule_generated.
	// Второй вызов для того же турнира получает ErrScheduleAlreadyPresent:
	// защита от двойной генерации живёт на границе, не в генераторе.
	MarkScheduleGenerated(ctx context.Context, exec SQLExecutor, tournamentID int) error
	// UpdateStatusesByDates двигает статусы по календарю:
	// soon -> active -> completed. Возвращает число затронутых турниров.
	UpdateStatusesByDates(ctx context.Context) (int64, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, start_date, end_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	if tournament.Status == "" {
		tournament.Status = models.StatusSoon
	}
	err := r.db.QueryRowContext(ctx, query,
		tournament.Name, tournament.StartDate, tournament.EndDate, tournament.Status,
	).Scan(&tournament.ID, &tournament.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrTournamentNameConflict
		}
		return err
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, name, start_date, end_date, status, schedule_generated, created_at
		FROM tournaments WHERE id = $1`
	var t models.Tournament
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Status, &t.ScheduleGenerated, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresTournamentRepository) List(ctx context.Context) ([]*models.Tournament, error) {
	query := `
		SELECT id, name, start_date, end_date, status, schedule_generated, created_at
		FROM tournaments ORDER BY start_date DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := rows.Scan(&t.ID, &t.Name, &t.StartDate, &t.EndDate, &t.Status, &t.ScheduleGenerated, &t.CreatedAt); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) MarkScheduleGenerated(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE tournaments SET schedule_generated = TRUE
		WHERE id = $1 AND schedule_generated = FALSE`
	result, err := executor.ExecContext(ctx, query, tournamentID)
	if err != nil {
		return err
	}
	// 0 строк: либо турнира нет, либо расписание уже создано. Вызывающий
	// сервис загружает турнир до этого, так что здесь это второй случай.
	return checkAffectedRows(result, ErrScheduleAlreadyPresent)
}

func (r *postgresTournamentRepository) UpdateStatusesByDates(ctx context.Context) (int64, error) {
	query := `
		UPDATE tournaments SET status = CASE
			WHEN end_date < NOW() THEN 'completed'
			ELSE 'active'
		END
		WHERE status IN ('soon', 'active')
		  AND (start_date <= NOW() AND status = 'soon' OR end_date < NOW() AND status = 'active')`
	result, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
