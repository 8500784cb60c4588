package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-system/models"
)

var ErrRefereeNotFound = errors.New("referee not found")

type RefereeRepository interface {
	GetByID(ctx context.Context, id int) (*models.Referee, error)
	List(ctx context.Context) ([]*models.Referee, error)
}

type postgresRefereeRepository struct {
	db *sql.DB
}

func NewPostgresRefereeRepository(db *sql.DB) RefereeRepository {
	return &postgresRefereeRepository{db: db}
}

func (r *postgresRefereeRepository) GetByID(ctx context.Context, id int) (*models.Referee, error) {
	query := `SELECT id, name, certification_level FROM referees WHERE id = $1`
	var referee models.Referee
	err := r.db.QueryRowContext(ctx, query, id).Scan(&referee.ID, &referee.Name, &referee.CertificationLevel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRefereeNotFound
		}
		return nil, err
	}
	return &referee, nil
}

func (r *postgresRefereeRepository) List(ctx context.Context) ([]*models.Referee, error) {
	query := `SELECT id, name, certification_level FROM referees ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	referees := make([]*models.Referee, 0)
	for rows.Next() {
		var referee models.Referee
		if err := rows.Scan(&referee.ID, &referee.Name, &referee.CertificationLevel); err != nil {
			return nil, err
		}
		referees = append(referees, &referee)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return referees, nil
}
