package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Dosada05/league-system/models"
)

var ErrVenueNotFound = errors.New("venue not found")

type VenueRepository interface {
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	List(ctx context.Context, onlyAvailable bool) ([]*models.Venue, error)
}

type postgresVenueRepository struct {
	db *sql.DB
}

func NewPostgresVenueRepository(db *sql.DB) VenueRepository {
	return &postgresVenueRepository{db: db}
}

func (r *postgresVenueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT id, name, available FROM venues WHERE id = $1`
	var venue models.Venue
	err := r.db.QueryRowContext(ctx, query, id).Scan(&venue.ID, &venue.Name, &venue.Available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return &venue, nil
}

func (r *postgresVenueRepository) List(ctx context.Context, onlyAvailable bool) ([]*models.Venue, error) {
	query := `SELECT id, name, available FROM venues`
	if onlyAvailable {
		query += ` WHERE available`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]*models.Venue, 0)
	for rows.Next() {
		var venue models.Venue
		if err := rows.Scan(&venue.ID, &venue.Name, &venue.Available); err != nil {
			return nil, err
		}
		venues = append(venues, &venue)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return venues, nil
}
