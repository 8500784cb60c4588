package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/league-system/models"
	"github.com/Dosada05/league-system/repositories"
	"github.com/Dosada05/league-system/storage"
)

// CatalogService отдаёт входной справочник генерации: команды, площадки,
// судьи одним ответом.
type CatalogService interface {
	GetCatalog(ctx context.Context) (*models.Catalog, error)
}

type catalogService struct {
	teamRepo    repositories.TeamRepository
	venueRepo   repositories.VenueRepository
	refereeRepo repositories.RefereeRepository
	uploader    storage.FileUploader
}

func NewCatalogService(
	teamRepo repositories.TeamRepository,
	venueRepo repositories.VenueRepository,
	refereeRepo repositories.RefereeRepository,
	uploader storage.FileUploader,
) CatalogService {
	return &catalogService{
		teamRepo:    teamRepo,
		venueRepo:   venueRepo,
		refereeRepo: refereeRepo,
		uploader:    uploader,
	}
}

func (s *catalogService) GetCatalog(ctx context.Context) (*models.Catalog, error) {
	var (
		teams    []*models.Team
		venues   []*models.Venue
		referees []*models.Referee
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		teams, err = s.teamRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list teams: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		venues, err = s.venueRepo.List(gCtx, false)
		if err != nil {
			return fmt.Errorf("failed to list venues: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		referees, err = s.refereeRepo.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list referees: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	catalog := &models.Catalog{
		Teams:    make([]models.Team, 0, len(teams)),
		Venues:   make([]models.Venue, 0, len(venues)),
		Referees: make([]models.Referee, 0, len(referees)),
	}
	for _, team := range teams {
		if s.uploader != nil && team.CrestKey != nil && *team.CrestKey != "" {
			if url := s.uploader.GetPublicURL(*team.CrestKey); url != "" {
				team.CrestURL = &url
			}
		}
		catalog.Teams = append(catalog.Teams, *team)
	}
	for _, venue := range venues {
		catalog.Venues = append(catalog.Venues, *venue)
	}
	for _, referee := range referees {
		catalog.Referees = append(catalog.Referees, *referee)
	}
	return catalog, nil
}
