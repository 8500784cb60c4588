package services

import (
	"context"
	"io"

	"github.com/Dosada05/league-system/models"
	"github.com/Dosada05/league-system/repositories"
	"github.com/Dosada05/league-system/storage"
)

// Фейки репозиториев для юнит-тестов сервисного слоя. Метод без заданной
// функции возвращает нулевые значения.

type fakeTournamentRepo struct {
	getByID func(ctx context.Context, id int) (*models.Tournament, error)
}

func (f *fakeTournamentRepo) Create(ctx context.Context, t *models.Tournament) error { return nil }
func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if f.getByID != nil {
		return f.getByID(ctx, id)
	}
	return nil, repositories.ErrTournamentNotFound
}
func (f *fakeTournamentRepo) List(ctx context.Context) ([]*models.Tournament, error) {
	return nil, nil
}
func (f *fakeTournamentRepo) MarkScheduleGenerated(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	return nil
}
func (f *fakeTournamentRepo) UpdateStatusesByDates(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeTeamRepo struct {
	getByID        func(ctx context.Context, id int) (*models.Team, error)
	listByIDs      func(ctx context.Context, ids []int) ([]*models.Team, error)
	updateCrestKey func(ctx context.Context, teamID int, crestKey *string) error
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error { return nil }
func (f *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	if f.getByID != nil {
		return f.getByID(ctx, id)
	}
	return nil, repositories.ErrTeamNotFound
}
func (f *fakeTeamRepo) List(ctx context.Context) ([]*models.Team, error) { return nil, nil }
func (f *fakeTeamRepo) ListByIDs(ctx context.Context, ids []int) ([]*models.Team, error) {
	if f.listByIDs != nil {
		return f.listByIDs(ctx, ids)
	}
	teams := make([]*models.Team, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, &models.Team{ID: id})
	}
	return teams, nil
}
func (f *fakeTeamRepo) UpdateCrestKey(ctx context.Context, teamID int, crestKey *string) error {
	if f.updateCrestKey != nil {
		return f.updateCrestKey(ctx, teamID, crestKey)
	}
	return nil
}

type fakeFixtureRepo struct {
	getByID          func(ctx context.Context, id int) (*models.Fixture, error)
	listByTournament func(ctx context.Context, tournamentID int) ([]*models.Fixture, error)
	updateResult     func(ctx context.Context, fixtureID, homeScore, awayScore int) error
	listResults      func(ctx context.Context, tournamentID int, group models.GroupLabel) ([]models.MatchResult, error)
}

func (f *fakeFixtureRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, fixtures []*models.Fixture) error {
	return nil
}
func (f *fakeFixtureRepo) GetByID(ctx context.Context, id int) (*models.Fixture, error) {
	if f.getByID != nil {
		return f.getByID(ctx, id)
	}
	return nil, repositories.ErrFixtureNotFound
}
func (f *fakeFixtureRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Fixture, error) {
	if f.listByTournament != nil {
		return f.listByTournament(ctx, tournamentID)
	}
	return nil, nil
}
func (f *fakeFixtureRepo) UpdateAssignments(ctx context.Context, exec repositories.SQLExecutor, fixture *models.Fixture) error {
	return nil
}
func (f *fakeFixtureRepo) UpdateResult(ctx context.Context, exec repositories.SQLExecutor, fixtureID, homeScore, awayScore int) error {
	if f.updateResult != nil {
		return f.updateResult(ctx, fixtureID, homeScore, awayScore)
	}
	return nil
}
func (f *fakeFixtureRepo) ListResults(ctx context.Context, tournamentID int, group models.GroupLabel) ([]models.MatchResult, error) {
	if f.listResults != nil {
		return f.listResults(ctx, tournamentID, group)
	}
	return nil, nil
}

type fakePlayoffRepo struct {
	getByID          func(ctx context.Context, id int) (*models.PlayoffFixture, error)
	listByTournament func(ctx context.Context, tournamentID int) ([]*models.PlayoffFixture, error)
}

func (f *fakePlayoffRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, fixtures []*models.PlayoffFixture) error {
	return nil
}
func (f *fakePlayoffRepo) GetByID(ctx context.Context, id int) (*models.PlayoffFixture, error) {
	if f.getByID != nil {
		return f.getByID(ctx, id)
	}
	return nil, repositories.ErrPlayoffFixtureNotFound
}
func (f *fakePlayoffRepo) ListByTournament(ctx context.Context, tournamentID int) ([]*models.PlayoffFixture, error) {
	if f.listByTournament != nil {
		return f.listByTournament(ctx, tournamentID)
	}
	return nil, nil
}
func (f *fakePlayoffRepo) UpdateParticipants(ctx context.Context, exec repositories.SQLExecutor, id int, homeTeamID, awayTeamID *int) error {
	return nil
}
func (f *fakePlayoffRepo) UpdateResult(ctx context.Context, exec repositories.SQLExecutor, id, homeScore, awayScore int) error {
	return nil
}

type fakeUploader struct {
	uploaded []string
	deleted  []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	f.uploaded = append(f.uploaded, key)
	return &storage.UploadResult{Key: key, Location: "https://cdn.example.com/" + key}, nil
}
func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

type fakeStandingsService struct {
	syncBracket func(ctx context.Context, tournamentID int) (*StandingsView, error)
}

func (f *fakeStandingsService) GetStandings(ctx context.Context, tournamentID int) (*StandingsView, error) {
	return &StandingsView{}, nil
}
func (f *fakeStandingsService) SyncBracket(ctx context.Context, tournamentID int) (*StandingsView, error) {
	if f.syncBracket != nil {
		return f.syncBracket(ctx, tournamentID)
	}
	return &StandingsView{}, nil
}
