package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/league-system/models"
)

func crestTeamRepo(existingKey *string) *fakeTeamRepo {
	return &fakeTeamRepo{
		getByID: func(ctx context.Context, id int) (*models.Team, error) {
			return &models.Team{ID: id, Name: "Hawks", CrestKey: existingKey}, nil
		},
	}
}

func TestTeamServiceUploadCrestWithoutUploader(t *testing.T) {
	// Деплой без R2: сервис собран с nil-загрузчиком, маршрут при этом открыт.
	svc := NewTeamService(crestTeamRepo(nil), nil)

	team, err := svc.UploadCrest(context.Background(), 5, "image/png", strings.NewReader("png-bytes"))
	require.ErrorIs(t, err, ErrCrestUploadsDisabled)
	assert.Nil(t, team)
}

func TestTeamServiceUploadCrestRejectsBadContentType(t *testing.T) {
	svc := NewTeamService(crestTeamRepo(nil), &fakeUploader{})

	_, err := svc.UploadCrest(context.Background(), 5, "application/pdf", strings.NewReader("not an image"))
	require.ErrorIs(t, err, ErrCrestContentType)
}

func TestTeamServiceUploadCrestReplacesOldFile(t *testing.T) {
	oldKey := "teams/5/crest_old.png"
	uploader := &fakeUploader{}
	svc := NewTeamService(crestTeamRepo(&oldKey), uploader)

	team, err := svc.UploadCrest(context.Background(), 5, "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	require.Len(t, uploader.uploaded, 1)
	assert.True(t, strings.HasPrefix(uploader.uploaded[0], "teams/5/crest_"))
	assert.True(t, strings.HasSuffix(uploader.uploaded[0], ".png"))
	assert.Equal(t, []string{oldKey}, uploader.deleted)

	require.NotNil(t, team.CrestKey)
	assert.Equal(t, uploader.uploaded[0], *team.CrestKey)
	require.NotNil(t, team.CrestURL)
	assert.Equal(t, "https://cdn.example.com/"+uploader.uploaded[0], *team.CrestURL)
}
