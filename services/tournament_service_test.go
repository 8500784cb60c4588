package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTournamentServiceCreateValidation(t *testing.T) {
	svc := NewTournamentService(&fakeTournamentRepo{})
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(context.Background(), CreateTournamentInput{Name: "  ", StartDate: start, EndDate: end})
	require.ErrorIs(t, err, ErrTournamentNameRequired)

	_, err = svc.Create(context.Background(), CreateTournamentInput{Name: "City Cup", StartDate: end, EndDate: start})
	require.ErrorIs(t, err, ErrTournamentInvalidDateRange)

	_, err = svc.Create(context.Background(), CreateTournamentInput{Name: "City Cup", StartDate: start, EndDate: start})
	require.ErrorIs(t, err, ErrTournamentInvalidDateRange)

	_, err = svc.Create(context.Background(), CreateTournamentInput{Name: "City Cup"})
	require.ErrorIs(t, err, ErrTournamentInvalidDateRange)
}

func TestTournamentServiceGetByIDMapsNotFound(t *testing.T) {
	svc := NewTournamentService(&fakeTournamentRepo{})

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrTournamentNotFound)
}
