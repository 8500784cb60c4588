package models

import "time"

type PlayoffStage string

const (
	StageSemifinal PlayoffStage = "semifinal"
	StageFinal     PlayoffStage = "final"
)

// PlayoffFixture — матч плей-офф. Сетка фиксированная: два полуфинала и
// один финал, независимо от размера турнира (8 или 16 команд).
// Participants stay symbolic (placeholders like "A1" or "winner SF2") until
// the standings engine can resolve real team identities.
type PlayoffFixture struct {
	ID              int          `json:"id" db:"id"`
	TournamentID    int          `json:"tournament_id" db:"tournament_id"`
	Stage           PlayoffStage `json:"stage" db:"stage"`
	Slot            int          `json:"slot" db:"slot"` // 1 or 2 for semifinals, 1 for the final
	GameDate        time.Time    `json:"game_date" db:"game_date"`
	GameTime        string       `json:"game_time" db:"game_time"`
	VenueID         *int         `json:"venue_id,omitempty" db:"venue_id"`
	RefereeID       *int         `json:"referee_id,omitempty" db:"referee_id"`
	HomeTeamID      *int         `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID      *int         `json:"away_team_id,omitempty" db:"away_team_id"`
	HomePlaceholder string       `json:"home_placeholder" db:"home_placeholder"`
	AwayPlaceholder string       `json:"away_placeholder" db:"away_placeholder"`
	HomeScore       *int         `json:"home_score,omitempty" db:"home_score"`
	AwayScore       *int         `json:"away_score,omitempty" db:"away_score"`
	Completed       bool         `json:"completed" db:"completed"`
}
