package models

import "time"

// Fixture — матч группового этапа. Venue/referee остаются пустыми до
// авто-распределения или ручного выбора оператором.
type Fixture struct {
	ID           int        `json:"id" db:"id"`
	TournamentID int        `json:"tournament_id" db:"tournament_id"`
	HomeTeamID   int        `json:"home_team_id" db:"home_team_id"`
	AwayTeamID   int        `json:"away_team_id" db:"away_team_id"`
	Group        GroupLabel `json:"group" db:"group_label"`
	GameDate     time.Time  `json:"game_date" db:"game_date"`
	GameTime     string     `json:"game_time" db:"game_time"` // "15:04"
	VenueID      *int       `json:"venue_id,omitempty" db:"venue_id"`
	RefereeID    *int       `json:"referee_id,omitempty" db:"referee_id"`
	Sequence     int        `json:"sequence" db:"sequence"` // position in the interleaved group-stage order
	HomeScore    *int       `json:"home_score,omitempty" db:"home_score"`
	AwayScore    *int       `json:"away_score,omitempty" db:"away_score"`
	Completed    bool       `json:"completed" db:"completed"`
}
