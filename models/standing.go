package models

// StandingRow — строка таблицы группы. Считается заново при каждом запросе
// из сырых результатов, нигде не хранится.
type StandingRow struct {
	TeamID       int `json:"team_id"`
	Played       int `json:"played"`
	Wins         int `json:"wins"`
	Losses       int `json:"losses"`
	Points       int `json:"points"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
	Diff         int `json:"diff"`
	Rank         int `json:"rank"` // 1-based within the group
}

// PendingSlot marks a bracket slot whose team identity is not resolvable yet.
const PendingSlot = "pending"

// BracketSlot holds either a resolved team id or the "pending" placeholder.
type BracketSlot struct {
	TeamID      *int   `json:"team_id,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

type BracketPairing struct {
	TeamA BracketSlot `json:"team_a"`
	TeamB BracketSlot `json:"team_b"`
}

type QualificationBracket struct {
	Semifinal1 BracketPairing `json:"semifinal1"`
	Semifinal2 BracketPairing `json:"semifinal2"`
	Final      BracketPairing `json:"final"`
}
