package models

// MatchResult is the read-only projection the standings engine consumes.
// Team ids come from the fixture the result belongs to.
type MatchResult struct {
	FixtureID  int  `json:"fixture_id" db:"fixture_id"`
	HomeTeamID int  `json:"home_team_id" db:"home_team_id"`
	AwayTeamID int  `json:"away_team_id" db:"away_team_id"`
	HomeScore  int  `json:"home_score" db:"home_score"`
	AwayScore  int  `json:"away_score" db:"away_score"`
	Completed  bool `json:"completed" db:"completed"`
}
