package schedule

import (
	"fmt"
	"sort"

	"github.com/Dosada05/league-system/models"
)

// ComputeStandings строит таблицу группы заново из завершённых результатов.
// Частичные данные допустимы: чего нет — того нет в таблице, ошибок это не
// вызывает. Единственная ошибка — ничья в завершённом матче (ErrTiedScore).
//
// Comparator order: points desc, goal differential desc, goals-for desc,
// then stable by original roster order. Identical input always yields an
// identical table.
func ComputeStandings(teams []*models.Team, results []models.MatchResult) ([]models.StandingRow, error) {
	index := make(map[int]*models.StandingRow, len(teams))
	for _, team := range teams {
		index[team.ID] = &models.StandingRow{TeamID: team.ID}
	}

	for _, result := range results {
		if !result.Completed {
			continue
		}
		home := index[result.HomeTeamID]
		away := index[result.AwayTeamID]
		if home == nil || away == nil {
			// Результат другой группы, не наш вход.
			continue
		}
		if result.HomeScore == result.AwayScore {
			return nil, fmt.Errorf("%w: fixture %d finished %d:%d",
				ErrTiedScore, result.FixtureID, result.HomeScore, result.AwayScore)
		}

		home.Played++
		away.Played++
		home.GoalsFor += result.HomeScore
		home.GoalsAgainst += result.AwayScore
		away.GoalsFor += result.AwayScore
		away.GoalsAgainst += result.HomeScore
		if result.HomeScore > result.AwayScore {
			home.Wins++
			home.Points++
			away.Losses++
		} else {
			away.Wins++
			away.Points++
			home.Losses++
		}
	}

	rows := make([]models.StandingRow, 0, len(teams))
	for _, team := range teams {
		row := index[team.ID]
		row.Diff = row.GoalsFor - row.GoalsAgainst
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].Diff != rows[j].Diff {
			return rows[i].Diff > rows[j].Diff
		}
		if rows[i].GoalsFor != rows[j].GoalsFor {
			return rows[i].GoalsFor > rows[j].GoalsFor
		}
		// Полная ничья по всем трём полям: оставляем исходный порядок
		// состава. Другого правила у источника нет.
		return false
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows, nil
}

// QualifierCount — сколько команд группы проходят дальше: 2 при 8 командах,
// 4 при 16. До полуфиналов в любом случае доходят только топ-2 каждой группы.
func QualifierCount(totalTeams int) int {
	if totalTeams >= 16 {
		return 4
	}
	return 2
}

type QualificationInput struct {
	GroupA, GroupB []models.StandingRow

	// A group's ranks are trusted only once all its matches are complete.
	GroupAComplete, GroupBComplete bool

	Semifinal1Winner, Semifinal2Winner *int
}

// ResolveQualification maps group ranks onto the fixed playoff shape:
// SF1 = A1 vs B2, SF2 = A2 vs B1, final = winners of both semifinals.
// Unresolvable slots carry the "pending" placeholder instead of a team id.
func ResolveQualification(in QualificationInput) models.QualificationBracket {
	bracket := models.QualificationBracket{
		Semifinal1: pendingPairing(),
		Semifinal2: pendingPairing(),
		Final:      pendingPairing(),
	}

	if in.GroupAComplete && in.GroupBComplete && len(in.GroupA) >= 2 && len(in.GroupB) >= 2 {
		bracket.Semifinal1 = models.BracketPairing{
			TeamA: resolvedSlot(in.GroupA[0].TeamID),
			TeamB: resolvedSlot(in.GroupB[1].TeamID),
		}
		bracket.Semifinal2 = models.BracketPairing{
			TeamA: resolvedSlot(in.GroupA[1].TeamID),
			TeamB: resolvedSlot(in.GroupB[0].TeamID),
		}
	}

	if in.Semifinal1Winner != nil {
		bracket.Final.TeamA = resolvedSlot(*in.Semifinal1Winner)
	}
	if in.Semifinal2Winner != nil {
		bracket.Final.TeamB = resolvedSlot(*in.Semifinal2Winner)
	}
	return bracket
}

func resolvedSlot(teamID int) models.BracketSlot {
	return models.BracketSlot{TeamID: &teamID}
}

func pendingPairing() models.BracketPairing {
	pending := models.BracketSlot{Placeholder: models.PendingSlot}
	return models.BracketPairing{TeamA: pending, TeamB: pending}
}
