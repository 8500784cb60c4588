package schedule

import (
	"math/rand"
	"sort"
	"time"

	"github.com/Dosada05/league-system/models"
)

const dateKeyLayout = "2006-01-02"

// Shuffler выдаёт случайный порядок обхода из n элементов. Вынесено в
// интерфейс, чтобы тесты могли подставить детерминированный порядок.
type Shuffler interface {
	Perm(n int) []int
}

type randShuffler struct {
	rng *rand.Rand
}

func NewRandShuffler() Shuffler {
	return &randShuffler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *randShuffler) Perm(n int) []int {
	return s.rng.Perm(n)
}

// AssignVenues распределяет доступные площадки по матчам каждого дня
// round-robin'ом в случайном порядке. Площадка не ставится дважды в один
// день, пока есть неиспользованные; между днями переиспользование свободное.
// Повторный запуск перераздаёт площадки заново, включая уже заполненные.
func AssignVenues(fixtures []*models.Fixture, venues []models.Venue, shuffler Shuffler) error {
	available := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		if v.Available {
			available = append(available, v)
		}
	}
	if len(available) == 0 {
		return ErrNoVenuesAvailable
	}

	byDate, dates := fixturesByDate(fixtures)
	for _, date := range dates {
		order := shuffler.Perm(len(available))
		for i, fixture := range byDate[date] {
			venueID := available[order[i%len(available)]].ID
			fixture.VenueID = &venueID
		}
	}
	return nil
}

// AssignReferees проходит даты хронологически и для каждого матча без судьи
// ищет первого из перетасованного списка, кто свободен в этот день, накануне
// и на следующий день. Ручные назначения не перезаписываются; если кандидатов
// нет, матч остаётся без судьи — это допустимо при сохранении расписания.
//
// The look-ahead ("free the day after") is best-effort by construction: later
// days are processed after earlier ones, so a referee can still be booked on
// a later day once an earlier assignment already committed them the day
// before. Single forward pass, kept as the accepted behavior.
func AssignReferees(fixtures []*models.Fixture, referees []models.Referee, shuffler Shuffler) {
	if len(referees) == 0 {
		return
	}

	// busy[dateKey] — судьи, уже занятые в этот день, включая ручной выбор.
	busy := make(map[string]map[int]bool)
	occupy := func(date string, refereeID int) {
		if busy[date] == nil {
			busy[date] = make(map[int]bool)
		}
		busy[date][refereeID] = true
	}
	for _, fixture := range fixtures {
		if fixture.RefereeID != nil {
			occupy(fixture.GameDate.Format(dateKeyLayout), *fixture.RefereeID)
		}
	}

	byDate, dates := fixturesByDate(fixtures)
	for _, date := range dates {
		day, _ := time.Parse(dateKeyLayout, date)
		dayBefore := day.AddDate(0, 0, -1).Format(dateKeyLayout)
		dayAfter := day.AddDate(0, 0, 1).Format(dateKeyLayout)

		for _, fixture := range byDate[date] {
			if fixture.RefereeID != nil {
				continue
			}
			for _, idx := range shuffler.Perm(len(referees)) {
				id := referees[idx].ID
				if busy[date][id] || busy[dayBefore][id] || busy[dayAfter][id] {
					continue
				}
				fixture.RefereeID = &id
				occupy(date, id)
				break
			}
		}
	}
}

func fixturesByDate(fixtures []*models.Fixture) (map[string][]*models.Fixture, []string) {
	byDate := make(map[string][]*models.Fixture)
	for _, fixture := range fixtures {
		key := fixture.GameDate.Format(dateKeyLayout)
		byDate[key] = append(byDate[key], fixture)
	}
	dates := make([]string, 0, len(byDate))
	for key := range byDate {
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return byDate, dates
}
