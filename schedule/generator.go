package schedule

import (
	"context"

	"github.com/Dosada05/league-system/models"
)

type GenerateParams struct {
	Tournament *models.Tournament
	// Teams in caller-supplied order: the first half becomes group A, the
	// second half group B. No seeding logic here.
	Teams         []*models.Team
	TimeSlots     []string // "15:04" format, ordered within a day
	MatchesPerDay int
}

type GeneratedSchedule struct {
	GroupFixtures   []*models.Fixture
	PlayoffFixtures []*models.PlayoffFixture
}

type ScheduleGenerator interface {
	GenerateSchedule(ctx context.Context, params GenerateParams) (*GeneratedSchedule, error)

	GetName() string
}
