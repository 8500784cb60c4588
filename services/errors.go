package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ресурс не найден (универсальная)
	ErrNotFound = errors.New("requested resource not found")

	// Ошибки, специфичные для сущностей
	ErrTournamentNotFound     = errors.New("tournament not found")
	ErrTeamNotFound           = errors.New("team not found")
	ErrFixtureNotFound        = errors.New("fixture not found")
	ErrPlayoffFixtureNotFound = errors.New("playoff fixture not found")

	// Ошибки валидации и бизнес-правил
	ErrTournamentNameRequired     = errors.New("tournament name is required")
	ErrTournamentInvalidDateRange = errors.New("tournament end date must be after start date")
	ErrResultScoreRequired        = errors.New("both home and away scores are required")
	ErrResultNegativeScore        = errors.New("scores must be non-negative")
	ErrResultScoresTied           = errors.New("a completed match cannot end with equal scores")
	ErrPlayoffParticipantsPending = errors.New("playoff participants are not resolved yet")
	ErrCrestContentType           = errors.New("unsupported crest content type")

	// Ошибки конфликтов
	ErrTournamentNameConflict   = errors.New("tournament name already exists")
	ErrScheduleAlreadyGenerated = errors.New("tournament already has a generated schedule")

	// Состояние расписания
	ErrScheduleNotGenerated = errors.New("tournament schedule has not been generated yet")

	// Деплой без объектного хранилища: маршрут есть, загрузка недоступна.
	ErrCrestUploadsDisabled = errors.New("crest uploads are not configured on this deployment")
)
