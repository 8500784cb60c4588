package schedule

import "errors"

var (
	// Ошибки валидации входа генератора. Расписание не создаётся частично:
	// любая из них возвращается до первого фикстура.
	ErrInvalidTeamCount     = errors.New("team count must be exactly 8 or 16")
	ErrNoTimeSlots          = errors.New("at least one time slot per day is required")
	ErrInvalidTimeSlot      = errors.New("time slot is not in HH:MM format")
	ErrInvalidMatchesPerDay = errors.New("matches per day must be positive")
	ErrInvalidDateRange     = errors.New("tournament end date must not be before start date")
	ErrDuplicateTeam        = errors.New("duplicate team in roster")

	// Исчерпание ресурсов при авто-распределении.
	ErrNoVenuesAvailable = errors.New("no available venues to assign")

	// Ничья в завершённом матче — дефект входных данных (баскетбольные
	// правила, ничьих не бывает), а не повод выбрать победителя произвольно.
	ErrTiedScore = errors.New("completed match with equal scores")
)
