package handlers

import (
	"log"
	"net/http"

	"github.com/Dosada05/league-system/middleware"
	"github.com/Dosada05/league-system/services"
)

type ScheduleHandler struct {
	scheduleService services.ScheduleService
}

func NewScheduleHandler(scheduleService services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Generate godoc
// @Summary Сгенерировать расписание турнира
// @Description Строит групповой этап и каркас плей-офф. Повторный вызов для того же турнира возвращает 409.
// @Tags schedule
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param input body services.GenerateScheduleInput true "Состав, тайм-слоты, лимит матчей в день"
// @Success 201 {object} services.ScheduleView
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/schedule [post]
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.GenerateScheduleInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.scheduleService.Generate(r.Context(), tournamentID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	// Генерация одноразовая, фиксируем инициатора.
	if userID, idErr := middleware.GetUserIDFromContext(r.Context()); idErr == nil {
		log.Printf("Schedule for tournament %d generated by user %d", tournamentID, userID)
	}
	if err := writeJSON(w, http.StatusCreated, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Get godoc
// @Summary Получить расписание турнира
// @Tags schedule
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {object} services.ScheduleView
// @Router /tournaments/{tournamentID}/schedule [get]
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	view, err := h.scheduleService.Get(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, view, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignVenues godoc
// @Summary Распределить площадки по матчам
// @Description Каждый запуск раздаёт площадки заново, перезаписывая прежние назначения.
// @Tags schedule
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {array} models.Fixture
// @Failure 409 {object} map[string]interface{}
// @Router /tournaments/{tournamentID}/schedule/assign-venues [post]
func (h *ScheduleHandler) AssignVenues(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.scheduleService.AssignVenues(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AssignReferees godoc
// @Summary Назначить судей на матчи
// @Description Заполняет только пустые матчи, ручные назначения сохраняются. Матчи без кандидата остаются без судьи.
// @Tags schedule
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {array} models.Fixture
// @Router /tournaments/{tournamentID}/schedule/assign-referees [post]
func (h *ScheduleHandler) AssignReferees(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixtures, err := h.scheduleService.AssignReferees(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"fixtures": fixtures}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
