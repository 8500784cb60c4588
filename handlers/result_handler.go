package handlers

import (
	"net/http"

	"github.com/Dosada05/league-system/services"
)

type ResultHandler struct {
	resultService services.ResultService
}

func NewResultHandler(resultService services.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// RecordGroupResult godoc
// @Summary Записать результат матча группового этапа
// @Description Ничья недопустима, матч помечается завершённым, сетка плей-офф пересчитывается.
// @Tags results
// @Accept json
// @Produce json
// @Param fixtureID path int true "Fixture ID"
// @Param input body services.ResultInput true "Счёт"
// @Success 200 {object} models.Fixture
// @Failure 400 {object} map[string]interface{}
// @Router /fixtures/{fixtureID}/result [put]
func (h *ResultHandler) RecordGroupResult(w http.ResponseWriter, r *http.Request) {
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.resultService.RecordGroupResult(r.Context(), fixtureID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RecordPlayoffResult godoc
// @Summary Записать результат матча плей-офф
// @Description Участники матча должны быть разрешены; после полуфинала финал получает победителя.
// @Tags results
// @Accept json
// @Produce json
// @Param fixtureID path int true "Playoff fixture ID"
// @Param input body services.ResultInput true "Счёт"
// @Success 200 {object} models.PlayoffFixture
// @Failure 400 {object} map[string]interface{}
// @Router /playoff-fixtures/{fixtureID}/result [put]
func (h *ResultHandler) RecordPlayoffResult(w http.ResponseWriter, r *http.Request) {
	fixtureID, err := getIDFromURL(r, "fixtureID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.ResultInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fixture, err := h.resultService.RecordPlayoffResult(r.Context(), fixtureID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, fixture, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
