package handlers

import (
	"net/http"

	"github.com/Dosada05/league-system/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog godoc
// @Summary Справочник команд, площадок и судей
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Catalog
// @Router /catalog [get]
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogService.GetCatalog(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, catalog, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
