// Bu dosya — ToolHandler: araç kataloğu endpoint'i.
package handlers

import (
	"net/http"

	"github.com/akinalp/emlakkit/models"
	"github.com/akinalp/emlakkit/pkg"
	"github.com/akinalp/emlakkit/services"
)

// ToolHandler, katalog endpoint'ini yöneten struct.
type ToolHandler struct {
	toolService services.ToolService
}

// NewToolHandler, constructor.
func NewToolHandler(toolService services.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

// List godoc
// GET /api/tools
// Opsiyonel ?category=calculator|generator filtresi.
// Frontend menüyü ve araç sayfalarını bu listeden üretir.
func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		pkg.JSON(w, http.StatusOK, h.toolService.ListByCategory(models.ToolCategory(category)))
		return
	}

	pkg.JSON(w, http.StatusOK, h.toolService.List())
}
