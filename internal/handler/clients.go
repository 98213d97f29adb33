package handler

import (
	"net/http"

	"precificacao/internal/dto"
	"precificacao/internal/service"

	"github.com/gin-gonic/gin"
)

// ClientsHandler serves clients and NCM tax overrides, both edited as whole
// tables like the catalog.
type ClientsHandler struct{ svc service.CatalogService }

func NewClientsHandler(svc service.CatalogService) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

func (h *ClientsHandler) List(c *gin.Context) {
	rows, err := h.svc.ListClients(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ClientsHandler) Replace(c *gin.Context) {
	var req dto.ReplaceClientsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceClients(c.Request.Context(), actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientsHandler) ListNcmTaxes(c *gin.Context) {
	rows, err := h.svc.ListNcmTaxes(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *ClientsHandler) ReplaceNcmTaxes(c *gin.Context) {
	var req dto.ReplaceNcmTaxesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceNcmTaxes(c.Request.Context(), actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
