package handler

import (
	"net/http"

	"precificacao/internal/dto"
	"precificacao/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the flat reference tables. GET returns the whole
// table; PUT replaces it wholesale inside one transaction.
type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	rows, err := h.svc.ListMaterials(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *CatalogHandler) ReplaceMaterials(c *gin.Context) {
	var req dto.ReplaceMaterialsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceMaterials(c.Request.Context(), actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListProcesses(c *gin.Context) {
	rows, err := h.svc.ListProcesses(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *CatalogHandler) ReplaceProcesses(c *gin.Context) {
	var req dto.ReplaceProcessesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceProcesses(c.Request.Context(), actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListThirdParty(c *gin.Context) {
	rows, err := h.svc.ListThirdParty(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *CatalogHandler) ReplaceThirdParty(c *gin.Context) {
	var req dto.ReplaceThirdPartyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceThirdParty(c.Request.Context(), actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListAdminCosts(c *gin.Context) {
	rows, err := h.svc.ListAdminCosts(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rows": rows})
}

func (h *CatalogHandler) ReplaceAdminCosts(c *gin.Context) {
	var req dto.ReplaceAdminCostsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ReplaceAdminCosts(c.Request.Context(), actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
