package handler

import (
	"net/http"

	"precificacao/internal/dto"
	"precificacao/internal/service"

	"github.com/gin-gonic/gin"
)

type CompositionHandler struct{ svc service.CompositionService }

func NewCompositionHandler(svc service.CompositionService) *CompositionHandler {
	return &CompositionHandler{svc: svc}
}

func (h *CompositionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompositionHandler) Replace(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ReplaceCompositionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Replace(c.Request.Context(), id, actingUser(c), req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompositionHandler) Clear(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Clear(c.Request.Context(), id, actingUser(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompositionHandler) LinkQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.LinkQuoteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.LinkQuote(c.Request.Context(), id, actingUser(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CompositionHandler) UnlinkQuote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}
	if err := h.svc.UnlinkQuote(c.Request.Context(), id, clientID); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompositionHandler) ListQuoteLinks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ListQuoteLinks(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
