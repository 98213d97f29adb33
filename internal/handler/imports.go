package handler

import (
	"net/http"
	"strings"

	"precificacao/internal/apierror"
	"precificacao/internal/dto"
	"precificacao/internal/infra"
	"precificacao/internal/service"

	"github.com/gin-gonic/gin"
)

// ImportsHandler accepts either normalized JSON rows or an uploaded XLSX/CSV
// file (multipart field "file") with exact column headers.
type ImportsHandler struct{ svc service.ImportService }

func NewImportsHandler(svc service.ImportService) *ImportsHandler {
	return &ImportsHandler{svc: svc}
}

func (h *ImportsHandler) ImportProcesses(c *gin.Context) {
	var rows []dto.ProcessImportRow

	if isMultipart(c) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("arquivo ausente"))
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("arquivo ilegivel"))
			return
		}
		defer f.Close()
		rows, err = infra.ReadProcessRows(f, fh.Filename)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
	} else {
		var req dto.ImportProcessesRequest
		if !bindAndValidate(c, &req) {
			return
		}
		rows = req.Rows
	}

	resp, err := h.svc.ImportProcesses(c.Request.Context(), actingUser(c), rows)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ImportsHandler) ImportMaterials(c *gin.Context) {
	var rows []dto.MaterialImportRow

	if isMultipart(c) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("arquivo ausente"))
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("arquivo ilegivel"))
			return
		}
		defer f.Close()
		rows, err = infra.ReadMaterialRows(f, fh.Filename)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
	} else {
		var req dto.ImportMaterialsRequest
		if !bindAndValidate(c, &req) {
			return
		}
		rows = req.Rows
	}

	resp, err := h.svc.ImportMaterials(c.Request.Context(), actingUser(c), rows)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/")
}
