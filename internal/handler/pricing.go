package handler

import (
	"net/http"
	"strconv"

	"precificacao/internal/apierror"
	"precificacao/internal/dto"
	"precificacao/internal/service"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	pricing service.PricingService
	tax     service.TaxService
}

func NewPricingHandler(pricing service.PricingService, tax service.TaxService) *PricingHandler {
	return &PricingHandler{pricing: pricing, tax: tax}
}

func (h *PricingHandler) Suggest(c *gin.Context) {
	var req dto.SuggestPriceRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.pricing.SuggestPrice(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TaxRates resolves effective rates for a (product, client) pair, for
// display next to the pricing form.
func (h *PricingHandler) TaxRates(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("product_id invalido"))
		return
	}
	clientID, err := strconv.ParseInt(c.Query("client_id"), 10, 64)
	if err != nil || clientID <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("client_id invalido"))
		return
	}
	resp, err := h.tax.ResolveRates(c.Request.Context(), productID, clientID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
