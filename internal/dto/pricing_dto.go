package dto

import "github.com/shopspring/decimal"

type SuggestPriceRequest struct {
	ProductID  int64           `json:"product_id" validate:"required"`
	ClientID   int64           `json:"client_id"  validate:"required"`
	MarginPct  decimal.Decimal `json:"margem_percentual" validate:"min=0"`
	AdminPct   decimal.Decimal `json:"admin_pct"  validate:"min=0"`
	FreightPct decimal.Decimal `json:"frete_pct"  validate:"min=0"`
	OtherPct   decimal.Decimal `json:"outros_pct" validate:"min=0"`
}

// CostBreakdownResponse carries cent-rounded cost totals per category.
type CostBreakdownResponse struct {
	Materials      decimal.Decimal `json:"materiais"`
	Processes      decimal.Decimal `json:"processos"`
	ThirdParty     decimal.Decimal `json:"terceiros"`
	Administrative decimal.Decimal `json:"administrativos"`
	TotalExTax     decimal.Decimal `json:"sem_impostos"`
}

// TaxRatesResponse carries the resolved rates at 4-decimal precision.
type TaxRatesResponse struct {
	PIS    decimal.Decimal `json:"pis"`
	COFINS decimal.Decimal `json:"cofins"`
	ICMS   decimal.Decimal `json:"icms"`
	Total  decimal.Decimal `json:"total"`
	Regime string          `json:"regime"`
}

type PriceResultResponse struct {
	Price         decimal.Decimal       `json:"preco_venda"`
	RealMarginPct decimal.Decimal       `json:"margem_real_percent"`
	TaxValue      decimal.Decimal       `json:"impostos_valor"`
	Breakdown     CostBreakdownResponse `json:"base"`
	Taxes         TaxRatesResponse      `json:"taxas"`
	Regime        string                `json:"regime"`
}
