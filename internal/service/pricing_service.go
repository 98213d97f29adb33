package service

import (
	"context"

	"precificacao/internal/dto"
	"precificacao/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var oneHundred = decimal.NewFromInt(100)

type PricingService interface {
	// SuggestPrice inverts the cost+margin+tax relationship: the sale price is
	// the ex-tax cost divided by (1 − margin − totalTaxRate). Rollup, tax
	// resolution, and pricing all read from one transaction so a concurrent
	// edit cannot produce a quote mixing old and new prices.
	SuggestPrice(ctx context.Context, req dto.SuggestPriceRequest) (*dto.PriceResultResponse, error)
}

type pricingService struct {
	costing CostingService
	tax     TaxService
	repo    repository.ProductRepository
}

func NewPricingService(costing CostingService, tax TaxService, repo repository.ProductRepository) PricingService {
	return &pricingService{costing: costing, tax: tax, repo: repo}
}

func (s *pricingService) SuggestPrice(ctx context.Context, req dto.SuggestPriceRequest) (*dto.PriceResultResponse, error) {
	for _, pct := range []decimal.Decimal{req.MarginPct, req.AdminPct, req.FreightPct, req.OtherPct} {
		if pct.IsNegative() {
			return nil, ErrNegativeInput
		}
	}

	var result *dto.PriceResultResponse
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		bc, err := s.costing.ComputeBaseCostTx(tx, req.ProductID)
		if err != nil {
			return err
		}
		rates, err := s.tax.ResolveRatesTx(tx, req.ProductID, req.ClientID)
		if err != nil {
			return err
		}

		coreCost := bc.Materials.Add(bc.Processes).Add(bc.ThirdParty)

		// Nonzero percentage inputs replace the flat admin-cost total with a
		// percentage of the core cost.
		admin := bc.Administrative
		pctTotal := req.AdminPct.Add(req.FreightPct).Add(req.OtherPct)
		if pctTotal.IsPositive() {
			admin = coreCost.Mul(pctTotal.Div(oneHundred))
		}
		costExTax := coreCost.Add(admin)

		margin := req.MarginPct.Div(oneHundred)
		divisor := decimal.NewFromInt(1).Sub(margin).Sub(rates.Total)
		if !divisor.IsPositive() {
			return ErrMarginTaxRange
		}

		price := costExTax.Div(divisor)
		taxValue := price.Mul(rates.Total)
		realMargin := decimal.Zero
		if price.IsPositive() {
			realMargin = price.Sub(costExTax).Sub(taxValue).Div(price).Mul(oneHundred)
		}

		result = &dto.PriceResultResponse{
			Price:         price.Round(2),
			RealMarginPct: realMargin.Round(2),
			TaxValue:      taxValue.Round(2),
			Breakdown: dto.CostBreakdownResponse{
				Materials:      bc.Materials.Round(2),
				Processes:      bc.Processes.Round(2),
				ThirdParty:     bc.ThirdParty.Round(2),
				Administrative: admin.Round(2),
				TotalExTax:     costExTax.Round(2),
			},
			Taxes:  *rates.toResponse(),
			Regime: rates.Regime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
