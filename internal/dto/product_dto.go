package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Code          string          `json:"codigo"`
	Name          string          `json:"nome"       validate:"required,min=1,max=200"`
	Quantity      decimal.Decimal `json:"quantidade" validate:"min=0"`
	DestinationUF string          `json:"destino_uf"`
	NCM           string          `json:"ncm"`
	OriginUF      string          `json:"local_fabricacao_uf"`
}

type UpdateProductRequest struct {
	Code          *string          `json:"codigo"`
	Name          *string          `json:"nome"       validate:"omitempty,min=1,max=200"`
	Quantity      *decimal.Decimal `json:"quantidade" validate:"omitempty,min=0"`
	DestinationUF *string          `json:"destino_uf"`
	NCM           *string          `json:"ncm"`
	OriginUF      *string          `json:"local_fabricacao_uf"`
}

// ProductGridRow is one line of the spreadsheet-style product editor.
// A zero ID means "create"; ids present in the store but absent from the grid
// are cascade-deleted.
type ProductGridRow struct {
	ID            int64           `json:"id"`
	Code          string          `json:"codigo"`
	Name          string          `json:"nome"       validate:"required"`
	Quantity      decimal.Decimal `json:"quantidade" validate:"min=0"`
	DestinationUF string          `json:"destino_uf"`
	NCM           string          `json:"ncm"`
	OriginUF      string          `json:"local_fabricacao_uf"`
}

type SaveProductGridRequest struct {
	Rows []ProductGridRow `json:"rows" validate:"dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            int64           `json:"id"`
	Code          string          `json:"codigo"`
	Name          string          `json:"nome"`
	Quantity      decimal.Decimal `json:"quantidade"`
	DestinationUF string          `json:"destino_uf"`
	NCM           string          `json:"ncm"`
	OriginUF      string          `json:"local_fabricacao_uf"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
}
