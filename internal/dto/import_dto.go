package dto

import "github.com/shopspring/decimal"

// Normalized import records. Column-name guessing happens (if at all) in the
// uploading client; this interface accepts exactly these shapes.

type ProcessImportRow struct {
	Group        string          `json:"grupo"`
	Subgroup     string          `json:"subgrupo"`
	Name         string          `json:"nome" validate:"required"`
	PricePerHour decimal.Decimal `json:"preco_unitario_hora" validate:"min=0"`
	Unit         string          `json:"unidade"`
}

type MaterialImportRow struct {
	Group     string          `json:"grupo"`
	Subgroup  string          `json:"subgrupo"`
	Name      string          `json:"nome" validate:"required"`
	NCM       string          `json:"ncm"`
	Unit      string          `json:"unidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario" validate:"min=0"`
	Supplier  string          `json:"fornecedor"`
}

type ImportProcessesRequest struct {
	Rows []ProcessImportRow `json:"rows" validate:"required,dive"`
}

type ImportMaterialsRequest struct {
	Rows []MaterialImportRow `json:"rows" validate:"required,dive"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
}
