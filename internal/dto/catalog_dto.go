package dto

import "github.com/shopspring/decimal"

// ─── Catalog rows ────────────────────────────────────────────────────────────
// The editing UI submits whole tables; a zero ID means "new row". Prices and
// quantities are decimal strings on the wire.

type MaterialRow struct {
	ID        int64           `json:"id"`
	Group     string          `json:"grupo"`
	Subgroup  string          `json:"subgrupo"`
	Name      string          `json:"nome"       validate:"required"`
	NCM       string          `json:"ncm"`
	Unit      string          `json:"unidade"`
	UnitPrice decimal.Decimal `json:"preco_unitario" validate:"min=0"`
	Supplier  string          `json:"fornecedor"`
	UpdatedAt string          `json:"data_atualizacao"`
}

type ProcessRow struct {
	ID           int64           `json:"id"`
	Group        string          `json:"grupo"`
	Subgroup     string          `json:"subgrupo"`
	Name         string          `json:"nome"       validate:"required"`
	PricePerHour decimal.Decimal `json:"preco_unitario_hora" validate:"min=0"`
	Unit         string          `json:"unidade"`
	Origin       string          `json:"origem"`
}

type ThirdPartyRow struct {
	ID         int64           `json:"id"`
	Name       string          `json:"nome"       validate:"required"`
	UnitPrice  decimal.Decimal `json:"preco_unitario" validate:"min=0"`
	DefaultQty decimal.Decimal `json:"quantidade_padrao" validate:"min=0"`
	Supplier   string          `json:"fornecedor"`
	Unit       string          `json:"unidade"`
}

type AdminCostRow struct {
	ID    int64           `json:"id"`
	Name  string          `json:"nome"  validate:"required"`
	Value decimal.Decimal `json:"valor" validate:"min=0"`
}

type ClientRow struct {
	ID     int64           `json:"id"`
	Name   string          `json:"nome"   validate:"required"`
	Plant  string          `json:"planta"`
	UF     string          `json:"uf"`
	City   string          `json:"cidade"`
	Regime string          `json:"regime"`
	PIS    decimal.Decimal `json:"pis"    validate:"min=0"`
	COFINS decimal.Decimal `json:"cofins" validate:"min=0"`
	ICMS   decimal.Decimal `json:"icms"   validate:"min=0"`
	Factor decimal.Decimal `json:"fator"`
}

type NcmTaxRow struct {
	ID     int64           `json:"id"`
	NCM    string          `json:"ncm"    validate:"required"`
	PIS    decimal.Decimal `json:"pis"    validate:"min=0"`
	COFINS decimal.Decimal `json:"cofins" validate:"min=0"`
	ICMS   decimal.Decimal `json:"icms"   validate:"min=0"`
}

// ─── Whole-table replace requests ────────────────────────────────────────────

type ReplaceMaterialsRequest struct {
	Rows []MaterialRow `json:"rows" validate:"dive"`
}

type ReplaceProcessesRequest struct {
	Rows []ProcessRow `json:"rows" validate:"dive"`
}

type ReplaceThirdPartyRequest struct {
	Rows []ThirdPartyRow `json:"rows" validate:"dive"`
}

type ReplaceAdminCostsRequest struct {
	Rows []AdminCostRow `json:"rows" validate:"dive"`
}

type ReplaceClientsRequest struct {
	Rows []ClientRow `json:"rows" validate:"dive"`
}

type ReplaceNcmTaxesRequest struct {
	Rows []NcmTaxRow `json:"rows" validate:"dive"`
}
