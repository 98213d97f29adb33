package dto

import "github.com/shopspring/decimal"

// ─── Replace-composition request ─────────────────────────────────────────────
// Entries may reference a catalog row by id, or by display name. A named entry
// whose name is not in the catalog is created on the fly with a zero price
// (resolve-or-create, matching the composition editor's behavior). On
// duplicate names the first match by lowest id wins.

type MaterialUsageEntry struct {
	MaterialID int64           `json:"material_id"`
	Name       string          `json:"nome"`
	Quantity   decimal.Decimal `json:"quantidade" validate:"min=0"`
}

type ProcessUsageEntry struct {
	ProcessID int64           `json:"process_id"`
	Name      string          `json:"nome"`
	Hours     decimal.Decimal `json:"horas" validate:"min=0"`
}

type ThirdUsageEntry struct {
	ThirdID  int64           `json:"third_id"`
	Name     string          `json:"nome"`
	Quantity decimal.Decimal `json:"quantidade" validate:"min=0"`
}

type ComponentEntry struct {
	ProductID int64           `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantidade" validate:"min=0"`
}

type ReplaceCompositionRequest struct {
	Materials  []MaterialUsageEntry `json:"materiais"  validate:"dive"`
	Processes  []ProcessUsageEntry  `json:"processos"  validate:"dive"`
	ThirdParty []ThirdUsageEntry    `json:"terceiros"  validate:"dive"`
	Components []ComponentEntry     `json:"componentes" validate:"dive"`
}

// ─── Composition read model ──────────────────────────────────────────────────

type UsageLine struct {
	ID       int64           `json:"id"`
	RefID    int64           `json:"ref_id"`
	Name     string          `json:"nome"`
	Quantity decimal.Decimal `json:"quantidade"`
}

type CompositionResponse struct {
	ProductID  int64       `json:"product_id"`
	Materials  []UsageLine `json:"materiais"`
	Processes  []UsageLine `json:"processos"`
	ThirdParty []UsageLine `json:"terceiros"`
	Components []UsageLine `json:"componentes"`
}

// ─── Quote links ─────────────────────────────────────────────────────────────

type LinkQuoteRequest struct {
	ClientID   int64           `json:"client_id" validate:"required"`
	MarginPct  decimal.Decimal `json:"margem"    validate:"min=0"`
	FinalPrice decimal.Decimal `json:"preco_final" validate:"min=0"`
}

type QuoteLinkResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"product_id"`
	ClientID   int64           `json:"client_id"`
	MarginPct  decimal.Decimal `json:"margem"`
	FinalPrice decimal.Decimal `json:"preco_final"`
	CreatedAt  string          `json:"created_at"`
}
