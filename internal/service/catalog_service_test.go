package service

import (
	"context"
	"testing"

	"precificacao/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture() (*stubStore, CatalogService) {
	store := newStubStore()
	svc := NewCatalogService(&stubCatalogRepo{store: store}, &stubClientRepo{store: store})
	return store, svc
}

func TestReplaceMaterialsSwapsTheWholeTable(t *testing.T) {
	store, svc := newCatalogFixture()
	store.addMaterial("Antiga", "1")
	store.addMaterial("Outra Antiga", "2")

	err := svc.ReplaceMaterials(context.Background(), 1, dto.ReplaceMaterialsRequest{
		Rows: []dto.MaterialRow{
			{Name: "Chapa A36 3mm", Unit: "kg", UnitPrice: dec("8.5"), NCM: "7208.38.90"},
		},
	})
	require.NoError(t, err)

	rows, err := svc.ListMaterials(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Chapa A36 3mm", rows[0].Name)
	assert.Equal(t, "8.50", rows[0].UnitPrice.StringFixed(2))
}

func TestReplaceMaterialsEmptyClearsTheTable(t *testing.T) {
	store, svc := newCatalogFixture()
	store.addMaterial("Antiga", "1")

	err := svc.ReplaceMaterials(context.Background(), 1, dto.ReplaceMaterialsRequest{})
	require.NoError(t, err)

	rows, err := svc.ListMaterials(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReplaceProcessesDefaultsOriginToManual(t *testing.T) {
	_, svc := newCatalogFixture()

	err := svc.ReplaceProcesses(context.Background(), 1, dto.ReplaceProcessesRequest{
		Rows: []dto.ProcessRow{
			{Name: "Corte Laser", PricePerHour: dec("200")},
			{Name: "Importado", PricePerHour: dec("90"), Origin: "Planilha 1"},
		},
	})
	require.NoError(t, err)

	rows, err := svc.ListProcesses(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Manual", rows[0].Origin)
	assert.Equal(t, "Planilha 1", rows[1].Origin)
}

func TestReplaceClientsAndNcmTaxes(t *testing.T) {
	store, svc := newCatalogFixture()
	store.addClient("Antigo", "SP", "0", "0", "0")

	err := svc.ReplaceClients(context.Background(), 1, dto.ReplaceClientsRequest{
		Rows: []dto.ClientRow{
			{Name: "Cliente Demo", UF: "SP", Regime: "real", PIS: dec("0.0165"), COFINS: dec("0.076"), ICMS: dec("0.12"), Factor: dec("1")},
		},
	})
	require.NoError(t, err)

	clients, err := svc.ListClients(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "Cliente Demo", clients[0].Name)

	err = svc.ReplaceNcmTaxes(context.Background(), 1, dto.ReplaceNcmTaxesRequest{
		Rows: []dto.NcmTaxRow{{NCM: "7208.38.90", PIS: dec("0.0165"), COFINS: dec("0.076"), ICMS: dec("0.12")}},
	})
	require.NoError(t, err)

	taxes, err := svc.ListNcmTaxes(context.Background())
	require.NoError(t, err)
	require.Len(t, taxes, 1)
	assert.Equal(t, "7208.38.90", taxes[0].NCM)
}

func TestReplaceAdminCosts(t *testing.T) {
	store, svc := newCatalogFixture()
	store.addAdminCost("Antigo", "999")

	err := svc.ReplaceAdminCosts(context.Background(), 1, dto.ReplaceAdminCostsRequest{
		Rows: []dto.AdminCostRow{
			{Name: "Frete", Value: dec("500")},
			{Name: "Energia", Value: dec("250")},
		},
	})
	require.NoError(t, err)

	rows, err := svc.ListAdminCosts(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	total, err := (&stubCatalogRepo{store: store}).SumAdminCostsTx(nil)
	require.NoError(t, err)
	assert.Equal(t, "750.00", total.StringFixed(2))
}
