package service

import (
	"context"
	"testing"

	"precificacao/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newImportFixture() (*stubStore, ImportService) {
	store := newStubStore()
	return store, NewImportService(&stubCatalogRepo{store: store})
}

func TestImportProcessesTagsSpreadsheetOrigin(t *testing.T) {
	store, svc := newImportFixture()

	resp, err := svc.ImportProcesses(context.Background(), 1, []dto.ProcessImportRow{
		{Group: "Usinagem", Subgroup: "CNC", Name: "Fresamento CNC", PricePerHour: dec("120"), Unit: "hora"},
		{Name: "Corte Laser", PricePerHour: dec("200")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Imported)

	for _, p := range store.processes {
		assert.Equal(t, "Planilha 1", p.Origin)
	}
}

func TestImportProcessesAppendsWithoutTouchingExistingRows(t *testing.T) {
	store, svc := newImportFixture()
	existing := store.addProcess("Manualzinho", "80")

	_, err := svc.ImportProcesses(context.Background(), 1, []dto.ProcessImportRow{
		{Name: "Fresamento CNC", PricePerHour: dec("120")},
	})
	require.NoError(t, err)

	assert.Len(t, store.processes, 2)
	assert.Equal(t, "Manual", store.processes[existing.ID].Origin)
}

func TestImportProcessesSkipsBlankNamesAndDefaultsUnit(t *testing.T) {
	store, svc := newImportFixture()

	resp, err := svc.ImportProcesses(context.Background(), 1, []dto.ProcessImportRow{
		{Name: "  ", PricePerHour: dec("120")},
		{Name: "Dobra", PricePerHour: dec("95")},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Imported)

	for _, p := range store.processes {
		assert.Equal(t, "hora", p.Unit)
	}
}

func TestImportProcessesRejectsNegativePrice(t *testing.T) {
	_, svc := newImportFixture()

	_, err := svc.ImportProcesses(context.Background(), 1, []dto.ProcessImportRow{
		{Name: "Dobra", PricePerHour: dec("-1")},
	})
	assert.ErrorIs(t, err, ErrNegativeInput)
}

func TestImportMaterialsStampsUpdatedAt(t *testing.T) {
	store, svc := newImportFixture()

	resp, err := svc.ImportMaterials(context.Background(), 1, []dto.MaterialImportRow{
		{Group: "Aço", Name: "Chapa A36 3mm", NCM: "7208.38.90", Unit: "kg", UnitPrice: dec("8.5"), Supplier: "Fornecedor X"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Imported)

	require.Len(t, store.materials, 1)
	for _, m := range store.materials {
		assert.False(t, m.UpdatedAt.IsZero())
		assert.Equal(t, "7208.38.90", m.NCM)
	}
}
