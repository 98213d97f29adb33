package infra

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadProcessRowsCSV(t *testing.T) {
	csv := strings.Join([]string{
		"grupo,subgrupo,nome,preco_hora,unidade",
		"Usinagem,CNC,Fresamento CNC,120,hora",
		"Usinagem,CNC,Torneamento,\"95.50\",hora",
		",,, ,",
	}, "\n")

	rows, err := ReadProcessRows(strings.NewReader(csv), "processos.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Fresamento CNC", rows[0].Name)
	assert.Equal(t, "120", rows[0].PricePerHour.String())
	assert.Equal(t, "Usinagem", rows[0].Group)
	assert.Equal(t, "95.50", rows[1].PricePerHour.StringFixed(2))
}

func TestReadProcessRowsConvertsMinutePrices(t *testing.T) {
	csv := "nome,preco_minuto\nCorte Laser,2\n"

	rows, err := ReadProcessRows(strings.NewReader(csv), "processos.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "120", rows[0].PricePerHour.String())
}

func TestReadProcessRowsBrazilianDecimalSeparator(t *testing.T) {
	csv := "nome,preco_hora\nDobra,\"1.234,56\"\n"

	rows, err := ReadProcessRows(strings.NewReader(csv), "processos.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1234.56", rows[0].PricePerHour.StringFixed(2))
}

func TestReadProcessRowsRequiresExactHeaders(t *testing.T) {
	csv := "descricao,valor\nFresamento,120\n"

	_, err := ReadProcessRows(strings.NewReader(csv), "processos.csv")
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestReadProcessRowsRejectsUnknownExtension(t *testing.T) {
	_, err := ReadProcessRows(strings.NewReader("x"), "processos.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedSheet)
}

func TestReadMaterialRowsCSV(t *testing.T) {
	csv := strings.Join([]string{
		"grupo,subgrupo,nome,ncm,unidade,preco_unitario,fornecedor",
		"Aço,Chapas,Chapa A36 3mm,7208.38.90,kg,\"8,50\",Fornecedor X",
	}, "\n")

	rows, err := ReadMaterialRows(strings.NewReader(csv), "materiais.csv")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Chapa A36 3mm", rows[0].Name)
	assert.Equal(t, "7208.38.90", rows[0].NCM)
	assert.Equal(t, "8.50", rows[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "Fornecedor X", rows[0].Supplier)
}

func TestReadProcessRowsXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"grupo", "subgrupo", "nome", "preco_unitario_hora", "unidade"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Usinagem", "CNC", "Fresamento CNC", 120, "hora"}))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := ReadProcessRows(bytes.NewReader(buf.Bytes()), "processos.xlsx")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Fresamento CNC", rows[0].Name)
	assert.Equal(t, "120.00", rows[0].PricePerHour.StringFixed(2))
}
