package infra

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"precificacao/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet readers for the import interface. Headers must match the
// normalized field names exactly; files with arbitrary column layouts are
// rejected instead of guessed at.

var (
	ErrMissingHeader    = errors.New("planilha sem cabecalho")
	ErrUnsupportedSheet = errors.New("formato de planilha nao suportado")
)

var sixty = decimal.NewFromInt(60)

// ReadProcessRows parses an uploaded process sheet. Accepted price columns
// are preco_unitario_hora, preco_hora, or preco_minuto (converted to an
// hourly price).
func ReadProcessRows(r io.Reader, filename string) ([]dto.ProcessImportRow, error) {
	records, err := readRecords(r, filename)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}

	cols := headerIndex(records[0])
	priceCol, perMinute := -1, false
	for _, name := range []string{"preco_unitario_hora", "preco_hora"} {
		if i, ok := cols[name]; ok {
			priceCol = i
			break
		}
	}
	if priceCol < 0 {
		if i, ok := cols["preco_minuto"]; ok {
			priceCol, perMinute = i, true
		}
	}
	nameCol, ok := cols["nome"]
	if !ok || priceCol < 0 {
		return nil, fmt.Errorf("%w: colunas obrigatorias nome e preco", ErrMissingHeader)
	}

	var rows []dto.ProcessImportRow
	for _, rec := range records[1:] {
		name := cell(rec, nameCol)
		if name == "" {
			continue
		}
		price, err := parsePrice(cell(rec, priceCol))
		if err != nil {
			continue // unparseable price rows are skipped like blank ones
		}
		if perMinute {
			price = price.Mul(sixty)
		}
		rows = append(rows, dto.ProcessImportRow{
			Group:        cellAt(rec, cols, "grupo"),
			Subgroup:     cellAt(rec, cols, "subgrupo"),
			Name:         name,
			PricePerHour: price,
			Unit:         cellAt(rec, cols, "unidade"),
		})
	}
	return rows, nil
}

// ReadMaterialRows parses an uploaded material sheet.
func ReadMaterialRows(r io.Reader, filename string) ([]dto.MaterialImportRow, error) {
	records, err := readRecords(r, filename)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrMissingHeader
	}

	cols := headerIndex(records[0])
	nameCol, okName := cols["nome"]
	priceCol, okPrice := cols["preco_unitario"]
	if !okName || !okPrice {
		return nil, fmt.Errorf("%w: colunas obrigatorias nome e preco_unitario", ErrMissingHeader)
	}

	var rows []dto.MaterialImportRow
	for _, rec := range records[1:] {
		name := cell(rec, nameCol)
		if name == "" {
			continue
		}
		price, err := parsePrice(cell(rec, priceCol))
		if err != nil {
			continue
		}
		rows = append(rows, dto.MaterialImportRow{
			Group:     cellAt(rec, cols, "grupo"),
			Subgroup:  cellAt(rec, cols, "subgrupo"),
			Name:      name,
			NCM:       cellAt(rec, cols, "ncm"),
			Unit:      cellAt(rec, cols, "unidade"),
			UnitPrice: price,
			Supplier:  cellAt(rec, cols, "fornecedor"),
		})
	}
	return rows, nil
}

func readRecords(r io.Reader, filename string) ([][]string, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return readXLSX(r)
	case strings.HasSuffix(lower, ".csv"):
		return readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSheet, filename)
	}
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrMissingHeader
	}
	return f.GetRows(sheets[0])
}

func readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	return cols
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func cellAt(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok {
		return ""
	}
	return cell(rec, i)
}

// parsePrice accepts both dot and comma decimal separators, common in
// Brazilian sheets.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errors.New("vazio")
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return decimal.NewFromString(s)
}
