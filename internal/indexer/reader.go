// Package indexer ingests the rulings workbook into the vector collection.
package indexer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"sentencias-rag/internal/retrieval"
)

// Ruling is one corpus row from the results workbook.
type Ruling struct {
	Providencia string
	Fecha       string
	Tema        string
	Sintesis    string
	Resuelve    string
}

// ReadWorkbook loads rulings from an XLSX workbook. When sheet is empty the
// first sheet is used. Columns are mapped by header name; rows without a
// Providencia value are skipped.
func ReadWorkbook(path, sheet string) ([]Ruling, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	return rulingsFromRows(rows)
}

// rulingsFromRows maps raw sheet rows to rulings using the header row.
func rulingsFromRows(rows [][]string) ([]Ruling, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook sheet is empty")
	}

	columns := make(map[string]int, len(rows[0]))
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}
	if _, ok := columns[retrieval.FieldProvidencia]; !ok {
		return nil, fmt.Errorf("missing %q column in header row", retrieval.FieldProvidencia)
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rulings := make([]Ruling, 0, len(rows)-1)
	for _, row := range rows[1:] {
		providencia := cell(row, retrieval.FieldProvidencia)
		if providencia == "" {
			continue
		}
		rulings = append(rulings, Ruling{
			Providencia: providencia,
			Fecha:       cell(row, retrieval.FieldFecha),
			Tema:        cell(row, retrieval.FieldTema),
			Sintesis:    cell(row, retrieval.FieldSintesis),
			Resuelve:    cell(row, retrieval.FieldResuelve),
		})
	}

	return rulings, nil
}
