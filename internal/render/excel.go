package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"coinex-screener-bot/pkg/models"
)

const excelSheet = "Screener"

// Excel builds the legacy 3-column spreadsheet export: one row per
// screener entry with its tier label and the notional the tier ranks
// by (futures for P1/P2, spot for P3).
func Excel(p1, p2, p3 models.Tier) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]interface{}{{"priority", "symbol", "usd_24h"}}
	for _, e := range p1 {
		rows = append(rows, []interface{}{"P1", e.Base, e.FuturesUSD})
	}
	for _, e := range p2 {
		rows = append(rows, []interface{}{"P2", e.Base, e.FuturesUSD})
	}
	for _, e := range p3 {
		rows = append(rows, []interface{}{"P3", e.Base, e.SpotUSD})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(excelSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf, nil
}
