package fileio

import (
	"io"

	excelize "github.com/xuri/excelize/v2"

	"github.com/changmai/sabang-qoo10-rincos/internal/utils"
)

const defaultSheet = "Sheet1"

// WriteOptions controls how a Table lands in the workbook. Columns listed in
// NumericColumns are written as numbers when the cell parses as one; every
// other cell stays text so leading zeros and long barcodes survive.
type WriteOptions struct {
	Sheet          string
	NumericColumns []string
}

// WriteXLSX пишет таблицу одним листом: жирная шапка, затем строки как есть.
func WriteXLSX(w io.Writer, t *Table, opt WriteOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := opt.Sheet
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return err
		}
	}

	numeric := make(map[int]bool, len(opt.NumericColumns))
	for _, name := range opt.NumericColumns {
		if i := t.Index(name); i >= 0 {
			numeric[i] = true
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header, excelize.RowOpts{StyleID: bold}); err != nil {
		return err
	}

	for r, row := range t.Rows {
		vals := make([]interface{}, len(row))
		for c, v := range row {
			switch {
			case v == "":
				vals[c] = nil
			case numeric[c]:
				if n, ok := utils.ParseAmount(v); ok {
					vals[c] = n
				} else {
					vals[c] = v
				}
			default:
				vals[c] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, vals); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}
