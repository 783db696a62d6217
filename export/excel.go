package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"settletrack-backend/models"
)

const exportSheet = "Cases"

// WriteCasesXLSX writes the collection as an xlsx workbook with the
// same columns and order as the CSV export.
func WriteCasesXLSX(w io.Writer, cases []*models.Case) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, h := range caseHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, c := range cases {
		for colIdx, value := range caseRow(c) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write case %s: %w", c.ID, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
