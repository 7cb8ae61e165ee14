package exporters

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
)

func salesHeaderRow() []interface{} {
	row := make([]interface{}, len(constants.SalesHeader))
	for i, h := range constants.SalesHeader {
		row[i] = h
	}
	return row
}

// WriteSalesXLSX собирает книгу с одним листом: жирная шапка и продажи в порядке генерации.
// Суммы записываются числами, а не строками.
func WriteSalesXLSX(w io.Writer, sales []entities.Sale) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := constants.SalesSheetName
	header := salesHeaderRow()
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("ошибка записи шапки: %w", err)
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", style); err != nil {
		return err
	}

	for i, s := range sales {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{s.BranchID, s.SalesAmount}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("ошибка записи строки %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sheet, "A", "B", 16); err != nil {
		return err
	}

	return f.Write(w)
}
