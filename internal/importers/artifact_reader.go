package importers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
	apperrors "airline-datagen/pkg/errors"
)

// ReadBranchesCSV разбирает branch.csv. Шапка должна совпадать посимвольно.
func ReadBranchesCSV(r io.Reader) ([]entities.Branch, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(constants.BranchHeader)

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: branch.csv: %v", apperrors.ErrArtifactMismatch, err)
	}
	if err := checkHeader(constants.BranchFileName, rows, constants.BranchHeader); err != nil {
		return nil, err
	}

	branches := make([]entities.Branch, 0, len(rows)-1)
	for i, row := range rows[1:] {
		employees, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("%w: branch.csv строка %d: employees_count %q", apperrors.ErrArtifactMismatch, i+2, row[2])
		}
		branches = append(branches, entities.Branch{BranchID: row[0], City: row[1], EmployeesCount: employees})
	}
	return branches, nil
}

// ReadSalesXLSX читает первый (и единственный) лист sales.xlsx.
func ReadSalesXLSX(r io.Reader) ([]entities.Sale, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(constants.SalesSheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: sales.xlsx: %v", apperrors.ErrArtifactMismatch, err)
	}
	if err := checkHeader(constants.SalesFileName, rows, constants.SalesHeader); err != nil {
		return nil, err
	}

	sales := make([]entities.Sale, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < len(constants.SalesHeader) {
			return nil, fmt.Errorf("%w: sales.xlsx строка %d: не хватает колонок", apperrors.ErrArtifactMismatch, i+2)
		}
		amount, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: sales.xlsx строка %d: sales_amount %q", apperrors.ErrArtifactMismatch, i+2, row[1])
		}
		sales = append(sales, entities.Sale{BranchID: row[0], SalesAmount: amount})
	}
	return sales, nil
}

func ReadPlansJSON(r io.Reader) ([]entities.SalesPlan, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var plans []entities.SalesPlan
	if err := dec.Decode(&plans); err != nil {
		return nil, fmt.Errorf("%w: sales_plan.json: %v", apperrors.ErrArtifactMismatch, err)
	}
	if plans == nil {
		return nil, fmt.Errorf("%w: sales_plan.json: ожидался массив", apperrors.ErrArtifactMismatch)
	}
	return plans, nil
}

func checkHeader(fileName string, rows [][]string, want []string) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: %s: нет шапки", apperrors.ErrArtifactMismatch, fileName)
	}
	if !slices.Equal(rows[0], want) {
		return fmt.Errorf("%w: %s: шапка %v, ожидалась %v", apperrors.ErrArtifactMismatch, fileName, rows[0], want)
	}
	return nil
}
