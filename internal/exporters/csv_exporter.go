package exporters

import (
	"encoding/csv"
	"io"
	"strconv"

	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
)

// WriteBranchesCSV пишет заголовок и по строке на филиал. Пустой срез даёт
// файл только с заголовком.
func WriteBranchesCSV(w io.Writer, branches []entities.Branch) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(constants.BranchHeader); err != nil {
		return err
	}
	for _, b := range branches {
		record := []string{b.BranchID, b.City, strconv.Itoa(b.EmployeesCount)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
