package exporters

import (
	"encoding/json"
	"io"

	"airline-datagen/internal/entities"
)

// WritePlansJSON пишет массив планов с отступом в два пробела. Кириллица и
// спецсимволы не экранируются. nil пишется как [].
func WritePlansJSON(w io.Writer, plans []entities.SalesPlan) error {
	if plans == nil {
		plans = []entities.SalesPlan{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(plans)
}
