package generators

import (
	"math/rand/v2"

	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
	apperrors "airline-datagen/pkg/errors"
)

// GeneratePlans создаёт по плану на каждый номер из BranchIDs(count).
// Список филиалов не читается: совпадение идентификаторов держится на том,
// что конфигурация требует count == числу филиалов.
func GeneratePlans(rng *rand.Rand, count int) ([]entities.SalesPlan, error) {
	if count < 0 {
		return nil, apperrors.NewInvalidInputError("количество планов не может быть отрицательным: %d", count)
	}

	plans := make([]entities.SalesPlan, 0, count)
	for _, id := range BranchIDs(count) {
		plans = append(plans, entities.SalesPlan{
			BranchID:    id,
			MonthlyPlan: randomInt(rng, constants.MinMonthlyPlan, constants.MaxMonthlyPlan),
		})
	}
	return plans, nil
}
