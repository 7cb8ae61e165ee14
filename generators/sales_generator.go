package generators

import (
	"math/rand/v2"

	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
	apperrors "airline-datagen/pkg/errors"
)

// GenerateSales создаёт count продаж. Филиал выбирается из pool с возвращением,
// поэтому один филиал может встречаться много раз, а какой-то ни разу.
func GenerateSales(rng *rand.Rand, pool []entities.Branch, count int) ([]entities.Sale, error) {
	if count < 0 {
		return nil, apperrors.NewInvalidInputError("количество продаж не может быть отрицательным: %d", count)
	}
	if count > 0 && len(pool) == 0 {
		return nil, apperrors.ErrEmptyBranchPool
	}

	sales := make([]entities.Sale, 0, count)
	for i := 0; i < count; i++ {
		branch := pool[rng.IntN(len(pool))]
		amount := randomInt(rng, constants.MinSalesAmount, constants.MaxSalesAmount)

		sales = append(sales, entities.Sale{
			BranchID:    branch.BranchID,
			SalesAmount: amount,
		})
	}
	return sales, nil
}
