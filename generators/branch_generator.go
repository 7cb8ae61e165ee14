package generators

import (
	"math/rand/v2"

	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
	apperrors "airline-datagen/pkg/errors"
)

// GenerateBranches создаёт count филиалов с номерами 1..count. Для каждого
// сначала выбирается город, затем число сотрудников.
func GenerateBranches(rng *rand.Rand, count int) ([]entities.Branch, error) {
	if count < 0 {
		return nil, apperrors.NewInvalidInputError("количество филиалов не может быть отрицательным: %d", count)
	}

	branches := make([]entities.Branch, 0, count)
	for _, id := range BranchIDs(count) {
		city := constants.Cities[rng.IntN(len(constants.Cities))]
		employees := randomInt(rng, constants.MinEmployees, constants.MaxEmployees)

		branches = append(branches, entities.Branch{
			BranchID:       id,
			City:           city,
			EmployeesCount: employees,
		})
	}
	return branches, nil
}
