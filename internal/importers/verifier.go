package importers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"airline-datagen/generators"
	"airline-datagen/internal/entities"
	"airline-datagen/pkg/constants"
	apperrors "airline-datagen/pkg/errors"
	"airline-datagen/pkg/filestorage"
)

// Counts - сколько записей ожидается в каждом артефакте.
type Counts struct {
	Branches int
	Sales    int
	Plans    int
}

// Verifier перечитывает артефакты с диска и сверяет их между собой.
type Verifier struct {
	storage  filestorage.FileStorageInterface
	validate *validator.Validate
	logger   *zap.Logger
}

func NewVerifier(storage filestorage.FileStorageInterface, validate *validator.Validate, logger *zap.Logger) *Verifier {
	return &Verifier{storage: storage, validate: validate, logger: logger}
}

// Verify возвращает фактические количества записей. Ошибка оборачивает
// ErrArtifactMismatch, если хоть одно правило нарушено.
func (v *Verifier) Verify(want Counts) (*Counts, error) {
	branchesFile, err := v.storage.Open(constants.BranchFileName)
	if err != nil {
		return nil, err
	}
	branches, err := ReadBranchesCSV(branchesFile)
	branchesFile.Close()
	if err != nil {
		return nil, err
	}

	salesFile, err := v.storage.Open(constants.SalesFileName)
	if err != nil {
		return nil, err
	}
	sales, err := ReadSalesXLSX(salesFile)
	salesFile.Close()
	if err != nil {
		return nil, err
	}

	plans, err := v.readPlans()
	if err != nil {
		return nil, err
	}

	got := &Counts{Branches: len(branches), Sales: len(sales), Plans: len(plans)}
	if *got != want {
		return got, fmt.Errorf("%w: количество записей %+v, ожидалось %+v", apperrors.ErrArtifactMismatch, *got, want)
	}

	known := make(map[string]struct{}, len(branches))
	for i, b := range branches {
		if err := v.validate.Struct(b); err != nil {
			return got, mismatch(constants.BranchFileName, i, err)
		}
		if b.BranchID != generators.BranchID(i+1) {
			return got, mismatch(constants.BranchFileName, i, fmt.Errorf("branch_id %s не на своей позиции", b.BranchID))
		}
		known[b.BranchID] = struct{}{}
	}

	for i, s := range sales {
		if err := v.validate.Struct(s); err != nil {
			return got, mismatch(constants.SalesFileName, i, err)
		}
		if _, ok := known[s.BranchID]; !ok {
			return got, mismatch(constants.SalesFileName, i, fmt.Errorf("неизвестный филиал %s", s.BranchID))
		}
	}

	for i, p := range plans {
		if err := v.validate.Struct(p); err != nil {
			return got, mismatch(constants.SalesPlanFileName, i, err)
		}
		if p.BranchID != generators.BranchID(i+1) {
			return got, mismatch(constants.SalesPlanFileName, i, fmt.Errorf("branch_id %s нарушает плотную нумерацию", p.BranchID))
		}
	}

	v.logger.Info("🔍 Артефакты прошли проверку",
		zap.Int("branches", got.Branches),
		zap.Int("sales", got.Sales),
		zap.Int("plans", got.Plans),
	)
	return got, nil
}

func (v *Verifier) readPlans() ([]entities.SalesPlan, error) {
	rc, err := v.storage.Open(constants.SalesPlanFileName)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ReadPlansJSON(rc)
}

func mismatch(fileName string, index int, err error) error {
	return fmt.Errorf("%w: %s запись %d: %v", apperrors.ErrArtifactMismatch, fileName, index+1, err)
}
