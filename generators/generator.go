package generators

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"airline-datagen/internal/entities"
	"airline-datagen/internal/exporters"
	"airline-datagen/pkg/config"
	"airline-datagen/pkg/constants"
	"airline-datagen/pkg/filestorage"
)

// Result - то, что сгенерировано и куда записано.
type Result struct {
	Branches []entities.Branch
	Sales    []entities.Sale
	Plans    []entities.SalesPlan

	BranchesPath string
	SalesPath    string
	PlansPath    string
}

type Generator struct {
	cfg      *config.Config
	validate *validator.Validate
	logger   *zap.Logger
}

func NewGenerator(cfg *config.Config, validate *validator.Validate, logger *zap.Logger) *Generator {
	return &Generator{cfg: cfg, validate: validate, logger: logger}
}

// Run проходит шаги строго по порядку: директория, филиалы, продажи, планы.
// На первой ошибке запуск прерывается, уже записанные файлы остаются на диске.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	gen := g.cfg.Generator
	g.logger.Info("▶️  Запуск генерации тестовых данных",
		zap.Uint64("seed", gen.Seed),
		zap.Int("branches", gen.Branches),
		zap.Int("sales", gen.Sales),
		zap.Int("plans", gen.Plans),
		zap.String("output_dir", g.cfg.Storage.OutputDir),
	)

	storage, err := filestorage.NewLocalFileStorage(g.cfg.Storage.OutputDir)
	if err != nil {
		return nil, err
	}

	rng := NewRand(gen.Seed)
	result := &Result{}

	// --- branch.csv ---
	if err := ctx.Err(); err != nil {
		return result, err
	}
	result.Branches, err = GenerateBranches(rng, gen.Branches)
	if err != nil {
		return result, fmt.Errorf("генерация филиалов: %w", err)
	}
	result.BranchesPath, err = saveRecords(g, storage, constants.BranchFileName, result.Branches, exporters.WriteBranchesCSV)
	if err != nil {
		return result, err
	}

	// --- sales.xlsx ---
	if err := ctx.Err(); err != nil {
		return result, err
	}
	result.Sales, err = GenerateSales(rng, result.Branches, gen.Sales)
	if err != nil {
		return result, fmt.Errorf("генерация продаж: %w", err)
	}
	result.SalesPath, err = saveRecords(g, storage, constants.SalesFileName, result.Sales, exporters.WriteSalesXLSX)
	if err != nil {
		return result, err
	}

	// --- sales_plan.json ---
	if err := ctx.Err(); err != nil {
		return result, err
	}
	result.Plans, err = GeneratePlans(rng, gen.Plans)
	if err != nil {
		return result, fmt.Errorf("генерация планов продаж: %w", err)
	}
	result.PlansPath, err = saveRecords(g, storage, constants.SalesPlanFileName, result.Plans, exporters.WritePlansJSON)
	if err != nil {
		return result, err
	}

	g.logger.Info("✅ Генерация завершена",
		zap.Int("branch.csv", len(result.Branches)),
		zap.Int("sales.xlsx", len(result.Sales)),
		zap.Int("sales_plan.json", len(result.Plans)),
	)
	return result, nil
}

// saveRecords проверяет каждую запись валидатором и пишет файл через storage.
func saveRecords[T any](g *Generator, storage filestorage.FileStorageInterface, fileName string, records []T, write func(w io.Writer, records []T) error) (string, error) {
	for i := range records {
		if err := g.validate.Struct(records[i]); err != nil {
			return "", fmt.Errorf("запись %d для %s не прошла проверку: %w", i+1, fileName, err)
		}
	}

	path, err := storage.Save(fileName, func(w io.Writer) error {
		return write(w, records)
	})
	if err != nil {
		return "", fmt.Errorf("не удалось записать %s: %w", fileName, err)
	}

	g.logger.Info("✓ Файл создан",
		zap.String("file", fileName),
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return path, nil
}
