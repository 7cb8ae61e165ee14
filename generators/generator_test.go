package generators_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"airline-datagen/generators"
	"airline-datagen/internal/importers"
	"airline-datagen/pkg/config"
	"airline-datagen/pkg/constants"
	"airline-datagen/pkg/customvalidator"
	apperrors "airline-datagen/pkg/errors"
	"airline-datagen/pkg/filestorage"
)

func testConfig(dir string, seed uint64, count int) *config.Config {
	return &config.Config{
		Generator: config.GeneratorConfig{Seed: seed, Branches: count, Sales: count, Plans: count},
		Storage:   config.StorageConfig{OutputDir: dir},
		Log:       config.LogConfig{Level: "info"},
	}
}

func runGenerator(t *testing.T, cfg *config.Config) *generators.Result {
	t.Helper()
	result, err := generators.NewGenerator(cfg, customvalidator.New(), zap.NewNop()).Run(context.Background())
	require.NoError(t, err)
	return result
}

func TestGenerator_Run_Default(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	result := runGenerator(t, testConfig(dir, 42, 1000))

	assert.Len(t, result.Branches, 1000)
	assert.Len(t, result.Sales, 1000)
	assert.Len(t, result.Plans, 1000)
	assert.Equal(t, filepath.Join(dir, constants.BranchFileName), result.BranchesPath)
	assert.Equal(t, filepath.Join(dir, constants.SalesFileName), result.SalesPath)
	assert.Equal(t, filepath.Join(dir, constants.SalesPlanFileName), result.PlansPath)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"branch.csv", "sales.xlsx", "sales_plan.json"}, names)

	storage, err := filestorage.NewLocalFileStorage(dir)
	require.NoError(t, err)
	got, err := importers.NewVerifier(storage, customvalidator.New(), zap.NewNop()).
		Verify(importers.Counts{Branches: 1000, Sales: 1000, Plans: 1000})
	require.NoError(t, err)
	assert.Equal(t, &importers.Counts{Branches: 1000, Sales: 1000, Plans: 1000}, got)
}

func TestGenerator_Run_ZeroCounts(t *testing.T) {
	dir := t.TempDir()
	result := runGenerator(t, testConfig(dir, 42, 0))

	assert.Empty(t, result.Branches)
	assert.Empty(t, result.Sales)
	assert.Empty(t, result.Plans)

	csvContent, err := os.ReadFile(result.BranchesPath)
	require.NoError(t, err)
	assert.Equal(t, "branch_id,city,employees_count\n", string(csvContent))

	jsonContent, err := os.ReadFile(result.PlansPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(jsonContent))

	salesFile, err := os.Open(result.SalesPath)
	require.NoError(t, err)
	defer salesFile.Close()
	sales, err := importers.ReadSalesXLSX(salesFile)
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestGenerator_Run_Reproducible(t *testing.T) {
	first := runGenerator(t, testConfig(t.TempDir(), 42, 200))
	second := runGenerator(t, testConfig(t.TempDir(), 42, 200))

	assert.Equal(t, first.Branches, second.Branches)
	assert.Equal(t, first.Sales, second.Sales)
	assert.Equal(t, first.Plans, second.Plans)

	for _, paths := range [][2]string{
		{first.BranchesPath, second.BranchesPath},
		{first.PlansPath, second.PlansPath},
	} {
		a, err := os.ReadFile(paths[0])
		require.NoError(t, err)
		b, err := os.ReadFile(paths[1])
		require.NoError(t, err)
		assert.Equal(t, a, b, "файлы %s должны совпадать побайтно", filepath.Base(paths[0]))
	}
}

func TestGenerator_Run_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	runGenerator(t, testConfig(dir, 1, 10))
	result := runGenerator(t, testConfig(dir, 2, 10))

	// Второй запуск перезаписывает файлы
	branchesFile, err := os.Open(result.BranchesPath)
	require.NoError(t, err)
	defer branchesFile.Close()
	branches, err := importers.ReadBranchesCSV(branchesFile)
	require.NoError(t, err)
	assert.Equal(t, result.Branches, branches)
}

func TestGenerator_Run_OutputIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "data")
	require.NoError(t, os.WriteFile(file, []byte("занято"), 0o644))

	_, err := generators.NewGenerator(testConfig(file, 42, 10), customvalidator.New(), zap.NewNop()).Run(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrOutputDir)
}

func TestGenerator_Run_EmptyPoolKeepsBranchFile(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir, 42, 0)
	cfg.Generator.Sales = 5

	result, err := generators.NewGenerator(cfg, customvalidator.New(), zap.NewNop()).Run(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrEmptyBranchPool)

	// Отката нет: branch.csv уже на диске, дальше генерация не пошла
	require.NotNil(t, result)
	assert.FileExists(t, filepath.Join(dir, constants.BranchFileName))
	assert.NoFileExists(t, filepath.Join(dir, constants.SalesFileName))
	assert.NoFileExists(t, filepath.Join(dir, constants.SalesPlanFileName))
}

func TestGenerator_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := generators.NewGenerator(testConfig(t.TempDir(), 42, 10), customvalidator.New(), zap.NewNop()).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
