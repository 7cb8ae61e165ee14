package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"airline-datagen/generators"
	"airline-datagen/internal/importers"
	"airline-datagen/pkg/config"
	"airline-datagen/pkg/customvalidator"
	"airline-datagen/pkg/filestorage"
	applogger "airline-datagen/pkg/logger"
)

func main() {
	// Без аргументов всё берётся из окружения/.env; флаги лишь переопределяют.
	seed := flag.Uint64("seed", 0, "Зерно генератора случайных чисел (по умолчанию DATAGEN_SEED или 42)")
	outDir := flag.String("out", "", "Директория для файлов (по умолчанию DATAGEN_OUTPUT_DIR или data)")
	verify := flag.Bool("verify", false, "После генерации перечитать файлы и проверить их")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("❌ Ошибка чтения конфигурации: %v", err)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Generator.Seed = *seed
		case "out":
			cfg.Storage.OutputDir = *outDir
		}
	})

	v := customvalidator.New()
	if err := cfg.Validate(v); err != nil {
		log.Fatalf("❌ %v", err)
	}

	baseLogger, err := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		log.Fatalf("❌ Не удалось создать логгер: %v", err)
	}
	defer baseLogger.Sync()
	logger := baseLogger.With(zap.String("run_id", uuid.New().String()))

	logger.Info("======================================================")
	logger.Info("   ✈️  Генерация тестовых данных для анализа авиакомпаний")
	logger.Info("======================================================")

	result, err := generators.NewGenerator(cfg, v, logger).Run(context.Background())
	if err != nil {
		logger.Fatal("❌ Ошибка генерации данных", zap.Error(err))
	}

	logger.Info("======================================================")
	logger.Info("Сгенерировано записей",
		zap.Int("branch.csv", len(result.Branches)),
		zap.Int("sales.xlsx", len(result.Sales)),
		zap.Int("sales_plan.json", len(result.Plans)),
	)
	logger.Info("Все файлы сохранены", zap.String("dir", cfg.Storage.OutputDir))

	if *verify {
		storage, err := filestorage.NewLocalFileStorage(cfg.Storage.OutputDir)
		if err != nil {
			logger.Fatal("❌ Директория с артефактами недоступна", zap.Error(err))
		}
		want := importers.Counts{
			Branches: cfg.Generator.Branches,
			Sales:    cfg.Generator.Sales,
			Plans:    cfg.Generator.Plans,
		}
		if _, err := importers.NewVerifier(storage, v, logger).Verify(want); err != nil {
			logger.Fatal("❌ Артефакты не прошли проверку", zap.Error(err))
		}
	}
	logger.Info("======================================================")
}
