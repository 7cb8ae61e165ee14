// Файл: config/config.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"airline-datagen/pkg/constants"
	apperrors "airline-datagen/pkg/errors"
)

// GeneratorConfig задаёт объём генерации и зерно генератора случайных чисел.
// Планы продаж нумеруются тем же плотным диапазоном branch00001..branchN,
// что и филиалы, поэтому их количество обязано совпадать с количеством филиалов.
type GeneratorConfig struct {
	Seed     uint64
	Branches int `validate:"gte=0"`
	Sales    int `validate:"gte=0"`
	Plans    int `validate:"gte=0,eqfield=Branches"`
}

type StorageConfig struct {
	OutputDir string `validate:"required"`
}

type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
	File  string
}

type Config struct {
	Generator GeneratorConfig
	Storage   StorageConfig
	Log       LogConfig
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}

	seed, err := getEnvUint("DATAGEN_SEED", constants.DefaultSeed)
	if err != nil {
		return nil, err
	}
	branches, err := getEnvInt("DATAGEN_BRANCHES", constants.DefaultCount)
	if err != nil {
		return nil, err
	}
	sales, err := getEnvInt("DATAGEN_SALES", constants.DefaultCount)
	if err != nil {
		return nil, err
	}
	plans, err := getEnvInt("DATAGEN_PLANS", constants.DefaultCount)
	if err != nil {
		return nil, err
	}

	return &Config{
		Generator: GeneratorConfig{
			Seed:     seed,
			Branches: branches,
			Sales:    sales,
			Plans:    plans,
		},
		Storage: StorageConfig{
			OutputDir: getEnv("DATAGEN_OUTPUT_DIR", constants.DefaultOutputDir),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}, nil
}

// Validate проверяет диапазоны через validator и связку филиалы/продажи,
// которую тегами не выразить.
func (c *Config) Validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		return apperrors.NewInvalidInputError("некорректная конфигурация: %v", err)
	}
	if c.Generator.Branches == 0 && c.Generator.Sales > 0 {
		return apperrors.NewInvalidInputError("нельзя сгенерировать %d продаж без филиалов", c.Generator.Sales)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("переменная %s должна быть целым числом, получено %q", key, value)
	}
	return n, nil
}

func getEnvUint(key string, fallback uint64) (uint64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback, nil
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, apperrors.NewInvalidInputError("переменная %s должна быть неотрицательным целым, получено %q", key, value)
	}
	return n, nil
}
