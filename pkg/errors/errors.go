package errors

import "fmt"

var (
	// Генерация
	ErrEmptyBranchPool = fmt.Errorf("пул филиалов пуст, продажи не на что ссылать")

	// Файловая система
	ErrOutputDir = fmt.Errorf("путь для выходных файлов не является директорией")

	// Проверка артефактов
	ErrArtifactMismatch = fmt.Errorf("артефакт не соответствует ожидаемому формату")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
