// pkg/filestorage/local_filestorage.go

package filestorage

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	apperrors "airline-datagen/pkg/errors"
)

type FileStorageInterface interface {
	// Save создаёт (или перезаписывает) файл и отдаёт буферизованный writer в write.
	Save(fileName string, write func(w io.Writer) error) (filePath string, err error)
	Open(fileName string) (io.ReadCloser, error)
	Path(fileName string) string
}

type LocalFileStorage struct {
	basePath string
}

// NewLocalFileStorage гарантирует, что basePath существует. Повторный вызов для
// существующей директории не ошибка.
func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	info, err := os.Stat(basePath)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("не удалось создать директорию: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("не удалось проверить директорию %s: %w", basePath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s", apperrors.ErrOutputDir, basePath)
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Path(fileName string) string {
	return filepath.Join(s.basePath, fileName)
}

func (s *LocalFileStorage) Save(fileName string, write func(w io.Writer) error) (string, error) {
	fullPath := s.Path(fileName)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", err
	}

	buf := bufio.NewWriter(dst)
	if err := write(buf); err != nil {
		dst.Close()
		return "", err
	}
	if err := buf.Flush(); err != nil {
		dst.Close()
		return "", err
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	return fullPath, nil
}

func (s *LocalFileStorage) Open(fileName string) (io.ReadCloser, error) {
	return os.Open(s.Path(fileName))
}
