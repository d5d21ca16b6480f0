package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"bluearc/internal/storage"
)

// FileStorage интерфейс для чтения медиафайлов сайта
type FileStorage interface {
	Stat(ctx context.Context, relativePath string) (fs.FileInfo, error)
	GetFullPath(relativePath string) string
	GetBaseDir() string
}

// LocalFileStorage реализация для локальной файловой системы
type LocalFileStorage struct {
	baseDir string // Базовый каталог с медиа (например: "./public")
}

func NewLocalFileStorage(baseDir string) (*LocalFileStorage, error) {
	// Создаем директорию, если она не существует
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
	}, nil
}

// Stat возвращает информацию о файле относительно корня хранилища.
// Пути, выходящие за пределы корня, отклоняются.
func (s *LocalFileStorage) Stat(ctx context.Context, relativePath string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, part := range strings.Split(filepath.ToSlash(relativePath), "/") {
		if part == ".." {
			return nil, fmt.Errorf("%s: %w", relativePath, storage.ErrOutsideRoot)
		}
	}

	info, err := os.Stat(s.GetFullPath(relativePath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", relativePath, storage.ErrFileNotFound)
		}
		return nil, err
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", relativePath, storage.ErrFileNotFound)
	}

	return info, nil
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, filepath.Clean("/"+filepath.FromSlash(relativePath)))
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
