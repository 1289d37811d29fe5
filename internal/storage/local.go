package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage implements Storage on the local filesystem.
type LocalStorage struct {
	basePath string
	baseURL  string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./uploads"
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/uploads"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{
		basePath: cfg.BasePath,
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// BasePath returns the directory files are written to, for static serving.
func (s *LocalStorage) BasePath() string { return s.basePath }

func (s *LocalStorage) Save(ctx context.Context, originalName string, reader io.Reader) (string, error) {
	name := fmt.Sprintf("%s-%s", uuid.NewString(), sanitizeName(originalName))
	fullPath := filepath.Join(s.basePath, name)

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

func (s *LocalStorage) Delete(ctx context.Context, urlPath string) error {
	if err := os.Remove(s.localPath(urlPath)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (s *LocalStorage) localPath(urlPath string) string {
	name := strings.TrimPrefix(urlPath, s.baseURL+"/")
	return filepath.Join(s.basePath, filepath.Base(name))
}

// sanitizeName strips path separators and spaces from a client-supplied
// file name.
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "file"
	}
	return name
}
