package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/somap/somap-backend/pkg/logger"
)

var (
	ErrInvalidFileType = errors.New("solo se permiten imágenes jpeg, jpg o png")
	ErrFileTooLarge    = errors.New("el archivo excede el tamaño máximo permitido")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
}

// LocalStorage saves uploaded images on the local disk under dir and
// serves them from urlPrefix.
type LocalStorage struct {
	dir       string
	urlPrefix string
	maxSize   int64
}

func NewLocalStorage(dir, urlPrefix string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStorage{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		maxSize:   maxSize,
	}, nil
}

// Save validates and stores the uploaded file under a random name,
// returning the public URL path.
func (s *LocalStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > s.maxSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", ErrInvalidFileType
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening uploaded file: %w", err)
	}
	defer src.Close()

	filename := uuid.NewString() + ext
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing file: %w", err)
	}

	logger.Info("Image stored", map[string]interface{}{
		"filename": filename,
		"size":     fileHeader.Size,
	})
	return s.urlPrefix + "/" + filename, nil
}

// Delete removes the file backing a URL produced by Save. A missing
// file is not an error; the row is already gone.
func (s *LocalStorage) Delete(url string) error {
	filename := filepath.Base(url)
	path := filepath.Join(s.dir, filename)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logger.Warn("Failed to remove image file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// Dir returns the directory served as static uploads.
func (s *LocalStorage) Dir() string {
	return s.dir
}
