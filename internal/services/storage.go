package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/skillup-platform/skillup-backend/internal/platform/logger"
)

// StorageService persists uploaded files. The local implementation writes
// under a base directory keyed by the stored (not original) file name.
type StorageService interface {
	Save(fileName string, r io.Reader) (string, int64, error)
	Open(path string) (io.ReadSeekCloser, error)
	Delete(path string) error
}

type localStorage struct {
	baseDir string
	log     *logger.Logger
}

func NewLocalStorage(baseDir string, log *logger.Logger) (StorageService, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("storage base dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %q: %w", baseDir, err)
	}
	return &localStorage{
		baseDir: baseDir,
		log:     log.With("service", "StorageService"),
	}, nil
}

func (s *localStorage) Save(fileName string, r io.Reader) (string, int64, error) {
	clean := filepath.Base(fileName)
	if clean == "." || clean == string(filepath.Separator) {
		return "", 0, fmt.Errorf("invalid file name %q", fileName)
	}
	dst := filepath.Join(s.baseDir, clean)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create %q: %w", dst, err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return "", 0, fmt.Errorf("write %q: %w", dst, err)
	}
	return dst, n, nil
}

func (s *localStorage) Open(path string) (io.ReadSeekCloser, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(abs, base+string(filepath.Separator)) {
		return nil, fmt.Errorf("path %q escapes storage dir", path)
	}
	return os.Open(abs)
}

func (s *localStorage) Delete(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", path, err)
	}
	return nil
}
