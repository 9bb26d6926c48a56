package media

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "catalog-service/pkg/errors"

	"github.com/google/uuid"
)

// URLPrefix is the public path uploaded files are served under
const URLPrefix = "/uploads"

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// Store keeps uploaded images on local disk
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are written to
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded file under a generated name and returns its public URL
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if !isImage(file) {
		return "", apperrors.Invalid("unsupported image type: %s", file.Filename)
	}

	name := uuid.NewString() + "-" + sanitize(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close upload: %w", err)
	}

	return URLPrefix + "/" + name, nil
}

// Remove deletes a file previously returned by Save.
// URLs outside the upload prefix and already-missing files are ignored.
func (s *Store) Remove(url string) error {
	if !strings.HasPrefix(url, URLPrefix+"/") {
		return nil
	}
	name := path.Base(strings.TrimPrefix(url, URLPrefix+"/"))
	if name == "." || name == "/" || name == ".." {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

func isImage(file *multipart.FileHeader) bool {
	if strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return true
	}
	return imageExtensions[strings.ToLower(filepath.Ext(file.Filename))]
}

func sanitize(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == '\\' || r < 32:
			return -1
		}
		return r
	}, base)
	if base == "" || base == "." || base == ".." {
		return "upload"
	}
	return base
}
