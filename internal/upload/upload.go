// Package upload stores multipart file uploads under a public asset root and
// hands back the stored file's path relative to that root.
package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrFileTooLarge is reported when the upload exceeds the size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidUpload covers every other parse failure.
	ErrInvalidUpload = errors.New("invalid upload")
)

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
}

// Storage saves uploaded files on the local filesystem.
type Storage struct {
	root    string
	maxSize int64
}

// NewStorage builds a Storage rooted at root, rejecting files over maxSize
// bytes.
func NewStorage(root string, maxSize int64) *Storage {
	return &Storage{root: root, maxSize: maxSize}
}

// SaveProfileImage extracts the "image" form file from r and stores it under
// <root>/images with a generated name. It returns the stored path relative
// to the root, always with forward slashes no matter the host platform.
func (s *Storage) SaveProfileImage(r *http.Request) (string, error) {
	if r.ContentLength > s.maxSize {
		return "", ErrFileTooLarge
	}
	r.Body = http.MaxBytesReader(nil, r.Body, s.maxSize)
	if err := r.ParseMultipartForm(s.maxSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", ErrFileTooLarge
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUpload, err)
	}
	defer file.Close()

	if header.Size > s.maxSize {
		return "", ErrFileTooLarge
	}
	if ct := header.Header.Get("Content-Type"); ct != "" && !allowedTypes[ct] {
		return "", fmt.Errorf("%w: content type %s not allowed", ErrInvalidUpload, ct)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(header.Filename))
	dir := filepath.Join(s.root, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	return RelativePath(s.root, filepath.Join(dir, name)), nil
}

// RelativePath rewrites stored as a forward-slash path relative to root.
// Both arguments may use either separator convention; equivalent inputs
// yield an identical result.
func RelativePath(root, stored string) string {
	root = filepath.FromSlash(strings.ReplaceAll(root, `\`, "/"))
	stored = filepath.FromSlash(strings.ReplaceAll(stored, `\`, "/"))

	rel, err := filepath.Rel(root, stored)
	if err != nil {
		rel = stored
	}
	return filepath.ToSlash(rel)
}
