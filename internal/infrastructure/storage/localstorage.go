package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"marketplace/internal/shared/errors"
	"marketplace/internal/shared/logger"
)

type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

const (
	MaxImageSize = 5 << 20
	MaxPDFSize   = 20 << 20

	// PublicPrefix is the route the upload directory is served under.
	PublicPrefix = "/uploads"
)

var allowedTypes = map[Kind]map[string]string{
	KindImage: {
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	},
	KindPDF: {
		"application/pdf": ".pdf",
	},
}

var maxSizes = map[Kind]int64{
	KindImage: MaxImageSize,
	KindPDF:   MaxPDFSize,
}

// LocalStorage writes uploads to a directory served by the HTTP server.
type LocalStorage struct {
	dir           string
	publicBaseURL string
	logger        logger.Interface
}

func NewLocalStorage(dir, publicBaseURL string, logger logger.Interface) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save validates size and sniffed content type, stores the file under a
// random name and returns its public URL.
func (s *LocalStorage) Save(ctx context.Context, fh *multipart.FileHeader, kind Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	limit, ok := maxSizes[kind]
	if !ok {
		return "", fmt.Errorf("unknown upload kind %q", kind)
	}
	if fh.Size > limit {
		return "", errors.NewValidationError(fmt.Sprintf("file is too large, maximum is %dMB", limit>>20))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect upload type: %w", err)
	}
	ext, ok := allowedTypes[kind][baseMIME(mtype.String())]
	if !ok {
		return "", errors.NewValidationError("unsupported file type", mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	name := uuid.NewString() + ext
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, limit+1)); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	s.logger.Infow("file uploaded", "name", name, "kind", kind, "size", fh.Size)
	return s.publicBaseURL + PublicPrefix + "/" + name, nil
}

func baseMIME(m string) string {
	if i := strings.IndexByte(m, ';'); i >= 0 {
		return m[:i]
	}
	return m
}
