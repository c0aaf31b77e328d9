package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"herbverse/internal/config"
	"herbverse/internal/models/response_models"
	"herbverse/pkg/utils"
)

const (
	BucketImages = "images"
	BucketModels = "models"

	MediaTypeGLB = "model/gltf-binary"

	// UploadURLPrefix is where the router serves the upload directory.
	UploadURLPrefix = "/uploads"
)

type UploadServiceInterface interface {
	// Accept stores one file. size may be -1 when the caller does not know it.
	Accept(ctx context.Context, r io.Reader, size int64, mediaType, originalName string) (*response_models.UploadResponse, error)
	EnsureDirs() error
}

type UploadService struct {
	root     string
	maxBytes int64
	now      func() time.Time
	logger   *zap.SugaredLogger
}

func NewUploadService(cfg *config.Config, logger *zap.SugaredLogger) UploadServiceInterface {
	return &UploadService{
		root:     cfg.UploadDir,
		maxBytes: cfg.UploadMaxBytes,
		now:      time.Now,
		logger:   logger,
	}
}

// bucketFor picks the storage bucket for a declared media type. Parameters
// such as charset are ignored.
func bucketFor(mediaType string) (string, error) {
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return "", utils.ErrUnsupportedMediaType
	}
	switch {
	case strings.HasPrefix(mt, "image/"):
		return BucketImages, nil
	case mt == MediaTypeGLB:
		return BucketModels, nil
	default:
		return "", utils.ErrUnsupportedMediaType
	}
}

func (u *UploadService) EnsureDirs() error {
	for _, bucket := range []string{BucketImages, BucketModels} {
		if err := os.MkdirAll(filepath.Join(u.root, bucket), 0755); err != nil {
			return errors.Wrapf(err, "create upload dir %s", bucket)
		}
	}
	return nil
}

// create opens a fresh file named after the current nanosecond timestamp.
// A name collision moves on to the next nanosecond.
func (u *UploadService) create(dir, ext string) (*os.File, string, error) {
	stamp := u.now().UnixNano()
	for attempt := 0; attempt < 8; attempt++ {
		name := strconv.FormatInt(stamp+int64(attempt), 10) + ext
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, name, nil
		}
		if !os.IsExist(err) {
			return nil, "", errors.Wrap(err, "create upload file")
		}
	}
	return nil, "", errors.New("could not allocate upload file name")
}

func (u *UploadService) Accept(ctx context.Context, r io.Reader, size int64, mediaType, originalName string) (*response_models.UploadResponse, error) {
	if r == nil {
		return nil, utils.ErrNoFile
	}
	bucket, err := bucketFor(mediaType)
	if err != nil {
		return nil, err
	}
	if size > u.maxBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", utils.ErrValidation, u.maxBytes)
	}

	dir := filepath.Join(u.root, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		u.logger.Errorw("create upload dir", "dir", dir, "error", err)
		return nil, errors.Wrap(err, "create upload dir")
	}

	f, name, err := u.create(dir, strings.ToLower(filepath.Ext(originalName)))
	if err != nil {
		u.logger.Errorw("create upload file", "error", err)
		return nil, err
	}
	path := f.Name()

	// Read one byte past the limit to detect oversized bodies of unknown size.
	written, copyErr := io.Copy(f, io.LimitReader(r, u.maxBytes+1))
	closeErr := f.Close()
	switch {
	case copyErr != nil:
		_ = os.Remove(path)
		u.logger.Errorw("write upload", "path", path, "error", copyErr)
		return nil, errors.Wrap(copyErr, "write upload")
	case written > u.maxBytes:
		_ = os.Remove(path)
		return nil, fmt.Errorf("%w: file exceeds %d bytes", utils.ErrValidation, u.maxBytes)
	case closeErr != nil:
		_ = os.Remove(path)
		u.logger.Errorw("close upload", "path", path, "error", closeErr)
		return nil, errors.Wrap(closeErr, "close upload")
	}

	u.logger.Infow("file uploaded", "bucket", bucket, "name", name, "bytes", written)
	return &response_models.UploadResponse{
		FileURL: UploadURLPrefix + "/" + bucket + "/" + name,
	}, nil
}
