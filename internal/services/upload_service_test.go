package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"herbverse/pkg/utils"
)

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestUploadImage(t *testing.T) {
	svc, dir := newTestUploadService(t, 1024)
	svc.now = func() time.Time { return time.Unix(0, 1700000000123456789) }

	resp, err := svc.Accept(context.Background(), strings.NewReader("png-bytes"), 9, "image/png", "leaf.PNG")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/images/1700000000123456789.png", resp.FileURL)

	content, err := os.ReadFile(filepath.Join(dir, "images", "1700000000123456789.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestUploadModel(t *testing.T) {
	svc, dir := newTestUploadService(t, 1024)

	resp, err := svc.Accept(context.Background(), bytes.NewReader([]byte("glTF")), 4, "model/gltf-binary", "tulsi.glb")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(resp.FileURL, "/uploads/models/"))
	assert.True(t, strings.HasSuffix(resp.FileURL, ".glb"))
	assert.Len(t, listFiles(t, filepath.Join(dir, "models")), 1)
}

func TestUploadNameCollision(t *testing.T) {
	svc, dir := newTestUploadService(t, 1024)
	svc.now = func() time.Time { return time.Unix(0, 42) }

	first, err := svc.Accept(context.Background(), strings.NewReader("a"), 1, "image/jpeg", "a.jpg")
	require.NoError(t, err)
	second, err := svc.Accept(context.Background(), strings.NewReader("b"), 1, "image/jpeg", "b.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first.FileURL, second.FileURL)
	assert.Len(t, listFiles(t, dir), 2)
}

func TestUploadRejected(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		size      int64
		body      string
		err       error
	}{
		{"pdf", "application/pdf", 3, "pdf", utils.ErrUnsupportedMediaType},
		{"gltf json", "model/gltf+json", 2, "{}", utils.ErrUnsupportedMediaType},
		{"empty media type", "", 1, "x", utils.ErrUnsupportedMediaType},
		{"declared too large", "image/png", 2048, "x", utils.ErrValidation},
		{"body too large", "image/png", -1, strings.Repeat("x", 1025), utils.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, dir := newTestUploadService(t, 1024)

			_, err := svc.Accept(context.Background(), strings.NewReader(tt.body), tt.size, tt.mediaType, "file.bin")
			assert.ErrorIs(t, err, tt.err)
			assert.Empty(t, listFiles(t, dir))
		})
	}
}

func TestEnsureDirs(t *testing.T) {
	svc, dir := newTestUploadService(t, 1024)
	require.NoError(t, svc.EnsureDirs())

	for _, bucket := range []string{BucketImages, BucketModels} {
		info, err := os.Stat(filepath.Join(dir, bucket))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
