package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMediaUseCase_UploadMixedFiles(t *testing.T) {
	dir := t.TempDir()
	uc := NewMediaUseCase(dir, "/media/")

	files := []UploadFile{
		{Name: "wide.png", Data: pngBytes(t, 3200, 100)},
		{Name: "small.png", Data: pngBytes(t, 40, 20)},
		{Name: "empty.jpg"},
		{Name: "banner.gif", Data: []byte("GIF89a fake")},
	}

	result, err := uc.Upload(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Media, 3)
	assert.Contains(t, result.Errors[0], "empty.jpg")

	wide := result.Media[0]
	assert.Equal(t, entity.MediaImage, wide.Type)
	assert.True(t, strings.HasPrefix(wide.URL, "/media/"))
	assert.True(t, strings.HasSuffix(wide.URL, ".jpg"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(wide.URL, "/media/")))
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, maxImageWidth, img.Bounds().Dx())
	assert.Equal(t, 50, img.Bounds().Dy())

	small, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(result.Media[1].URL, "/media/")))
	require.NoError(t, err)
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(small))
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Width)

	assert.True(t, strings.HasSuffix(result.Media[2].URL, ".gif"), "gif is stored as-is")
	assert.Equal(t, entity.MediaImage, result.Media[2].Type)
}

func TestMediaUseCase_RejectsUnlistedTypes(t *testing.T) {
	dir := t.TempDir()
	uc := NewMediaUseCase(dir, "/media")

	result, err := uc.Upload(context.Background(), []UploadFile{
		{Name: "page.html", Data: []byte("<html><script>alert(1)</script></html>")},
		{Name: "logo.svg", Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)},
		{Name: "spec.pdf", Data: []byte("%PDF-1.4 fake")},
		{Name: "clip.mp4", Data: []byte("<html>disguised</html>")},
	})
	require.NoError(t, err)
	assert.Zero(t, result.Succeeded)
	assert.Equal(t, 4, result.Failed)
	assert.Empty(t, result.Media)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMediaUseCase_VideoAndEmpty(t *testing.T) {
	uc := NewMediaUseCase(t.TempDir(), "/media")

	result, err := uc.Upload(context.Background(), []UploadFile{{Name: "promo.MP4", Data: []byte("not really a video")}})
	require.NoError(t, err)
	require.Len(t, result.Media, 1)
	assert.Equal(t, entity.MediaVideo, result.Media[0].Type)

	_, err = uc.Upload(context.Background(), nil)
	assert.ErrorIs(t, err, repository.ErrInvalid)
}
