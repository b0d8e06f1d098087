package usecase

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

const (
	uploadConcurrency = 4
	maxImageWidth     = 1600
	jpegQuality       = 82
)

// UploadFile yuklanayotgan fayl
type UploadFile struct {
	Name string
	Data []byte
}

// UploadResult yuklash natijasi. Media kiritilgan fayllar tartibida,
// muvaffaqiyatsizlari tashlab ketiladi.
type UploadResult struct {
	Media []entity.Media `json:"media"`
	BulkResult
}

// MediaUseCase rasm va videolarni saqlash
type MediaUseCase interface {
	Upload(ctx context.Context, files []UploadFile) (*UploadResult, error)
}

type mediaUseCase struct {
	dir     string
	baseURL string
}

// NewMediaUseCase dir ga yozadi, URL lar baseURL ostida qaytariladi
func NewMediaUseCase(dir, baseURL string) MediaUseCase {
	return &mediaUseCase{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload processes files concurrently. Each file succeeds or fails on its own.
func (u *mediaUseCase) Upload(ctx context.Context, files []UploadFile) (*UploadResult, error) {
	if len(files) == 0 {
		return nil, invalidf("no files uploaded")
	}
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media dir: %w", err)
	}

	media := make([]*entity.Media, len(files))
	errs := make([]error, len(files))
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uploadConcurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			m, err := u.store(file)
			if err != nil {
				errs[i] = err
				return nil
			}
			media[i] = m
			zap.S().Debugw("media stored",
				"file", file.Name,
				"url", m.URL,
				"done", done.Add(1),
				"total", len(files))
			return nil
		})
	}
	_ = g.Wait()

	result := &UploadResult{Media: []entity.Media{}}
	for i, m := range media {
		if errs[i] != nil {
			result.fail(files[i].Name, errs[i])
			continue
		}
		result.Media = append(result.Media, *m)
		result.ok()
	}
	return result, nil
}

func (u *mediaUseCase) store(file UploadFile) (*entity.Media, error) {
	if len(file.Data) == 0 {
		return nil, invalidf("file is empty")
	}

	contentType := http.DetectContentType(file.Data)
	name := uuid.New().String()

	switch contentType {
	case "image/jpeg", "image/png":
		data, err := reencode(file.Data)
		if err != nil {
			return nil, err
		}
		return u.write(name+".jpg", data, entity.MediaImage)
	}

	ext := strings.ToLower(filepath.Ext(file.Name))
	kind, ok := mediaExts[ext]
	if !ok || strings.HasPrefix(contentType, "text/html") {
		return nil, invalidf("unsupported file type %q", ext)
	}
	return u.write(name+ext, file.Data, kind)
}

func (u *mediaUseCase) write(name string, data []byte, kind entity.MediaType) (*entity.Media, error) {
	if err := os.WriteFile(filepath.Join(u.dir, name), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}
	return &entity.Media{Type: kind, URL: u.baseURL + "/" + name}, nil
}

// reencode decodes a JPEG/PNG, scales it down to maxImageWidth and writes JPEG.
func reencode(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, invalidf("cannot decode image: %v", err)
	}

	img := src
	bounds := src.Bounds()
	if bounds.Dx() > maxImageWidth {
		height := bounds.Dy() * maxImageWidth / bounds.Dx()
		if height < 1 {
			height = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// mediaExts as-is saqlanadigan fayl turlari; JPEG/PNG yuqorida qayta kodlanadi
var mediaExts = map[string]entity.MediaType{
	".gif":  entity.MediaImage,
	".webp": entity.MediaImage,
	".mp4":  entity.MediaVideo,
	".webm": entity.MediaVideo,
	".mov":  entity.MediaVideo,
	".m4v":  entity.MediaVideo,
}
