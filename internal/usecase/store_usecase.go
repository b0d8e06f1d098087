package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// StoreUseCase kompaniya, karusel va sozlamalar
type StoreUseCase interface {
	Company(ctx context.Context) (*entity.Company, error)
	UpdateCompany(ctx context.Context, company entity.Company) (*entity.Company, error)

	// Slides karusel; activeOnly faqat faol slaydlar
	Slides(ctx context.Context, activeOnly bool) ([]entity.CarouselSlide, error)
	Slide(ctx context.Context, id string) (*entity.CarouselSlide, error)
	CreateSlide(ctx context.Context, slide entity.CarouselSlide) (*entity.CarouselSlide, error)
	UpdateSlide(ctx context.Context, slide entity.CarouselSlide) (*entity.CarouselSlide, error)
	DeleteSlide(ctx context.Context, id string) error

	// Reorder rewrites positions from the order of ids. Slides not listed
	// keep their relative order after the listed ones.
	Reorder(ctx context.Context, ids []string) ([]entity.CarouselSlide, error)

	Settings(ctx context.Context) (entity.Settings, error)

	// MergeSettings qiymatlarni qo'shish; bo'sh qiymat kalitni o'chiradi
	MergeSettings(ctx context.Context, patch entity.Settings) (entity.Settings, error)
}

type storeUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase yangi StoreUseCase yaratish
func NewStoreUseCase(repo repository.StoreRepository) StoreUseCase {
	return &storeUseCase{repo: repo}
}

func (u *storeUseCase) Company(ctx context.Context) (*entity.Company, error) {
	return u.repo.GetCompany(ctx)
}

// UpdateCompany kompaniya ma'lumotlarini yangilash
func (u *storeUseCase) UpdateCompany(ctx context.Context, company entity.Company) (*entity.Company, error) {
	company.Name = strings.TrimSpace(company.Name)
	if company.Name == "" {
		return nil, invalidf("company name is required")
	}
	if err := u.repo.SaveCompany(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	return &company, nil
}

// Slides karusel ro'yxati
func (u *storeUseCase) Slides(ctx context.Context, activeOnly bool) ([]entity.CarouselSlide, error) {
	slides, err := u.repo.ListSlides(ctx)
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return slides, nil
	}
	out := slides[:0]
	for _, s := range slides {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

func (u *storeUseCase) Slide(ctx context.Context, id string) (*entity.CarouselSlide, error) {
	return u.repo.GetSlide(ctx, id)
}

func prepareSlide(s *entity.CarouselSlide) error {
	s.Title = strings.TrimSpace(s.Title)
	s.ImageURL = strings.TrimSpace(s.ImageURL)
	if s.ImageURL == "" {
		return invalidf("slide image is required")
	}
	return nil
}

// CreateSlide yangi slayd oxiriga qo'shiladi
func (u *storeUseCase) CreateSlide(ctx context.Context, slide entity.CarouselSlide) (*entity.CarouselSlide, error) {
	if err := prepareSlide(&slide); err != nil {
		return nil, err
	}
	slides, err := u.repo.ListSlides(ctx)
	if err != nil {
		return nil, err
	}
	slide.ID = uuid.New().String()
	slide.Position = len(slides)
	if err := u.repo.SaveSlide(ctx, slide); err != nil {
		return nil, fmt.Errorf("failed to save slide: %w", err)
	}
	return &slide, nil
}

// UpdateSlide slaydni yangilash; pozitsiya saqlanadi
func (u *storeUseCase) UpdateSlide(ctx context.Context, slide entity.CarouselSlide) (*entity.CarouselSlide, error) {
	existing, err := u.repo.GetSlide(ctx, slide.ID)
	if err != nil {
		return nil, err
	}
	if err := prepareSlide(&slide); err != nil {
		return nil, err
	}
	slide.Position = existing.Position
	if err := u.repo.SaveSlide(ctx, slide); err != nil {
		return nil, fmt.Errorf("failed to save slide: %w", err)
	}
	return &slide, nil
}

func (u *storeUseCase) DeleteSlide(ctx context.Context, id string) error {
	return u.repo.DeleteSlide(ctx, id)
}

// Reorder drag-and-drop tartibini saqlash
func (u *storeUseCase) Reorder(ctx context.Context, ids []string) ([]entity.CarouselSlide, error) {
	slides, err := u.repo.ListSlides(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entity.CarouselSlide, len(slides))
	for _, s := range slides {
		byID[s.ID] = s
	}

	ids = dedupe(ids)
	ordered := make([]entity.CarouselSlide, 0, len(slides))
	listed := make(map[string]bool, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("slide %s: %w", id, repository.ErrNotFound)
		}
		ordered = append(ordered, s)
		listed[id] = true
	}
	for _, s := range slides {
		if !listed[s.ID] {
			ordered = append(ordered, s)
		}
	}

	for i := range ordered {
		if ordered[i].Position == i {
			continue
		}
		ordered[i].Position = i
		if err := u.repo.SaveSlide(ctx, ordered[i]); err != nil {
			return nil, fmt.Errorf("failed to save slide: %w", err)
		}
	}
	return ordered, nil
}

func (u *storeUseCase) Settings(ctx context.Context) (entity.Settings, error) {
	return u.repo.GetSettings(ctx)
}

// MergeSettings qiymatlarni birlashtirish
func (u *storeUseCase) MergeSettings(ctx context.Context, patch entity.Settings) (entity.Settings, error) {
	current, err := u.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = entity.Settings{}
	}
	for key, value := range patch {
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, invalidf("settings key is empty")
		}
		if value == "" {
			delete(current, key)
			continue
		}
		current[key] = value
	}
	if err := u.repo.SaveSettings(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return current, nil
}
