package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/hardware-storefront/internal/configurator"
	"github.com/yourusername/hardware-storefront/internal/domain/entity"
	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// WizardState wizard holati va joriy qadam uchun nomzodlar
type WizardState struct {
	ID string `json:"id"`
	configurator.Snapshot
	Candidates []entity.HardwareItem `json:"candidates"`
}

// ExtraAction extras bosqichidagi amal
type ExtraAction struct {
	ItemID string                  `json:"itemId,omitempty"`
	Remove entity.HardwareCategory `json:"remove,omitempty"`
	Finish bool                    `json:"finish,omitempty"`
}

// BuilderUseCase PC konfigurator
type BuilderUseCase interface {
	// Generate budjet bo'yicha avtomatik yig'ish
	Generate(ctx context.Context, budget float64, t entity.ConfigurationType) (*configurator.Allocation, error)

	// Compatible tanlanganlarga mos qismlar; selected kategoriya -> item ID
	Compatible(ctx context.Context, category entity.HardwareCategory, selected map[entity.HardwareCategory]string) ([]entity.HardwareItem, error)

	StartWizard(ctx context.Context, t entity.ConfigurationType) (*WizardState, error)
	Wizard(ctx context.Context, id string) (*WizardState, error)

	// SelectInWizard joriy qadam yoki extras bosqichi uchun tanlash
	SelectInWizard(ctx context.Context, id, itemID string) (*WizardState, error)
	GoToStep(ctx context.Context, id string, step int) (*WizardState, error)
	Deselect(ctx context.Context, id string, category entity.HardwareCategory) (*WizardState, error)
	Extras(ctx context.Context, id string, action ExtraAction) (*WizardState, error)
	CloseWizard(ctx context.Context, id string) error

	// SaveWizard tugallangan wizardni mahsulot sifatida saqlash
	SaveWizard(ctx context.Context, id string, overrides ProductOverrides) (*entity.Product, error)

	// PurgeWizards idle dan ortiq ishlatilmagan wizardlarni yopish
	PurgeWizards(idle time.Duration) int
}

type wizardSession struct {
	mu       sync.Mutex
	wizard   *configurator.Wizard
	lastUsed time.Time
}

type builderUseCase struct {
	hardware repository.HardwareRepository
	products ProductUseCase

	mu      sync.Mutex
	wizards map[string]*wizardSession
	now     func() time.Time
}

// NewBuilderUseCase yangi BuilderUseCase yaratish
func NewBuilderUseCase(hardware repository.HardwareRepository, products ProductUseCase) BuilderUseCase {
	return &builderUseCase{
		hardware: hardware,
		products: products,
		wizards:  make(map[string]*wizardSession),
		now:      time.Now,
	}
}

func (u *builderUseCase) catalog(ctx context.Context) (map[entity.HardwareCategory][]entity.HardwareItem, error) {
	items, err := u.hardware.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load hardware: %w", err)
	}
	catalog := make(map[entity.HardwareCategory][]entity.HardwareItem)
	for _, item := range items {
		catalog[item.Category] = append(catalog[item.Category], item)
	}
	return catalog, nil
}

// Generate budjet bo'yicha avtomatik yig'ish
func (u *builderUseCase) Generate(ctx context.Context, budget float64, t entity.ConfigurationType) (*configurator.Allocation, error) {
	catalog, err := u.catalog(ctx)
	if err != nil {
		return nil, err
	}
	allocation, err := configurator.Allocate(budget, t, catalog)
	if err != nil {
		return nil, builderError(err)
	}
	return allocation, nil
}

// Compatible tanlanganlarga mos qismlar
func (u *builderUseCase) Compatible(ctx context.Context, category entity.HardwareCategory, selected map[entity.HardwareCategory]string) ([]entity.HardwareItem, error) {
	if !category.Valid() {
		return nil, invalidf("unknown hardware category %q", category)
	}

	chosen := make(map[entity.HardwareCategory]entity.HardwareItem, len(selected))
	for key, itemID := range selected {
		if itemID == "" {
			continue
		}
		item, err := u.hardware.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item.Category != key {
			return nil, invalidf("item %s is %s, not %s", itemID, item.Category, key)
		}
		chosen[key] = *item
	}

	items, err := u.hardware.List(ctx, category)
	if err != nil {
		return nil, err
	}
	return configurator.FilterCompatible(category, items, chosen), nil
}

// StartWizard yangi wizard sessiyasi
func (u *builderUseCase) StartWizard(ctx context.Context, t entity.ConfigurationType) (*WizardState, error) {
	w, err := configurator.NewWizard(t)
	if err != nil {
		return nil, builderError(err)
	}

	id := uuid.New().String()
	session := &wizardSession{wizard: w, lastUsed: u.now()}

	u.mu.Lock()
	u.wizards[id] = session
	u.mu.Unlock()

	session.mu.Lock()
	defer session.mu.Unlock()
	return u.state(ctx, id, w)
}

// Wizard joriy holat
func (u *builderUseCase) Wizard(ctx context.Context, id string) (*WizardState, error) {
	return u.withWizard(ctx, id, func(*configurator.Wizard) error { return nil })
}

// SelectInWizard joriy qadam yoki extras uchun tanlash
func (u *builderUseCase) SelectInWizard(ctx context.Context, id, itemID string) (*WizardState, error) {
	item, err := u.hardware.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return u.withWizard(ctx, id, func(w *configurator.Wizard) error {
		if w.Phase() == configurator.PhaseExtras {
			return w.SelectExtra(*item)
		}
		return w.Select(*item)
	})
}

// GoToStep oldingi qadamga qaytish; keyingi tanlovlar saqlanib qoladi
func (u *builderUseCase) GoToStep(ctx context.Context, id string, step int) (*WizardState, error) {
	return u.withWizard(ctx, id, func(w *configurator.Wizard) error {
		return w.GoTo(step)
	})
}

// Deselect kategoriyadagi tanlovni olib tashlash
func (u *builderUseCase) Deselect(ctx context.Context, id string, category entity.HardwareCategory) (*WizardState, error) {
	if !category.Valid() {
		return nil, invalidf("unknown hardware category %q", category)
	}
	return u.withWizard(ctx, id, func(w *configurator.Wizard) error {
		w.Deselect(category)
		return nil
	})
}

// Extras peripheral qo'shish, olib tashlash yoki bosqichni yakunlash
func (u *builderUseCase) Extras(ctx context.Context, id string, action ExtraAction) (*WizardState, error) {
	var item *entity.HardwareItem
	if action.ItemID != "" {
		found, err := u.hardware.GetByID(ctx, action.ItemID)
		if err != nil {
			return nil, err
		}
		item = found
	}

	return u.withWizard(ctx, id, func(w *configurator.Wizard) error {
		switch {
		case item != nil:
			if err := w.SelectExtra(*item); err != nil {
				return err
			}
		case action.Remove != "":
			if err := w.RemoveExtra(action.Remove); err != nil {
				return err
			}
		case !action.Finish:
			return invalidf("extras action needs itemId, remove or finish")
		}
		if action.Finish {
			return w.FinishExtras()
		}
		return nil
	})
}

// CloseWizard sessiyani yopish
func (u *builderUseCase) CloseWizard(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.wizards[id]; !ok {
		return fmt.Errorf("wizard %s: %w", id, repository.ErrNotFound)
	}
	delete(u.wizards, id)
	return nil
}

// SaveWizard tugallangan wizardni mahsulot sifatida saqlash
func (u *builderUseCase) SaveWizard(ctx context.Context, id string, overrides ProductOverrides) (*entity.Product, error) {
	session, err := u.session(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	if !session.wizard.IsComplete() {
		session.mu.Unlock()
		return nil, invalidf("wizard is not complete")
	}
	cfg := session.wizard.Configuration()
	session.lastUsed = u.now()
	session.mu.Unlock()

	return u.products.SaveConfiguration(ctx, cfg, overrides)
}

// PurgeWizards idle dan ortiq ishlatilmagan wizardlarni yopish
func (u *builderUseCase) PurgeWizards(idle time.Duration) int {
	cutoff := u.now().Add(-idle)

	u.mu.Lock()
	defer u.mu.Unlock()
	purged := 0
	for id, session := range u.wizards {
		session.mu.Lock()
		stale := session.lastUsed.Before(cutoff)
		session.mu.Unlock()
		if stale {
			delete(u.wizards, id)
			purged++
		}
	}
	return purged
}

func (u *builderUseCase) session(id string) (*wizardSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	session, ok := u.wizards[id]
	if !ok {
		return nil, fmt.Errorf("wizard %s: %w", id, repository.ErrNotFound)
	}
	return session, nil
}

func (u *builderUseCase) withWizard(ctx context.Context, id string, fn func(*configurator.Wizard) error) (*WizardState, error) {
	session, err := u.session(id)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.lastUsed = u.now()

	if err := fn(session.wizard); err != nil {
		return nil, builderError(err)
	}
	return u.state(ctx, id, session.wizard)
}

func (u *builderUseCase) state(ctx context.Context, id string, w *configurator.Wizard) (*WizardState, error) {
	state := &WizardState{
		ID:         id,
		Snapshot:   w.Snapshot(),
		Candidates: []entity.HardwareItem{},
	}

	var categories []entity.HardwareCategory
	switch w.Phase() {
	case configurator.PhaseComponents:
		categories = []entity.HardwareCategory{w.CurrentCategory()}
	case configurator.PhaseExtras:
		categories = entity.PeripheralCategories()
	}

	cfg := w.Configuration()
	for _, category := range categories {
		items, err := u.hardware.List(ctx, category)
		if err != nil {
			return nil, err
		}
		if w.Phase() == configurator.PhaseComponents {
			items = w.Candidates(items)
		} else {
			items = configurator.FilterCompatible(category, items, cfg.Selected)
		}
		state.Candidates = append(state.Candidates, items...)
	}
	return state, nil
}

// builderError configurator xatolarini ErrInvalid ga o'rash
func builderError(err error) error {
	switch {
	case errors.Is(err, configurator.ErrWrongCategory),
		errors.Is(err, configurator.ErrStepOutOfRange),
		errors.Is(err, configurator.ErrNotExtrasPhase),
		errors.Is(err, configurator.ErrUnknownConfigurationType),
		errors.Is(err, configurator.ErrInvalidBudget):
		return fmt.Errorf("%w: %w", repository.ErrInvalid, err)
	}
	return err
}
