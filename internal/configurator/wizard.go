package configurator

import (
	"errors"
	"fmt"

	"github.com/yourusername/hardware-storefront/internal/domain/entity"
)

// Phase wizard bosqichi
type Phase string

const (
	PhaseComponents Phase = "components"
	PhaseExtras     Phase = "extras"
	PhaseDone       Phase = "done"
)

var (
	// ErrWrongCategory tanlangan qism joriy qadamga tegishli emas
	ErrWrongCategory = errors.New("item does not belong to the current step")
	// ErrStepOutOfRange qadam indeksi noto'g'ri
	ErrStepOutOfRange = errors.New("step out of range")
	// ErrNotExtrasPhase extras faqat setup_completo uchun
	ErrNotExtrasPhase = errors.New("extras are only available after the last step of setup_completo")
)

// Wizard is the manual step-by-step builder. Picking an item for the current
// step stores it and moves to the next one. Jumping back with GoTo and
// replacing a part does not touch later selections, even if they no longer
// fit the new part.
type Wizard struct {
	cfg     *entity.Configuration
	steps   []entity.HardwareCategory
	current int
	phase   Phase
}

// NewWizard yangi wizard yaratish
func NewWizard(t entity.ConfigurationType) (*Wizard, error) {
	steps, err := RequiredCategories(t)
	if err != nil {
		return nil, err
	}
	return &Wizard{
		cfg:   entity.NewConfiguration(t),
		steps: steps,
		phase: PhaseComponents,
	}, nil
}

// Type returns the configuration type being built.
func (w *Wizard) Type() entity.ConfigurationType { return w.cfg.Type }

// Steps qadamlar ro'yxati
func (w *Wizard) Steps() []entity.HardwareCategory {
	return append([]entity.HardwareCategory(nil), w.steps...)
}

// CurrentStep joriy qadam indeksi
func (w *Wizard) CurrentStep() int { return w.current }

// CurrentCategory joriy qadam kategoriyasi
func (w *Wizard) CurrentCategory() entity.HardwareCategory { return w.steps[w.current] }

// Phase joriy bosqich
func (w *Wizard) Phase() Phase { return w.phase }

// Configuration returns a copy of the in-progress configuration.
func (w *Wizard) Configuration() *entity.Configuration { return w.cfg.Clone() }

// TotalPrice jami narx
func (w *Wizard) TotalPrice() float64 { return w.cfg.TotalPrice }

// Candidates joriy qadam uchun mos qismlar
func (w *Wizard) Candidates(items []entity.HardwareItem) []entity.HardwareItem {
	return FilterCompatible(w.CurrentCategory(), items, w.cfg.Selected)
}

// Select stores item for the current step and advances.
func (w *Wizard) Select(item entity.HardwareItem) error {
	category := w.CurrentCategory()
	if item.Category != category {
		return fmt.Errorf("%w: want %s, got %s", ErrWrongCategory, category, item.Category)
	}

	w.cfg.Select(category, &item)

	if w.current < len(w.steps)-1 {
		w.current++
		return nil
	}

	// oxirgi qadam
	if w.cfg.Type == entity.ConfigurationSetupCompleto {
		w.phase = PhaseExtras
	} else if w.IsComplete() {
		w.phase = PhaseDone
	}
	return nil
}

// GoTo jumps to an earlier (or any) step; existing selections are kept.
func (w *Wizard) GoTo(step int) error {
	if step < 0 || step >= len(w.steps) {
		return fmt.Errorf("%w: %d", ErrStepOutOfRange, step)
	}
	w.current = step
	w.phase = PhaseComponents
	return nil
}

// Deselect kategoriyadagi tanlovni olib tashlash
func (w *Wizard) Deselect(category entity.HardwareCategory) {
	w.cfg.Deselect(category)
	if w.phase == PhaseDone && !w.IsComplete() {
		w.phase = PhaseComponents
	}
}

// SelectExtra adds a peripheral during the extras phase.
func (w *Wizard) SelectExtra(item entity.HardwareItem) error {
	if w.phase != PhaseExtras {
		return ErrNotExtrasPhase
	}
	if !item.Category.IsPeripheral() {
		return fmt.Errorf("%w: %s is not a peripheral", ErrWrongCategory, item.Category)
	}
	w.cfg.Select(item.Category, &item)
	return nil
}

// RemoveExtra peripheral tanlovini olib tashlash
func (w *Wizard) RemoveExtra(category entity.HardwareCategory) error {
	if !category.IsPeripheral() {
		return fmt.Errorf("%w: %s is not a peripheral", ErrWrongCategory, category)
	}
	w.cfg.Deselect(category)
	return nil
}

// FinishExtras closes the extras phase.
func (w *Wizard) FinishExtras() error {
	if w.phase != PhaseExtras {
		return ErrNotExtrasPhase
	}
	if w.IsComplete() {
		w.phase = PhaseDone
	} else {
		w.phase = PhaseComponents
	}
	return nil
}

// IsComplete barcha qadamlar to'ldirilganmi
func (w *Wizard) IsComplete() bool {
	for _, step := range w.steps {
		if _, ok := w.cfg.Selected[step]; !ok {
			return false
		}
	}
	return true
}

// Snapshot is a serialisable view of the wizard.
type Snapshot struct {
	Type          entity.ConfigurationType  `json:"type"`
	Steps         []entity.HardwareCategory `json:"steps"`
	CurrentStep   int                       `json:"currentStep"`
	Phase         Phase                     `json:"phase"`
	Complete      bool                      `json:"isComplete"`
	Configuration *entity.Configuration     `json:"configuration"`
}

// Snapshot wizard holati
func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{
		Type:          w.cfg.Type,
		Steps:         w.Steps(),
		CurrentStep:   w.current,
		Phase:         w.phase,
		Complete:      w.IsComplete(),
		Configuration: w.Configuration(),
	}
}
