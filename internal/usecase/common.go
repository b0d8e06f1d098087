package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/hardware-storefront/internal/domain/repository"
)

// BulkResult ko'p obyektli amallar natijasi. Har bir obyekt alohida
// qayta ishlanadi, oldingi muvaffaqiyatlar bekor qilinmaydi.
type BulkResult struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

func (r *BulkResult) ok() {
	r.Succeeded++
}

func (r *BulkResult) fail(id string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", id, err))
}

// Total qayta ishlangan obyektlar soni
func (r BulkResult) Total() int {
	return r.Succeeded + r.Failed
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), repository.ErrInvalid)
}

// normalizeKey kategoriya kalitini kichik harf va bo'shliqsiz qilish
func normalizeKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(key), "-")
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func isConflict(err error) bool {
	return errors.Is(err, repository.ErrConflict)
}
