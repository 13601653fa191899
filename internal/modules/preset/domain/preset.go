package domain

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "studytimer/internal/platform/errors"
	"studytimer/internal/platform/slug"
)

// Limit caps the number of stored presets.
const Limit = 5

type Preset struct {
	Name         string
	StudyMinutes int
	BreakMinutes int
}

func (p Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: preset name is required", apperrors.ErrInvalidInput)
	}
	if p.StudyMinutes <= 0 || p.BreakMinutes <= 0 {
		return fmt.Errorf("%w: preset durations must be positive", apperrors.ErrInvalidInput)
	}
	return nil
}

func (p Preset) Slug() string {
	return slug.Make(p.Name)
}

// List is the ordered preset collection. Methods return a new list and leave
// the receiver untouched.
type List []Preset

// Save replaces the preset at overwrite when it names an existing position;
// otherwise p is appended if the list is below Limit. It returns the index
// that now holds p.
func (l List) Save(p Preset, overwrite *int) (List, int, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := p.Validate(); err != nil {
		return l, -1, err
	}
	next := append(List(nil), l...)
	if overwrite != nil && *overwrite >= 0 && *overwrite < len(next) {
		next[*overwrite] = p
		return next, *overwrite, nil
	}
	if len(next) >= Limit {
		return l, -1, fmt.Errorf("%w: at most %d presets can be saved", apperrors.ErrPresetLimit, Limit)
	}
	next = append(next, p)
	return next, len(next) - 1, nil
}

func (l List) Delete(index int) (List, Preset, error) {
	if index < 0 || index >= len(l) {
		return l, Preset{}, fmt.Errorf("%w: preset %d", apperrors.ErrNotFound, index+1)
	}
	removed := l[index]
	next := append(List(nil), l[:index]...)
	next = append(next, l[index+1:]...)
	return next, removed, nil
}

// Find resolves ref as a 1-based position or, failing that, as the slug of a
// preset name. The first slug match wins.
func (l List) Find(ref string) (int, Preset, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(l) {
			return n - 1, l[n-1], nil
		}
		return -1, Preset{}, fmt.Errorf("%w: preset %d", apperrors.ErrNotFound, n)
	}
	want := slug.Make(ref)
	for i, p := range l {
		if p.Slug() == want {
			return i, p, nil
		}
	}
	return -1, Preset{}, fmt.Errorf("%w: preset %q", apperrors.ErrNotFound, ref)
}

// Merge appends incoming presets until the list is full. Invalid presets and
// those past the limit are counted as skipped.
func (l List) Merge(incoming []Preset) (List, int, int) {
	next := append(List(nil), l...)
	added, skipped := 0, 0
	for _, p := range incoming {
		saved, _, err := next.Save(p, nil)
		if err != nil {
			skipped++
			continue
		}
		next = saved
		added++
	}
	return next, added, skipped
}
