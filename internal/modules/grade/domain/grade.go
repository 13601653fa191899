package domain

import (
	"fmt"
	"math"
	"time"

	apperrors "studytimer/internal/platform/errors"
)

// Entry is one recorded score. Entries are append-only.
type Entry struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

func NewEntry(value float64, now time.Time) (Entry, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Entry{}, fmt.Errorf("%w: grade must be a finite number", apperrors.ErrInvalidInput)
	}
	return Entry{Value: value, Date: now}, nil
}
