package domain

import (
	"errors"
	"fmt"
)

// Виды ошибок ядра. Ошибки пакетов оборачивают один из них,
// поэтому errors.Is(err, domain.ErrConflict) работает через все слои
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// ErrInvalidInterval некорректная длительность или переход через полночь
var ErrInvalidInterval = fmt.Errorf("%w: invalid interval", ErrInvalidArgument)

// ConflictError интервал пересекается с существующими бронированиями
type ConflictError struct {
	ConflictingCount int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict: interval overlaps %d booking(s)", e.ConflictingCount)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ConflictingCount извлекает количество пересечений из ошибки (0, если это не ConflictError)
func ConflictingCount(err error) int {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce.ConflictingCount
	}
	return 0
}
