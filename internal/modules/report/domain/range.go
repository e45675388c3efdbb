package domain

import (
	"fmt"
	"strconv"

	apperrors "breathe/internal/platform/errors"
)

// RangeAll selects the entire data set.
const RangeAll = 0

// ParseRange accepts "all" or a positive day count. The zero value
// means unbounded.
func ParseRange(raw string) (int, error) {
	if raw == "" || raw == "all" {
		return RangeAll, nil
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return 0, fmt.Errorf("range %q: %w", raw, apperrors.ErrInvalidRange)
	}
	return days, nil
}
