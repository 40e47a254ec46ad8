package ids

import (
	"fmt"
	"strings"

	"pet-shelter/internal/platform/apperr"

	"github.com/google/uuid"
)

func New() string { return uuid.NewString() }

// Check valida que raw sea un UUID; field se usa en el mensaje.
func Check(field, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: %s %q", apperr.ErrInvalidID, field, raw)
	}
	return raw, nil
}
