package models

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/baustelle-app/lager/services/inventory/domain"
)

// ItemName is a value object for catalog names: 1 to 255 bytes, trimmed,
// no control characters.
type ItemName string

const (
	minItemNameLength = 1
	maxItemNameLength = 255
)

// NewItemName trims s and returns it as an ItemName.
func NewItemName(s string) (ItemName, error) {
	s = strings.TrimSpace(s)
	if len(s) < minItemNameLength {
		return "", fmt.Errorf("%w: must be at least %d character", domain.ErrInvalidItemName, minItemNameLength)
	}
	if len(s) > maxItemNameLength {
		return "", fmt.Errorf("%w: must not exceed %d characters", domain.ErrInvalidItemName, maxItemNameLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("%w: must not contain control characters", domain.ErrInvalidItemName)
		}
	}
	return ItemName(s), nil
}

func (n ItemName) String() string {
	return string(n)
}
