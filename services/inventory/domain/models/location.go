package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baustelle-app/lager/services/inventory/domain"
)

// StorageLocation is a place on site where stock is kept: a container, a
// shelf, a fenced yard.
type StorageLocation struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Zone        *string
	IsActive    bool
	CreatedAt   time.Time
}

// NewStorageLocation builds an active location with a fresh ID.
func NewStorageLocation(name string, description, zone *string) (*StorageLocation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Invalid("location name is required")
	}
	return &StorageLocation{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Zone:        zone,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
