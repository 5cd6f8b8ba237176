package repository

import (
	"context"

	"realestate-listings/models"
)

// PropertyRepository is the read-side contract over the properties collection.
// The service layer depends on this interface only, so the Mongo adapter can
// be swapped for a test double or another store.
//
// FindAll is reserved capability: it is part of the contract but is not routed
// through the HTTP surface.
type PropertyRepository interface {
	FindAll(ctx context.Context) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	FindPage(ctx context.Context, filter models.PropertyFilter) (properties []models.Property, totalCount, totalPages int, err error)
}
