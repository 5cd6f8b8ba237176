package services

import (
	"context"
	"strings"

	"realestate-listings/models"
	"realestate-listings/repository"
)

// Response messages are part of the API contract. The HTTP layer matches on
// MsgPropertyNotFound to pick 404 over 500, so the string must not drift.
const (
	MsgPropertiesRetrieved = "Properties retrieved successfully"
	MsgPropertiesError     = "Error retrieving properties"
	MsgPropertyRetrieved   = "Property retrieved successfully"
	MsgPropertyError       = "Error retrieving property"
	MsgPropertyNotFound    = "Property not found"
	MsgPropertyIDRequired  = "Property ID is required"
)

// PropertyService produces envelope-wrapped results; failures are values, not
// errors, so every outcome is visible at the call site.
type PropertyService interface {
	ListProperties(ctx context.Context, filter models.PropertyFilter) models.Envelope[models.Page[models.PropertySummary]]
	GetProperty(ctx context.Context, id string) models.Envelope[models.PropertyDetail]
}

type propertyService struct {
	repo repository.PropertyRepository
}

func NewPropertyService(repo repository.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

// ListProperties trusts that the filter was validated before this call; page
// number and size are copied through into the page metadata unchanged.
func (s *propertyService) ListProperties(ctx context.Context, filter models.PropertyFilter) models.Envelope[models.Page[models.PropertySummary]] {
	properties, totalCount, totalPages, err := s.repo.FindPage(ctx, filter)
	if err != nil {
		return models.Fail[models.Page[models.PropertySummary]](MsgPropertiesError, err.Error())
	}

	summaries := make([]models.PropertySummary, 0, len(properties))
	for _, p := range properties {
		summaries = append(summaries, toSummary(p))
	}

	page := models.Page[models.PropertySummary]{
		Data:       summaries,
		TotalCount: totalCount,
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}
	return models.OK(page, MsgPropertiesRetrieved)
}

func (s *propertyService) GetProperty(ctx context.Context, id string) models.Envelope[models.PropertyDetail] {
	if strings.TrimSpace(id) == "" {
		return models.Fail[models.PropertyDetail](MsgPropertyIDRequired, "Invalid property ID")
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Fail[models.PropertyDetail](MsgPropertyError, err.Error())
	}
	if property == nil {
		return models.Fail[models.PropertyDetail](MsgPropertyNotFound)
	}
	return models.OK(toDetail(*property), MsgPropertyRetrieved)
}

func toSummary(p models.Property) models.PropertySummary {
	return models.PropertySummary{
		ID:              p.ID.Hex(),
		IDOwner:         p.IDOwner,
		Name:            p.Name,
		AddressProperty: p.AddressProperty,
		PriceProperty:   p.PriceProperty,
		Image:           p.Image,
	}
}

func toDetail(p models.Property) models.PropertyDetail {
	return models.PropertyDetail{
		ID:              p.ID.Hex(),
		IDOwner:         p.IDOwner,
		Name:            p.Name,
		AddressProperty: p.AddressProperty,
		PriceProperty:   p.PriceProperty,
		Image:           p.Image,
		PropertyType:    p.PropertyType,
		Status:          p.Status,
		Bedrooms:        p.Bedrooms,
		Bathrooms:       p.Bathrooms,
		Area:            p.Area,
		YearBuilt:       p.YearBuilt,
		Description:     p.Description,
		Features:        p.Features,
		ParkingSpots:    p.ParkingSpots,
	}
}
