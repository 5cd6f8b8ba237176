package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusAvailable is the only status the listing query ever serves. Documents
// with any other status are invisible to the API regardless of filters.
const StatusAvailable = "Available"

// Property mirrors the documents in the externally managed properties
// collection. The bson field names follow the collection schema, which is
// owned by the data-management process, not by this service.
type Property struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	IDOwner         string             `bson:"IdOwner"`
	Name            string             `bson:"Name"`
	AddressProperty string             `bson:"AddressProperty"`
	PriceProperty   float64            `bson:"PriceProperty"`
	Image           string             `bson:"Image"`
	PropertyType    string             `bson:"PropertyType"`
	Status          string             `bson:"Status"`
	Bedrooms        int                `bson:"Bedrooms"`
	Bathrooms       int                `bson:"Bathrooms"`
	Area            float64            `bson:"Area"`
	YearBuilt       int                `bson:"YearBuilt"`
	Description     string             `bson:"Description"`
	Features        []string           `bson:"Features"`
	ParkingSpots    int                `bson:"ParkingSpots"`
	CreatedDate     time.Time          `bson:"CreatedDate"`
	UpdatedDate     time.Time          `bson:"UpdatedDate"`
}

// PropertyFilter carries the optional list predicates plus pagination. It is
// built per request and never persisted.
type PropertyFilter struct {
	Name       string
	Address    string
	MinPrice   *float64 `validate:"omitempty,gte=0"`
	MaxPrice   *float64 `validate:"omitempty,gte=0"`
	PageNumber int      `validate:"gte=1"`
	PageSize   int      `validate:"gte=1,lte=100"`
}

// PropertySummary is the listing projection of a Property, kept small on
// purpose so list payloads stay light.
type PropertySummary struct {
	ID              string  `json:"id"`
	IDOwner         string  `json:"idOwner"`
	Name            string  `json:"name"`
	AddressProperty string  `json:"addressProperty"`
	PriceProperty   float64 `json:"priceProperty"`
	Image           string  `json:"image"`
}

// PropertyDetail is the single-item projection: every Property attribute
// except the timestamps.
type PropertyDetail struct {
	ID              string   `json:"id"`
	IDOwner         string   `json:"idOwner"`
	Name            string   `json:"name"`
	AddressProperty string   `json:"addressProperty"`
	PriceProperty   float64  `json:"priceProperty"`
	Image           string   `json:"image"`
	PropertyType    string   `json:"propertyType"`
	Status          string   `json:"status"`
	Bedrooms        int      `json:"bedrooms"`
	Bathrooms       int      `json:"bathrooms"`
	Area            float64  `json:"area"`
	YearBuilt       int      `json:"yearBuilt"`
	Description     string   `json:"description"`
	Features        []string `json:"features"`
	ParkingSpots    int      `json:"parkingSpots"`
}
