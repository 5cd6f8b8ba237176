package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"realestate-listings/models"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// MongoPropertyRepository implements PropertyRepository on top of a single
// Mongo collection.
type MongoPropertyRepository struct {
	collection *mongo.Collection
}

func NewMongoPropertyRepository(collection *mongo.Collection) *MongoPropertyRepository {
	return &MongoPropertyRepository{collection: collection}
}

func (r *MongoPropertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// FindByID returns (nil, nil) when no document matches. A value that is not a
// valid ObjectID cannot exist in the collection, so it is a miss rather than
// an error.
func (r *MongoPropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, nil
	}

	var property models.Property
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// FindPage runs the count and the page fetch over the same filter. The two
// round-trips are not transactional; a write landing between them can skew
// totalCount against the returned rows, which is accepted.
func (r *MongoPropertyRepository) FindPage(ctx context.Context, filter models.PropertyFilter) ([]models.Property, int, int, error) {
	pageNumber := filter.PageNumber
	if pageNumber < 1 {
		pageNumber = defaultPageNumber
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	query := buildListQuery(filter)

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, 0, err
	}
	totalCount := int(total)
	totalPages := pageCount(totalCount, pageSize)

	opts := options.Find().
		SetSort(bson.D{{Key: "Name", Value: 1}}).
		SetSkip(int64((pageNumber - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, 0, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, 0, err
	}
	return properties, totalCount, totalPages, nil
}

// buildListQuery conjoins the optional predicates with the fixed
// Status == "Available" restriction. List queries never run unconstrained.
func buildListQuery(filter models.PropertyFilter) bson.M {
	query := bson.M{"Status": models.StatusAvailable}

	if name := strings.TrimSpace(filter.Name); name != "" {
		query["Name"] = bson.M{"$regex": name, "$options": "i"}
	}
	if address := strings.TrimSpace(filter.Address); address != "" {
		query["AddressProperty"] = bson.M{"$regex": address, "$options": "i"}
	}

	price := bson.M{}
	if filter.MinPrice != nil {
		price["$gte"] = *filter.MinPrice
	}
	if filter.MaxPrice != nil {
		price["$lte"] = *filter.MaxPrice
	}
	if len(price) > 0 {
		query["PriceProperty"] = price
	}

	return query
}

func pageCount(totalCount, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
