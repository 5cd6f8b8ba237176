package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port                 string `env:"PORT" envDefault:"8080"`
	MongoURI             string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase        string `env:"MONGODB_DATABASE" envDefault:"realestate"`
	PropertiesCollection string `env:"MONGODB_COLLECTION_PROPERTIES" envDefault:"properties"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	client   *mongo.Client
	database *mongo.Database
)

// ConnectDB opens the shared Mongo client and pings it so a bad connection
// string fails at startup instead of on the first request.
func ConnectDB(cfg Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}

	client = c
	database = c.Database(cfg.MongoDatabase)
	return nil
}

func GetCollection(name string) *mongo.Collection {
	return database.Collection(name)
}

func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
