package configs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens a client to the document store and verifies it with a
// ping. The client is returned to the caller, which owns its lifecycle;
// nothing here keeps a package-level handle.
func ConnectDB(uri string) (*mongo.Client, error) {
	logger := LogWithContext("database", "mongodb-connect")

	client, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		logger.WithError(err).Error("Failed to create MongoDB client")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		logger.WithError(err).Error("Failed to connect to MongoDB")
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.WithError(err).Error("Failed to ping MongoDB")
		return nil, err
	}

	logger.Info("Connected to MongoDB successfully")
	return client, nil
}

// DisconnectDB closes the client with a bounded timeout. Called during
// graceful shutdown, after the HTTP listener has stopped.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
