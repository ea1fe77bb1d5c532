package analytics

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kulturkompass/wortwolke/pkg/cache"
	"github.com/kulturkompass/wortwolke/pkg/observability"
)

// MongoConfig configures the MongoDB analytics sink.
type MongoConfig struct {
	// URI is the MongoDB connection string.
	URI string

	// Database and Collection name the event store.
	// Defaults: "wortwolke" / "layout_events".
	Database   string
	Collection string
}

// publishTimeout bounds each background insert.
const publishTimeout = 5 * time.Second

// MongoSink writes events to a MongoDB collection. Inserts happen on a
// background goroutine with their own timeout; failures are logged and
// reported through hooks, never returned to the layout path.
type MongoSink struct {
	client *mongo.Client
	coll   *mongo.Collection
	logger *log.Logger
}

// NewMongoSink connects to MongoDB and verifies the connection with a ping.
func NewMongoSink(ctx context.Context, cfg MongoConfig, logger *log.Logger) (Sink, error) {
	if cfg.Database == "" {
		cfg.Database = "wortwolke"
	}
	if cfg.Collection == "" {
		cfg.Collection = "layout_events"
	}
	if logger == nil {
		logger = log.Default()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoSink{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
		logger: logger,
	}, nil
}

// Publish inserts the event asynchronously. Transient failures are retried
// with backoff; a final failure is logged and dropped.
func (s *MongoSink) Publish(ctx context.Context, e Event) {
	go func() {
		// Detach from the request context: the layout response must not
		// wait on, or be cancelled alongside, the insert.
		insertCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		err := cache.RetryWithBackoff(insertCtx, func() error {
			if _, err := s.coll.InsertOne(insertCtx, e); err != nil {
				return cache.Retryable(err)
			}
			return nil
		})
		if err != nil {
			s.logger.Warn("analytics publish failed", "event", e.Name, "err", err)
			observability.Analytics().OnPublishError(insertCtx, e.Name, err)
			return
		}
		observability.Analytics().OnPublish(insertCtx, e.Name)
	}()
}

// Close disconnects the MongoDB client.
func (s *MongoSink) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoSink implements Sink.
var _ Sink = (*MongoSink)(nil)
