package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

// Handle bundles the Mongo client with the database it addresses. It is
// created once at startup and passed explicitly to whoever needs the
// connection; there is no package-level singleton.
type Handle struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the Mongo deployment at uri, pings it and ensures indexes.
// The database name is taken from the connection string path, falling back
// to "blog" when the URI has none.
func Connect(ctx context.Context, uri string) (*Handle, error) {
	cl, err := mongo.NewClient(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := cl.Connect(ctx); err != nil {
		return nil, err
	}
	// Ping to verify connection
	if err := cl.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, err
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = "blog"
	}

	h := &Handle{client: cl, db: cl.Database(dbName)}
	if err := ensureIndexes(ctx, h.db); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *Handle) Database() *mongo.Database { return h.db }

// Ping reports whether the deployment is reachable.
func (h *Handle) Ping(ctx context.Context) error {
	return h.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Close disconnects the underlying client.
func (h *Handle) Close(ctx context.Context) error {
	return h.client.Disconnect(ctx)
}

func ensureIndexes(ctx context.Context, d *mongo.Database) error {
	// posts: created desc, for stable recent-first scans
	_, err := d.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "created", Value: -1}},
		Options: options.Index().SetName("idx_created_desc"),
	})
	return err
}
