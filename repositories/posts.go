package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-service/models"
)

// UpdateFields carries the subset of post fields a partial update supplies.
// Nil fields are left untouched in the stored document.
type UpdateFields struct {
	Title   *string
	Content *string
	Author  *models.Author
}

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// Insert stores a new post. The store assigns _id and the caller-invisible
// created timestamp is set here.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) (*models.Post, error) {
	if p.Created.IsZero() {
		p.Created = time.Now()
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

// FindAll returns every post in natural collection order.
func (r *PostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	items := make([]models.Post, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FindByID returns mongo.ErrNoDocuments when no post matches.
func (r *PostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateByID applies only the supplied fields. An id matching no document
// is a silent no-op.
func (r *PostRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) error {
	set := bson.M{}
	if fields.Title != nil {
		set["title"] = *fields.Title
	}
	if fields.Content != nil {
		set["content"] = *fields.Content
	}
	if fields.Author != nil {
		set["author"] = *fields.Author
	}
	if len(set) == 0 {
		return nil
	}
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// DeleteByID removes the post if present; deleting an absent id is not an error.
func (r *PostRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
