package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-service/dto"
	"blog-service/models"
	"blog-service/repositories"
)

// ErrPostNotFound marks absence of a post on the read path.
var ErrPostNotFound = errors.New("post not found")

// ErrIDMismatch marks an update whose body id disagrees with the path id.
var ErrIDMismatch = errors.New("body id does not match path id")

// PostStore is the adapter seam between the service and the document store.
// PostRepository (Mongo) and MemoryPostStore both satisfy it.
type PostStore interface {
	Insert(ctx context.Context, p *models.Post) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, fields repositories.UpdateFields) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
}

// PostService encapsulates post CRUD and DTO mapping.
type PostService struct {
	store PostStore
}

func NewPostService(store PostStore) *PostService {
	return &PostService{store: store}
}

func (s *PostService) List(ctx context.Context) ([]dto.PostDTO, error) {
	items, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostDTO, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewPostDTO(p))
	}
	return out, nil
}

// Create inserts a post from the request body. Fields are trusted as-is;
// required-ness is a caller convention, not validated here.
func (s *PostService) Create(ctx context.Context, in dto.CreatePostRequest) (*dto.PostDTO, error) {
	p, err := s.store.Insert(ctx, &models.Post{
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
	})
	if err != nil {
		return nil, err
	}
	d := dto.NewPostDTO(*p)
	return &d, nil
}

// GetByID loads a post by its ObjectID hex and returns a DTO. A malformed
// hex id reads the same as an absent one.
func (s *PostService) GetByID(ctx context.Context, hexID string) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, ErrPostNotFound
	}
	p, err := s.store.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	d := dto.NewPostDTO(*p)
	return &d, nil
}

// Update applies the supplied subset of fields to the post at hexID.
// An id matching no document is a silent no-op; only a body/path id
// disagreement is an error.
func (s *PostService) Update(ctx context.Context, hexID string, in dto.UpdatePostRequest) error {
	if in.ID != nil && *in.ID != hexID {
		return ErrIDMismatch
	}
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		// nothing can match a malformed id; same no-op as an absent one
		return nil
	}
	return s.store.UpdateByID(ctx, id, repositories.UpdateFields{
		Title:   in.Title,
		Content: in.Content,
		Author:  in.Author,
	})
}

// Delete is idempotent: deleting an absent or malformed id succeeds.
func (s *PostService) Delete(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil
	}
	return s.store.DeleteByID(ctx, id)
}
