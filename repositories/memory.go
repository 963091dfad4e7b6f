package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blog-service/models"
)

// MemoryPostStore is a map-backed post store with the same contract as
// PostRepository. It backs the handler test suite and Mongo-less dev runs.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]models.Post
	order []primitive.ObjectID
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: make(map[primitive.ObjectID]models.Post)}
}

func (s *MemoryPostStore) Insert(ctx context.Context, p *models.Post) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Created.IsZero() {
		p.Created = time.Now()
	}
	p.ID = primitive.NewObjectID()
	s.posts[p.ID] = *p
	s.order = append(s.order, p.ID)
	return p, nil
}

func (s *MemoryPostStore) FindAll(ctx context.Context) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.Post, 0, len(s.order))
	for _, id := range s.order {
		if p, ok := s.posts[id]; ok {
			items = append(items, p)
		}
	}
	return items, nil
}

func (s *MemoryPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &p, nil
}

func (s *MemoryPostStore) UpdateByID(ctx context.Context, id primitive.ObjectID, fields UpdateFields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.posts[id]
	if !ok {
		// absent id: silent no-op, same as the Mongo adapter
		return nil
	}
	if fields.Title != nil {
		p.Title = *fields.Title
	}
	if fields.Content != nil {
		p.Content = *fields.Content
	}
	if fields.Author != nil {
		p.Author = *fields.Author
	}
	s.posts[id] = p
	return nil
}

func (s *MemoryPostStore) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return nil
	}
	delete(s.posts, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
