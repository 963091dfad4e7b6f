package dto

import (
	"blog-service/models"
)

// PostDTO is the wire shape of a post. The stored composite author is
// flattened to a single "first last" string here, at the boundary, so the
// stored shape and the wire shape can evolve independently.
type PostDTO struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:      p.ID.Hex(),
		Title:   p.Title,
		Content: p.Content,
		Author:  p.Author.FirstName + " " + p.Author.LastName,
	}
}

// CreatePostRequest is the create body. The author arrives as the composite
// object even though responses flatten it.
type CreatePostRequest struct {
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Author  models.Author `json:"author"`
}

// UpdatePostRequest is the partial update body. Nil fields are not touched.
// ID, when present, must match the path id.
type UpdatePostRequest struct {
	ID      *string        `json:"id"`
	Title   *string        `json:"title"`
	Content *string        `json:"content"`
	Author  *models.Author `json:"author"`
}
