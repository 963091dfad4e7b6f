package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the composite author value embedded in a post. It has no
// identity of its own; it is owned entirely by the post document.
type Author struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
}

// Post represents a blog post document
// Collection: posts
type Post struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title   string             `bson:"title" json:"title"`
	Content string             `bson:"content" json:"content"`
	Author  Author             `bson:"author" json:"author"`
	Created time.Time          `bson:"created" json:"created"`
}
