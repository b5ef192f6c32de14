package domain

import "time"

// Post is a piece of content published by a user to the community feed.
type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name,omitempty"`
	AuthorHandle string    `json:"author_handle,omitempty"`
	Content      string    `json:"content"`
	ImageURL     string    `json:"image_url,omitempty"`
	Likes        int       `json:"likes"`
	CreatedAt    time.Time `json:"created_at"`
}
