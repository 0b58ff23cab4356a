package domain

import "time"

// Document is a regulatory or legal document published for transparency.
type Document struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       BilingualText `json:"title" bson:"title"`
	Description BilingualText `json:"description" bson:"description"`
	Year        int           `json:"year" bson:"year"`
	FileURL     string        `json:"file_url" bson:"file_url"`
	FileSize    string        `json:"file_size" bson:"file_size"`
	Category    string        `json:"category" bson:"category"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
