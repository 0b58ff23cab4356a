package domain

import "time"

// News is a published article. Author holds the id of the admin who
// created it; public listings only include published articles.
type News struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       BilingualText `json:"title" bson:"title"`
	Excerpt     BilingualText `json:"excerpt" bson:"excerpt"`
	Content     BilingualText `json:"content" bson:"content"`
	Category    string        `json:"category" bson:"category"`
	ImageURL    string        `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsPublished bool          `json:"is_published" bson:"is_published"`
	Author      string        `json:"author" bson:"author"`
	PublishedAt time.Time     `json:"published_at" bson:"published_at"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
