package domain

import "time"

// ResourceType classifies an educational resource.
type ResourceType string

const (
	ResourceArticle  ResourceType = "article"
	ResourceVideo    ResourceType = "video"
	ResourceGuide    ResourceType = "guide"
	ResourceTraining ResourceType = "training"
)

// Valid reports whether t is a known resource type.
func (t ResourceType) Valid() bool {
	switch t {
	case ResourceArticle, ResourceVideo, ResourceGuide, ResourceTraining:
		return true
	}
	return false
}

// EducationalResource is a learning item for members and residents.
type EducationalResource struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       BilingualText `json:"title" bson:"title"`
	Description BilingualText `json:"description" bson:"description"`
	Content     BilingualText `json:"content" bson:"content"`
	Type        ResourceType  `json:"type" bson:"type"`
	ResourceURL string        `json:"resource_url,omitempty" bson:"resource_url,omitempty"`
	IsPublished bool          `json:"is_published" bson:"is_published"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
