package domain

import "time"

// MessageStatus is the handling state of a contact message.
// new → replied → archived; new → archived directly is also allowed.
type MessageStatus string

const (
	MessageNew      MessageStatus = "new"
	MessageReplied  MessageStatus = "replied"
	MessageArchived MessageStatus = "archived"
)

// ContactMessage is a message submitted through the public contact form.
// Messages are never hard-deleted; archiving is a status transition.
type ContactMessage struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Name         string        `json:"name" bson:"name"`
	Email        string        `json:"email" bson:"email"`
	Phone        string        `json:"phone" bson:"phone"`
	Subject      string        `json:"subject" bson:"subject"`
	Message      string        `json:"message" bson:"message"`
	Status       MessageStatus `json:"status" bson:"status"`
	SubmittedAt  time.Time     `json:"submitted_at" bson:"submitted_at"`
	RepliedAt    *time.Time    `json:"replied_at,omitempty" bson:"replied_at,omitempty"`
	ReplyMessage string        `json:"reply_message,omitempty" bson:"reply_message,omitempty"`
}
