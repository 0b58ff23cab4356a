package domain

import "time"

const UnitStatusActive = "active"

// BusinessUnit is one of the cooperative's operating units (store, savings
// and loans, tourism, ...). Public listings only show active units.
type BusinessUnit struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Name        BilingualText `json:"name" bson:"name"`
	Category    string        `json:"category" bson:"category"`
	Description BilingualText `json:"description" bson:"description"`
	Revenue     string        `json:"revenue" bson:"revenue"`
	Contact     string        `json:"contact,omitempty" bson:"contact,omitempty"`
	TeamSize    int           `json:"team_size" bson:"team_size"`
	Status      string        `json:"status" bson:"status"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
