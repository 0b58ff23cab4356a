package domain

// BilingualText pairs the Indonesian and English variants of a public-facing
// string. All user-visible names, titles and descriptions use it.
type BilingualText struct {
	ID string `json:"id" bson:"id"`
	EN string `json:"en" bson:"en"`
}
