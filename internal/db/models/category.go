package models

import "github.com/google/uuid"

// UnknownCategoryName is the sentinel assigned to pins whose category id
// does not resolve against the loaded category set.
const UnknownCategoryName = "Unknown"

type Category struct {
	ID    uuid.UUID `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Name  string    `json:"name" pg:",notnull,unique"`
	Color string    `json:"color" pg:",notnull"`
}
