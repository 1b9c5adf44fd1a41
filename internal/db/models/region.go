package models

import "github.com/google/uuid"

type Region struct {
	ID          uuid.UUID `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Name        string    `json:"name" pg:",notnull,unique"`
	Description string    `json:"description"`
	CenterLat   *float64  `json:"center_lat"`
	CenterLng   *float64  `json:"center_lng"`
}
