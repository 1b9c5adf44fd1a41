package models

import (
	"time"

	"github.com/google/uuid"
)

type Votability string

const (
	VotabilityInherit Votability = "inherit"
	VotabilityAlways  Votability = "always"
	VotabilityNever   Votability = "never"
)

func (v Votability) String() string {
	return string(v)
}

type Pin struct {
	ID                  uuid.UUID  `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Name                string     `json:"name" pg:",notnull"`
	Lat                 float64    `json:"lat" pg:",notnull,use_zero"`
	Lng                 float64    `json:"lng" pg:",notnull,use_zero"`
	Description         string     `json:"description" pg:",notnull"`
	CategoryID          uuid.UUID  `json:"category_id" pg:"type:uuid,notnull"`
	RegionID            *uuid.UUID `json:"region_id" pg:"type:uuid"`
	Votability          Votability `json:"votability" pg:",notnull,default:'inherit'"`
	Link                string     `json:"link"`
	MapsLink            string     `json:"maps_link"`
	ExtendedDescription string     `json:"extended_description"`
	Cost                string     `json:"cost"`
	Tips                string     `json:"tips"`
	Photos              []string   `json:"photos" pg:",array"`
	Distance            *float64   `json:"distance"`
	ElevationGain       *float64   `json:"elevation_gain"`
	GPX                 string     `json:"gpx"`
	CreatedAt           time.Time  `json:"created_at" pg:"default:now()"`
}
