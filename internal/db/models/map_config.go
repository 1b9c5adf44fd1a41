package models

import "github.com/google/uuid"

// MapConfig is a single-row relation holding the initial viewport.
type MapConfig struct {
	tableName struct{} `pg:"map_config"`

	ID        uuid.UUID `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	CenterLat float64   `json:"center_lat" pg:",notnull,use_zero"`
	CenterLng float64   `json:"center_lng" pg:",notnull,use_zero"`
	Zoom      int       `json:"zoom" pg:",notnull"`
}
