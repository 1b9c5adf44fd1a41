package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID           uuid.UUID  `json:"id" pg:"type:uuid,pk,default:gen_random_uuid()"`
	Email        string     `json:"email" pg:",unique"`
	PasswordHash string     `json:"-" pg:",notnull"`
	DisplayName  string     `json:"display_name"`
	IsSiteAdmin  bool       `json:"is_site_admin" pg:",notnull,use_zero,default:false"`
	LastGroupID  *uuid.UUID `json:"last_group_id" pg:"type:uuid"`
	CreatedAt    time.Time  `json:"created_at" pg:"default:now()"`
	UpdatedAt    time.Time  `json:"updated_at" pg:"default:now()"`
}
