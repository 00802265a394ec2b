package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel provides common persistence fields for all models.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// FacilityModel provides common persistence fields for facility-scoped records.
type FacilityModel struct {
	BaseModel
	FacilityID uuid.UUID `gorm:"type:uuid;not null;index"`
}
