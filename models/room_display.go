package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomDisplayInfo is the local display metadata for a bookable room category.
// It is joined against the external room-types feed by the exact Category
// string; a mismatched category silently loses its display fields.
type RoomDisplayInfo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Category    string `gorm:"size:128;uniqueIndex" json:"category"`
	DisplayName string `json:"display_name"`
	AreaSqm     uint   `json:"area_sqm"`
	Summary     string `gorm:"type:text" json:"summary"`

	Highlights datatypes.JSON `json:"highlights,omitempty"`
	Images     datatypes.JSON `json:"images,omitempty"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
