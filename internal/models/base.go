package models

import "time"

// BaseModel is gorm.Model without DeletedAt: deletes in this API are
// hard deletes, and unique indexes must only ever see live rows.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
