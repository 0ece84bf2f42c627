package models

import "time"

// ProjectFramework is the join table behind the Project <-> Framework
// many-to-many relation. It is registered with SetupJoinTable so the
// composite primary key rejects duplicate associations at the database
// level.
type ProjectFramework struct {
	ProjectID   uint `gorm:"primaryKey"`
	FrameworkID uint `gorm:"primaryKey"`
	CreatedAt   time.Time
}
