package models

type Project struct {
	BaseModel

	Title       string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
	Link        string `gorm:"not null"`
	// AssetRef is the opaque locator of the stored cover image.
	AssetRef string `gorm:"not null"`

	// Relationships
	Frameworks []Framework `gorm:"many2many:project_frameworks;"`
}
