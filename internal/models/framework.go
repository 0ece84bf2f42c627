package models

type Framework struct {
	BaseModel

	Name string `gorm:"uniqueIndex;not null"`
	// AssetRef is the opaque locator of the stored icon. Only the asset
	// store knows how to resolve or remove it.
	AssetRef string `gorm:"not null"`

	// Relationships
	Projects []Project `gorm:"many2many:project_frameworks;"`
}
