package models

type User struct {
	BaseModel

	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	Mobile       string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}
