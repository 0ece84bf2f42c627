package models

// Message is an inbound contact-form entry. Write-only: nothing in the
// API updates or deletes these.
type Message struct {
	BaseModel

	Username string `gorm:"not null"`
	Email    string `gorm:"not null"`
	Mobile   string `gorm:"not null"`
	Message  string `gorm:"not null"`
}
