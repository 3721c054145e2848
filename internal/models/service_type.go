package models

// ServiceType is a catalog entry shared by every shop. Rows are never soft-deleted.
type ServiceType struct {
	Base

	Title       string `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Description string `gorm:"size:255" json:"description"`
	LogoURL     string `gorm:"size:512" json:"logoUrl"`
}
