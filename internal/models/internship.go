package models

import "time"

type Location struct {
	City  string `gorm:"not null" json:"city"`
	State string `gorm:"not null" json:"state"`
}

type Internship struct {
	BaseModel
	CompanyID string    `gorm:"type:uuid;not null;index" json:"companyId"`
	Title     string    `gorm:"not null" json:"title"`
	Sector    string    `gorm:"not null" json:"sector"`
	Openings  int       `gorm:"not null" json:"openings"`
	Location  Location  `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Deadline  time.Time `gorm:"not null" json:"deadline"`

	// Relations
	Company *User `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

// LocationCount is the aggregation row for the count-by-location report.
type LocationCount struct {
	City             string `json:"city"`
	State            string `json:"state"`
	TotalInternships int64  `json:"totalInternships"`
}
