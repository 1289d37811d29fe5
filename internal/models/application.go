package models

import "time"

// Application links one student to one internship. The composite unique
// index is the duplicate guard: two concurrent applies for the same pair
// race at the database, not in handler code, and the loser gets a
// uniqueness violation.
type Application struct {
	BaseModel
	InternshipID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_pair" json:"internshipId"`
	StudentID    string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_pair" json:"studentId"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AppliedAt    time.Time         `gorm:"default:now()" json:"appliedAt"`

	// Relations
	Student    *User       `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Internship *Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
}
