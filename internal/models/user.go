package models

type User struct {
	BaseModel
	Name         string   `json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	Profile *Profile `gorm:"foreignKey:StudentID" json:"profile,omitempty"`
}

// PublicUser is the password-free projection returned wherever a user
// record crosses the API boundary (auth responses, applicant listings).
type PublicUser struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
