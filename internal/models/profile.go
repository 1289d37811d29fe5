package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Profile is the one-to-one student extension. StudentID is the upsert
// key: saving twice overwrites.
type Profile struct {
	BaseModel
	StudentID     string         `gorm:"type:uuid;uniqueIndex;not null" json:"studentId"`
	Age           int            `gorm:"not null" json:"age"`
	Gender        Gender         `gorm:"type:varchar(10);not null" json:"gender"`
	Skills        datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Interests     datatypes.JSON `gorm:"type:jsonb" json:"interests"`
	GoalCompanies datatypes.JSON `gorm:"type:jsonb" json:"goalCompanies"`
	Bio           string         `json:"bio"`
	ResumeURL     string         `json:"resumeUrl,omitempty"`

	// Relations
	Student *User `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}

func (p *Profile) GetSkills() []string        { return decodeList(p.Skills) }
func (p *Profile) GetInterests() []string     { return decodeList(p.Interests) }
func (p *Profile) GetGoalCompanies() []string { return decodeList(p.GoalCompanies) }

func (p *Profile) SetSkills(items []string)        { p.Skills = encodeList(items) }
func (p *Profile) SetInterests(items []string)     { p.Interests = encodeList(items) }
func (p *Profile) SetGoalCompanies(items []string) { p.GoalCompanies = encodeList(items) }

func decodeList(raw datatypes.JSON) []string {
	var items []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &items)
	}
	return items
}

func encodeList(items []string) datatypes.JSON {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return datatypes.JSON(data)
}
