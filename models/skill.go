package models

import "time"

// Skill represents a single skill entry on a 1-5 proficiency scale.
// Skills carry no updated_at column; edits do not track modification time.
type Skill struct {
	ID               uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name             string    `json:"name" db:"name" gorm:"type:text;not null"`
	Category         string    `json:"category" db:"category" gorm:"type:text;not null"`
	ProficiencyLevel int       `json:"proficiency_level" db:"proficiency_level" gorm:"column:proficiency_level;not null"`
	CreatedAt        time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}
