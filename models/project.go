package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project represents a portfolio project with its tech stack and links
type Project struct {
	ID           uint                        `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Technologies datatypes.JSONSlice[string] `json:"technologies" db:"technologies" gorm:"not null"`
	DemoLink     *string                     `json:"demo_link" db:"demo_link" gorm:"column:demo_link;type:text"`
	GithubLink   *string                     `json:"github_link" db:"github_link" gorm:"column:github_link;type:text"`
	ImageURL     *string                     `json:"image_url" db:"image_url" gorm:"column:image_url;type:text"`
	Featured     bool                        `json:"featured" db:"featured" gorm:"not null;default:false"`
	CreatedAt    time.Time                   `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt    time.Time                   `json:"updated_at" db:"updated_at" gorm:"not null"`
}
