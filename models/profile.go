package models

import "time"

// Profile holds the single "about me" record. The table is expected to hold
// at most one canonical row; when several exist the lowest id wins.
type Profile struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Bio         string    `json:"bio" db:"bio" gorm:"type:text;not null"`
	Location    *string   `json:"location" db:"location" gorm:"type:text"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	Phone       *string   `json:"phone" db:"phone" gorm:"type:text"`
	LinkedinURL *string   `json:"linkedin_url" db:"linkedin_url" gorm:"column:linkedin_url;type:text"`
	GithubURL   *string   `json:"github_url" db:"github_url" gorm:"column:github_url;type:text"`
	TwitterURL  *string   `json:"twitter_url" db:"twitter_url" gorm:"column:twitter_url;type:text"`
	WebsiteURL  *string   `json:"website_url" db:"website_url" gorm:"column:website_url;type:text"`
	AvatarURL   *string   `json:"avatar_url" db:"avatar_url" gorm:"column:avatar_url;type:text"`
	ResumeURL   *string   `json:"resume_url" db:"resume_url" gorm:"column:resume_url;type:text"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// TableName keeps the singular table name for the singleton profile row.
func (Profile) TableName() string {
	return "profile"
}
