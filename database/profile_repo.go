package database

import (
	"errors"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Placeholder values used when the first upsert creates the profile row
// without supplying every required field.
const (
	defaultProfileName  = "Default Name"
	defaultProfileTitle = "Default Title"
	defaultProfileBio   = "Default Bio"
	defaultProfileEmail = "default@example.com"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProfileRepo) GetDB() *gorm.DB {
	return r.db
}

// First returns the canonical profile row, or nil when the table is empty.
// "First" is deterministic: the lowest id wins when several rows exist.
func (r *ProfileRepo) First() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Order("id ASC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert patches the canonical profile row with the supplied columns,
// creating the row when the table is empty. Missing required columns on
// creation fall back to placeholder defaults, missing optional columns to
// NULL. On patch, only supplied columns change (nil writes NULL) and
// updated_at always refreshes. The read-then-write runs in one transaction
// with a row lock so concurrent patches serialize; a creation race can at
// worst insert an extra row, which the lowest-id rule keeps harmless.
func (r *ProfileRepo) Upsert(fields map[string]any) (*models.Profile, error) {
	var result models.Profile

	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Order("id ASC")
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var existing models.Profile
		err := query.First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fresh := newProfileFromFields(fields)
			if err := tx.Create(fresh).Error; err != nil {
				return err
			}
			result = *fresh
			return nil
		}
		if err != nil {
			return err
		}

		patch := make(map[string]any, len(fields)+1)
		for column, value := range fields {
			patch[column] = value
		}
		patch["updated_at"] = time.Now().UTC()

		if err := tx.Model(&models.Profile{}).Where("id = ?", existing.ID).Updates(patch).Error; err != nil {
			return err
		}
		return tx.First(&result, existing.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func newProfileFromFields(fields map[string]any) *models.Profile {
	return &models.Profile{
		Name:        stringOrDefault(fields, "name", defaultProfileName),
		Title:       stringOrDefault(fields, "title", defaultProfileTitle),
		Bio:         stringOrDefault(fields, "bio", defaultProfileBio),
		Email:       stringOrDefault(fields, "email", defaultProfileEmail),
		Location:    optionalString(fields, "location"),
		Phone:       optionalString(fields, "phone"),
		LinkedinURL: optionalString(fields, "linkedin_url"),
		GithubURL:   optionalString(fields, "github_url"),
		TwitterURL:  optionalString(fields, "twitter_url"),
		WebsiteURL:  optionalString(fields, "website_url"),
		AvatarURL:   optionalString(fields, "avatar_url"),
		ResumeURL:   optionalString(fields, "resume_url"),
		UpdatedAt:   time.Now().UTC(),
	}
}

func stringOrDefault(fields map[string]any, column, fallback string) string {
	if v, ok := fields[column].(string); ok {
		return v
	}
	return fallback
}

func optionalString(fields map[string]any, column string) *string {
	if v, ok := fields[column].(string); ok {
		return &v
	}
	return nil
}
