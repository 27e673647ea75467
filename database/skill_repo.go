package database

import (
	"errors"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *SkillRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all skills ordered by category (lexical, ascending) and by
// proficiency descending within each category, so callers can group by
// category with the strongest entries surfacing first.
func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("category ASC, proficiency_level DESC").Find(&skills).Error
	return skills, err
}

// FindByID returns a skill by its ID, or nil when no row matches.
func (r *SkillRepo) FindByID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

// Add inserts a new skill into the database
func (r *SkillRepo) Add(skill *models.Skill) error {
	skill.CreatedAt = time.Now().UTC()
	return r.db.Create(skill).Error
}

// UpdateFields applies a partial patch to a skill. Skills have no modified
// timestamp, so an empty patch is a no-op returning the stored row as-is.
// Returns nil when no row with that id exists.
func (r *SkillRepo) UpdateFields(id uint, fields map[string]any) (*models.Skill, error) {
	skill, err := r.FindByID(id)
	if err != nil || skill == nil {
		return nil, err
	}
	if len(fields) == 0 {
		return skill, nil
	}

	if err := r.db.Model(&models.Skill{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a skill by id, reporting whether a row existed.
func (r *SkillRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Skill{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
