package database

import (
	"errors"
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ProjectRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns all projects, featured ones first, newest first within
// each group. This is a single two-key sort, not a filter.
func (r *ProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("featured DESC, created_at DESC").Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row matches.
// Absence is a valid outcome, not an error.
func (r *ProjectRepo) FindByID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project. created_at and updated_at are stamped with the
// same instant.
func (r *ProjectRepo) Add(project *models.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now
	return r.db.Create(project).Error
}

// UpdateFields applies a partial patch to a project. Only columns present in
// the map change; a nil map value writes NULL. updated_at is refreshed on
// every call, even when the patch is otherwise empty. Returns nil when no
// row with that id exists.
func (r *ProjectRepo) UpdateFields(id uint, fields map[string]any) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil || project == nil {
		return nil, err
	}

	patch := make(map[string]any, len(fields)+1)
	for column, value := range fields {
		patch[column] = value
	}
	patch["updated_at"] = time.Now().UTC()

	if err := r.db.Model(&models.Project{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a project by id. Returns true when a row existed and was
// removed, false when there was nothing to delete.
func (r *ProjectRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
