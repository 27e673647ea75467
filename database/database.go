package database

import (
	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo        *ProjectRepo
	skillRepo          *SkillRepo
	contactMessageRepo *ContactMessageRepo
	profileRepo        *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo:        NewProjectRepo(db),
		skillRepo:          NewSkillRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		profileRepo:        NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

// Migrate creates or updates the schema for every entity table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.ContactMessage{},
		&models.Profile{},
	)
}
