package database

import (
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *ContactMessageRepo) GetDB() *gorm.DB {
	return r.db
}

// FindAll returns every contact message, newest first. Messages are an
// append-only log; there is no update or delete.
func (r *ContactMessageRepo) FindAll() ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

// Add inserts a new contact message into the database
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	message.CreatedAt = time.Now().UTC()
	return r.db.Create(message).Error
}
