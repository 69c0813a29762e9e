package repository

import (
	"context"

	"portfolio/internal/domain"

	"gorm.io/gorm"
)

type ContactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// MarkEmailSent flips the email_sent flag after the owner notification
// went out. It is the only mutation contact messages ever receive.
func (r *ContactMessageRepository) MarkEmailSent(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.ContactMessage{}).
		Where("id = ?", id).
		Update("email_sent", 1).Error
}

func (r *ContactMessageRepository) GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
