package repository

import (
	"context"

	"gorm.io/gorm"

	"arbejdstid/internal/model"
)

// WorkRecordRepository defines work-record persistence operations.
type WorkRecordRepository interface {
	Create(ctx context.Context, record *model.WorkRecord) error
	ListByUser(ctx context.Context, userID uint) ([]model.WorkRecord, error)
}

type workRecordRepository struct {
	db *gorm.DB
}

// NewWorkRecordRepository builds a GORM-backed repository.
func NewWorkRecordRepository(db *gorm.DB) WorkRecordRepository {
	return &workRecordRepository{db: db}
}

func (r *workRecordRepository) Create(ctx context.Context, record *model.WorkRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser returns every record for the user in insertion order. Period
// filtering happens in the service layer, where the stored date strings are
// parsed to real dates before comparison.
func (r *workRecordRepository) ListByUser(ctx context.Context, userID uint) ([]model.WorkRecord, error) {
	var records []model.WorkRecord
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
