package repository

import (
	"context"

	"gorm.io/gorm"

	"arbejdstid/internal/model"
)

// ChangeRequestRepository defines change-request persistence operations.
type ChangeRequestRepository interface {
	Create(ctx context.Context, req *model.ChangeRequest) error
	FindByID(ctx context.Context, id uint) (*model.ChangeRequest, error)
	ListByUser(ctx context.Context, userID uint) ([]model.ChangeRequest, error)
	Delete(ctx context.Context, id uint) error
}

type changeRequestRepository struct {
	db *gorm.DB
}

// NewChangeRequestRepository builds a GORM-backed repository.
func NewChangeRequestRepository(db *gorm.DB) ChangeRequestRepository {
	return &changeRequestRepository{db: db}
}

func (r *changeRequestRepository) Create(ctx context.Context, req *model.ChangeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *changeRequestRepository) FindByID(ctx context.Context, id uint) (*model.ChangeRequest, error) {
	var req model.ChangeRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListByUser returns the user's change requests in insertion order,
// unfiltered by date.
func (r *changeRequestRepository) ListByUser(ctx context.Context, userID uint) ([]model.ChangeRequest, error) {
	var reqs []model.ChangeRequest
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// Delete removes a change request by primary key. Ownership policy lives in
// the service layer.
func (r *changeRequestRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ChangeRequest{}, id).Error
}
