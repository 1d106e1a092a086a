package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/model"
	"arbejdstid/internal/repository"
)

// SubmitInput is the validated change-request form. Date, Start and End are
// required; the pause fields may be empty.
type SubmitInput struct {
	Date       string
	Start      string
	End        string
	PauseStart string
	PauseEnd   string
}

// ScheduleService manages the change-request log.
type ScheduleService interface {
	Submit(ctx context.Context, userID uint, in SubmitInput) (*model.ChangeRequest, error)
	List(ctx context.Context, userID uint) ([]model.ChangeRequest, error)
	Delete(ctx context.Context, id, callerID uint) error
}

type scheduleService struct {
	changeRepo repository.ChangeRequestRepository
	// strictOwnership turns on the corrected delete behavior. The system
	// this replaces deleted any id an authenticated user asked for.
	strictOwnership bool
}

// NewScheduleService creates a new schedule service.
func NewScheduleService(changeRepo repository.ChangeRequestRepository, strictOwnership bool) ScheduleService {
	return &scheduleService{changeRepo: changeRepo, strictOwnership: strictOwnership}
}

// Submit stores a new change request after checking the required fields.
// Nothing is written when any of date/start/end is missing.
func (s *scheduleService) Submit(ctx context.Context, userID uint, in SubmitInput) (*model.ChangeRequest, error) {
	if in.Date == "" || in.Start == "" || in.End == "" {
		return nil, apperrors.ErrMissingFields
	}

	req := &model.ChangeRequest{
		Date:       in.Date,
		Start:      in.Start,
		End:        in.End,
		PauseStart: in.PauseStart,
		PauseEnd:   in.PauseEnd,
		UserID:     userID,
	}
	if err := s.changeRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create change request: %w", err)
	}
	return req, nil
}

// List returns the user's change requests in insertion order.
func (s *scheduleService) List(ctx context.Context, userID uint) ([]model.ChangeRequest, error) {
	return s.changeRepo.ListByUser(ctx, userID)
}

// Delete removes a change request by id. By default no ownership check is
// performed; with strict ownership enabled, deleting another user's request
// fails with ErrNotOwner and a missing row with ErrNotFound.
func (s *scheduleService) Delete(ctx context.Context, id, callerID uint) error {
	if s.strictOwnership {
		req, err := s.changeRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("load change request: %w", err)
		}
		if req.UserID != callerID {
			return apperrors.ErrNotOwner
		}
	}
	return s.changeRepo.Delete(ctx, id)
}
