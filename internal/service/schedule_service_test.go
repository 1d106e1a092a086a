package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "arbejdstid/internal/errors"
	"arbejdstid/internal/model"
)

// MockChangeRequestRepository is a mock implementation of ChangeRequestRepository.
type MockChangeRequestRepository struct {
	mock.Mock
}

func (m *MockChangeRequestRepository) Create(ctx context.Context, req *model.ChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) FindByID(ctx context.Context, id uint) (*model.ChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChangeRequest), args.Error(1)
}

func (m *MockChangeRequestRepository) ListByUser(ctx context.Context, userID uint) ([]model.ChangeRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ChangeRequest), args.Error(1)
}

func (m *MockChangeRequestRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestScheduleService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		input         SubmitInput
		expectedError error
	}{
		{
			name:  "all fields present",
			input: SubmitInput{Date: "2024-03-15", Start: "08:00", End: "16:00", PauseStart: "12:00", PauseEnd: "12:30"},
		},
		{
			name:  "pause fields optional",
			input: SubmitInput{Date: "2024-03-15", Start: "08:00", End: "16:00"},
		},
		{
			name:          "missing end writes nothing",
			input:         SubmitInput{Date: "2024-03-15", Start: "08:00"},
			expectedError: apperrors.ErrMissingFields,
		},
		{
			name:          "missing date writes nothing",
			input:         SubmitInput{Start: "08:00", End: "16:00"},
			expectedError: apperrors.ErrMissingFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockChangeRequestRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ChangeRequest")).Return(nil)
			}

			service := NewScheduleService(mockRepo, false)
			req, err := service.Submit(context.Background(), 7, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, req)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(7), req.UserID)
				assert.Equal(t, tt.input.Date, req.Date)
				assert.Equal(t, tt.input.PauseStart, req.PauseStart)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

// The default delete performs no ownership check: any authenticated caller
// can delete any id. This reproduces the behavior of the system this
// replaces; the strict variant below is the corrected design.
func TestScheduleService_DeleteWithoutOwnershipCheck(t *testing.T) {
	mockRepo := new(MockChangeRequestRepository)
	mockRepo.On("Delete", mock.Anything, uint(42)).Return(nil)

	service := NewScheduleService(mockRepo, false)
	err := service.Delete(context.Background(), 42, 7) // id 42 belongs to someone else

	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestScheduleService_DeleteStrictOwnership(t *testing.T) {
	tests := []struct {
		name          string
		callerID      uint
		setupMock     func(*MockChangeRequestRepository)
		expectedError error
	}{
		{
			name:     "owner may delete",
			callerID: 7,
			setupMock: func(m *MockChangeRequestRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(&model.ChangeRequest{ID: 42, UserID: 7}, nil)
				m.On("Delete", mock.Anything, uint(42)).Return(nil)
			},
		},
		{
			name:     "foreign record is refused",
			callerID: 8,
			setupMock: func(m *MockChangeRequestRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(&model.ChangeRequest{ID: 42, UserID: 7}, nil)
			},
			expectedError: apperrors.ErrNotOwner,
		},
		{
			name:     "missing record",
			callerID: 7,
			setupMock: func(m *MockChangeRequestRepository) {
				m.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockChangeRequestRepository)
			tt.setupMock(mockRepo)

			service := NewScheduleService(mockRepo, true)
			err := service.Delete(context.Background(), 42, tt.callerID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}
