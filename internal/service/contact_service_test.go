package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"contactbook/internal/apperrors"
	"contactbook/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) Update(ctx context.Context, ownerID, id uint64, upd model.ContactUpdate) (*model.Contact, error) {
	args := m.Called(ctx, ownerID, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) Delete(ctx context.Context, ownerID, id uint64) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func TestContactService_Create(t *testing.T) {
	tests := []struct {
		name          string
		contactName   string
		setupMock     func(*MockContactRepository)
		expectedError error
	}{
		{
			name:        "successful creation",
			contactName: "Bob",
			setupMock: func(m *MockContactRepository) {
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "missing name",
			contactName:   "",
			setupMock:     func(m *MockContactRepository) {},
			expectedError: apperrors.ErrNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockContactRepository)
			tt.setupMock(mockRepo)

			svc := NewContactService(mockRepo)
			contact, err := svc.Create(context.Background(), 7, tt.contactName, "555", "bob@x.com")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, contact)
			} else {
				require.NoError(t, err)
				require.NotNil(t, contact)
				assert.Equal(t, uint64(7), contact.OwnerID)
				assert.Equal(t, tt.contactName, contact.Name)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestContactService_UpdateRejectsEmptyName(t *testing.T) {
	mockRepo := new(MockContactRepository)
	svc := NewContactService(mockRepo)

	empty := ""
	_, err := svc.Update(context.Background(), 7, 1, model.ContactUpdate{Name: &empty})

	assert.ErrorIs(t, err, apperrors.ErrNameRequired)
	mockRepo.AssertExpectations(t)
}

func TestContactService_UpdatePassesOwnerScope(t *testing.T) {
	mockRepo := new(MockContactRepository)
	phone := "555"
	upd := model.ContactUpdate{Phone: &phone}
	mockRepo.On("Update", mock.Anything, uint64(7), uint64(3), upd).
		Return(&model.Contact{ID: 3, OwnerID: 7, Name: "Bob", Phone: "555"}, nil)

	svc := NewContactService(mockRepo)
	contact, err := svc.Update(context.Background(), 7, 3, upd)

	require.NoError(t, err)
	assert.Equal(t, "555", contact.Phone)
	mockRepo.AssertExpectations(t)
}

func TestContactService_DeletePassesOwnerScope(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Delete", mock.Anything, uint64(7), uint64(3)).Return(apperrors.ErrContactNotFound)

	svc := NewContactService(mockRepo)
	err := svc.Delete(context.Background(), 7, 3)

	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
	mockRepo.AssertExpectations(t)
}
