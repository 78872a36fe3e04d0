package mocks

import (
	"context"

	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockLessonPaymentRepo struct {
	mock.Mock
	domain.LessonPaymentRepository
}

func (m *MockLessonPaymentRepo) Create(ctx context.Context, payment *domain.LessonPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockLessonPaymentRepo) UpdateStatus(
	ctx context.Context,
	paymentIntentID string,
	status domain.LessonPaymentStatus,
) error {
	args := m.Called(ctx, paymentIntentID, status)
	return args.Error(0)
}

func (m *MockLessonPaymentRepo) GetByCustomerID(ctx context.Context, customerID string) ([]domain.LessonPayment, error) {
	args := m.Called(ctx, customerID)
	payments, _ := args.Get(0).([]domain.LessonPayment)
	return payments, args.Error(1)
}

type MockEventStore struct {
	mock.Mock
	domain.EventStore
}

func (m *MockEventStore) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventStore) Release(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
