package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) FindCustomersByEmail(ctx context.Context, email string) ([]*stripe.Customer, error) {
	args := m.Called(ctx, email)
	customers, _ := args.Get(0).([]*stripe.Customer)
	return customers, args.Error(1)
}

func (m *MockPaymentProvider) CreateCustomer(ctx context.Context, customer domain.NewCustomer) (*stripe.Customer, error) {
	args := m.Called(ctx, customer)
	c, _ := args.Get(0).(*stripe.Customer)
	return c, args.Error(1)
}

func (m *MockPaymentProvider) UpdateCustomer(
	ctx context.Context,
	customerID string,
	update domain.CustomerUpdate,
) (*stripe.Customer, error) {
	args := m.Called(ctx, customerID, update)
	c, _ := args.Get(0).(*stripe.Customer)
	return c, args.Error(1)
}

func (m *MockPaymentProvider) DeleteCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	args := m.Called(ctx, customerID)
	c, _ := args.Get(0).(*stripe.Customer)
	return c, args.Error(1)
}

func (m *MockPaymentProvider) CreateEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error) {
	args := m.Called(ctx, customerID)
	key, _ := args.Get(0).(*stripe.EphemeralKey)
	return key, args.Error(1)
}

func (m *MockPaymentProvider) CreateSetupIntent(ctx context.Context, customerID string) (*stripe.SetupIntent, error) {
	args := m.Called(ctx, customerID)
	si, _ := args.Get(0).(*stripe.SetupIntent)
	return si, args.Error(1)
}

func (m *MockPaymentProvider) ListCardPaymentMethods(ctx context.Context, customerID string) ([]*stripe.PaymentMethod, error) {
	args := m.Called(ctx, customerID)
	pms, _ := args.Get(0).([]*stripe.PaymentMethod)
	return pms, args.Error(1)
}

func (m *MockPaymentProvider) GetPaymentMethod(ctx context.Context, paymentMethodID string) (*stripe.PaymentMethod, error) {
	args := m.Called(ctx, paymentMethodID)
	pm, _ := args.Get(0).(*stripe.PaymentMethod)
	return pm, args.Error(1)
}

func (m *MockPaymentProvider) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	args := m.Called(ctx, paymentMethodID)
	return args.Error(0)
}

func (m *MockPaymentProvider) UpdatePaymentMethodBilling(
	ctx context.Context,
	paymentMethodID string,
	billing domain.BillingDetails,
) (*stripe.PaymentMethod, error) {
	args := m.Called(ctx, paymentMethodID, billing)
	pm, _ := args.Get(0).(*stripe.PaymentMethod)
	return pm, args.Error(1)
}

func (m *MockPaymentProvider) CreateLessonPaymentIntent(
	ctx context.Context,
	lesson domain.NewLessonPayment,
) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, lesson)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockPaymentProvider) ConfirmPaymentIntent(
	ctx context.Context,
	paymentIntentID, paymentMethodID string,
) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID, paymentMethodID)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockPaymentProvider) CapturePaymentIntent(
	ctx context.Context,
	paymentIntentID string,
	amount *int64,
) (*stripe.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID, amount)
	pi, _ := args.Get(0).(*stripe.PaymentIntent)
	return pi, args.Error(1)
}

func (m *MockPaymentProvider) CreateRefund(ctx context.Context, paymentIntentID string, amount *int64) (*stripe.Refund, error) {
	args := m.Called(ctx, paymentIntentID, amount)
	refund, _ := args.Get(0).(*stripe.Refund)
	return refund, args.Error(1)
}

func (m *MockPaymentProvider) ListCustomerPaymentIntents(ctx context.Context, customerID string) ([]*stripe.PaymentIntent, error) {
	args := m.Called(ctx, customerID)
	intents, _ := args.Get(0).([]*stripe.PaymentIntent)
	return intents, args.Error(1)
}

func (m *MockPaymentProvider) ListPaymentIntentsSince(
	ctx context.Context,
	since time.Time,
	expand ...string,
) ([]*stripe.PaymentIntent, error) {
	args := m.Called(ctx, since, expand)
	intents, _ := args.Get(0).([]*stripe.PaymentIntent)
	return intents, args.Error(1)
}

func (m *MockPaymentProvider) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(stripe.Event), args.Error(1)
}
