package domain

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v82"
)

// PaymentProvider is the subset of the payments platform the checkout flow
// forwards to. Implementations return *ProviderError for errors reported by the
// platform itself.
type PaymentProvider interface {
	FindCustomersByEmail(ctx context.Context, email string) ([]*stripe.Customer, error)
	CreateCustomer(ctx context.Context, customer NewCustomer) (*stripe.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, update CustomerUpdate) (*stripe.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) (*stripe.Customer, error)

	CreateEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error)
	CreateSetupIntent(ctx context.Context, customerID string) (*stripe.SetupIntent, error)

	ListCardPaymentMethods(ctx context.Context, customerID string) ([]*stripe.PaymentMethod, error)
	GetPaymentMethod(ctx context.Context, paymentMethodID string) (*stripe.PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
	UpdatePaymentMethodBilling(ctx context.Context, paymentMethodID string, billing BillingDetails) (*stripe.PaymentMethod, error)

	CreateLessonPaymentIntent(ctx context.Context, lesson NewLessonPayment) (*stripe.PaymentIntent, error)
	ConfirmPaymentIntent(ctx context.Context, paymentIntentID, paymentMethodID string) (*stripe.PaymentIntent, error)
	CapturePaymentIntent(ctx context.Context, paymentIntentID string, amount *int64) (*stripe.PaymentIntent, error)
	CreateRefund(ctx context.Context, paymentIntentID string, amount *int64) (*stripe.Refund, error)

	ListCustomerPaymentIntents(ctx context.Context, customerID string) ([]*stripe.PaymentIntent, error)
	ListPaymentIntentsSince(ctx context.Context, since time.Time, expand ...string) ([]*stripe.PaymentIntent, error)

	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
}
