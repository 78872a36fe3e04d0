package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
)

const (
	LessonCurrency         = "usd"
	MetadataKeyPaymentType = "type"
	LessonPaymentType      = "lessons-payment"
)

type NewLessonPayment struct {
	CustomerID     string
	AmountCents    int64
	Description    string
	IdempotencyKey string
}

type LessonPaymentStatus string

const (
	LessonStatusRequiresPaymentMethod LessonPaymentStatus = "requires_payment_method"
	LessonStatusRequiresConfirmation  LessonPaymentStatus = "requires_confirmation"
	LessonStatusRequiresAction        LessonPaymentStatus = "requires_action"
	LessonStatusProcessing            LessonPaymentStatus = "processing"
	LessonStatusRequiresCapture       LessonPaymentStatus = "requires_capture"
	LessonStatusSucceeded             LessonPaymentStatus = "succeeded"
	LessonStatusCanceled              LessonPaymentStatus = "canceled"
	LessonStatusRefunded              LessonPaymentStatus = "refunded"
)

// LessonPayment mirrors a lesson payment intent created by this service. The
// payments provider remains the source of truth.
type LessonPayment struct {
	ID              int
	PaymentIntentID string
	CustomerID      string
	Amount          decimal.Decimal
	Currency        string
	Description     string
	Status          LessonPaymentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewLessonPaymentFromIntent builds a ledger row from a provider payment intent.
func NewLessonPaymentFromIntent(pi *stripe.PaymentIntent) LessonPayment {
	payment := LessonPayment{
		PaymentIntentID: pi.ID,
		Amount:          CentsToDecimal(pi.Amount),
		Currency:        string(pi.Currency),
		Description:     pi.Description,
		Status:          LessonPaymentStatus(pi.Status),
	}

	if pi.Customer != nil {
		payment.CustomerID = pi.Customer.ID
	}

	return payment
}

func IsLessonPayment(pi *stripe.PaymentIntent) bool {
	return pi != nil && pi.Metadata[MetadataKeyPaymentType] == LessonPaymentType
}

// IsFullyRefunded reports whether nothing is left to refund on the charge.
func IsFullyRefunded(charge *stripe.Charge) bool {
	return charge != nil && charge.Refunded
}

func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

type LessonPaymentRepository interface {
	Create(ctx context.Context, payment *LessonPayment) error
	UpdateStatus(ctx context.Context, paymentIntentID string, status LessonPaymentStatus) error
	GetByCustomerID(ctx context.Context, customerID string) ([]LessonPayment, error)
}
