package payment

import (
	"context"
	"errors"
	"time"

	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/customer"
	"github.com/stripe/stripe-go/v82/ephemeralkey"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/paymentmethod"
	"github.com/stripe/stripe-go/v82/refund"
	"github.com/stripe/stripe-go/v82/setupintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	// EphemeralKeyAPIVersion must match the version the mobile and web SDKs
	// were built against.
	EphemeralKeyAPIVersion = "2023-08-16"

	listPageSize = 100
)

type StripePaymentProvider struct {
	webhookSecret string
}

func NewStripePaymentProvider(secretKey, webhookSecret string) *StripePaymentProvider {
	stripe.Key = secretKey

	return &StripePaymentProvider{
		webhookSecret: webhookSecret,
	}
}

func (s *StripePaymentProvider) FindCustomersByEmail(ctx context.Context, email string) ([]*stripe.Customer, error) {
	defer observe("customers.list", time.Now())

	params := &stripe.CustomerListParams{
		Email: stripe.String(email),
	}
	params.Context = ctx

	var customers []*stripe.Customer

	i := customer.List(params)
	for i.Next() {
		customers = append(customers, i.Customer())
	}

	if err := i.Err(); err != nil {
		return nil, wrapStripeError(err)
	}

	return customers, nil
}

func (s *StripePaymentProvider) CreateCustomer(ctx context.Context, c domain.NewCustomer) (*stripe.Customer, error) {
	defer observe("customers.create", time.Now())

	params := &stripe.CustomerParams{
		Name:  stripe.String(c.Name),
		Email: stripe.String(c.Email),
	}
	params.Context = ctx
	params.AddMetadata(domain.MetadataKeyFirstLesson, c.FirstLesson)

	created, err := customer.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return created, nil
}

func (s *StripePaymentProvider) UpdateCustomer(
	ctx context.Context,
	customerID string,
	update domain.CustomerUpdate) (*stripe.Customer, error) {

	defer observe("customers.update", time.Now())

	params := &stripe.CustomerParams{}
	params.Context = ctx

	if update.Name != "" {
		params.Name = stripe.String(update.Name)
	}
	if update.Email != "" {
		params.Email = stripe.String(update.Email)
	}
	for k, v := range update.Metadata {
		params.AddMetadata(k, v)
	}
	if update.DefaultPaymentMethod != "" {
		params.InvoiceSettings = &stripe.CustomerInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(update.DefaultPaymentMethod),
		}
	}

	updated, err := customer.Update(customerID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return updated, nil
}

func (s *StripePaymentProvider) DeleteCustomer(ctx context.Context, customerID string) (*stripe.Customer, error) {
	defer observe("customers.delete", time.Now())

	params := &stripe.CustomerParams{}
	params.Context = ctx

	deleted, err := customer.Del(customerID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return deleted, nil
}

func (s *StripePaymentProvider) CreateEphemeralKey(ctx context.Context, customerID string) (*stripe.EphemeralKey, error) {
	defer observe("ephemeral_keys.create", time.Now())

	params := &stripe.EphemeralKeyParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(EphemeralKeyAPIVersion),
	}
	params.Context = ctx

	key, err := ephemeralkey.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return key, nil
}

func (s *StripePaymentProvider) CreateSetupIntent(ctx context.Context, customerID string) (*stripe.SetupIntent, error) {
	defer observe("setup_intents.create", time.Now())

	params := &stripe.SetupIntentParams{
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.SetupIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	si, err := setupintent.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return si, nil
}

func (s *StripePaymentProvider) ListCardPaymentMethods(ctx context.Context, customerID string) ([]*stripe.PaymentMethod, error) {
	defer observe("payment_methods.list", time.Now())

	params := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}
	params.Context = ctx

	var methods []*stripe.PaymentMethod

	i := paymentmethod.List(params)
	for i.Next() {
		methods = append(methods, i.PaymentMethod())
	}

	if err := i.Err(); err != nil {
		return nil, wrapStripeError(err)
	}

	return methods, nil
}

func (s *StripePaymentProvider) GetPaymentMethod(ctx context.Context, paymentMethodID string) (*stripe.PaymentMethod, error) {
	defer observe("payment_methods.retrieve", time.Now())

	params := &stripe.PaymentMethodParams{}
	params.Context = ctx

	pm, err := paymentmethod.Get(paymentMethodID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return pm, nil
}

func (s *StripePaymentProvider) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	defer observe("payment_methods.detach", time.Now())

	params := &stripe.PaymentMethodDetachParams{}
	params.Context = ctx

	_, err := paymentmethod.Detach(paymentMethodID, params)
	if err != nil {
		return wrapStripeError(err)
	}

	return nil
}

func (s *StripePaymentProvider) UpdatePaymentMethodBilling(
	ctx context.Context,
	paymentMethodID string,
	billing domain.BillingDetails) (*stripe.PaymentMethod, error) {

	defer observe("payment_methods.update", time.Now())

	details := &stripe.PaymentMethodBillingDetailsParams{}
	if billing.Email != "" {
		details.Email = stripe.String(billing.Email)
	}
	if billing.Name != "" {
		details.Name = stripe.String(billing.Name)
	}

	params := &stripe.PaymentMethodParams{
		BillingDetails: details,
	}
	params.Context = ctx

	pm, err := paymentmethod.Update(paymentMethodID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return pm, nil
}

func (s *StripePaymentProvider) CreateLessonPaymentIntent(
	ctx context.Context,
	lesson domain.NewLessonPayment) (*stripe.PaymentIntent, error) {

	defer observe("payment_intents.create", time.Now())

	params := &stripe.PaymentIntentParams{
		Customer:           stripe.String(lesson.CustomerID),
		Amount:             stripe.Int64(lesson.AmountCents),
		Currency:           stripe.String(domain.LessonCurrency),
		Description:        stripe.String(lesson.Description),
		PaymentMethodTypes: stripe.StringSlice([]string{string(stripe.PaymentMethodTypeCard)}),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx
	params.AddMetadata(domain.MetadataKeyPaymentType, domain.LessonPaymentType)

	if lesson.IdempotencyKey != "" {
		params.SetIdempotencyKey(lesson.IdempotencyKey)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return pi, nil
}

func (s *StripePaymentProvider) ConfirmPaymentIntent(
	ctx context.Context,
	paymentIntentID, paymentMethodID string) (*stripe.PaymentIntent, error) {

	defer observe("payment_intents.confirm", time.Now())

	params := &stripe.PaymentIntentConfirmParams{
		PaymentMethod: stripe.String(paymentMethodID),
	}
	params.Context = ctx

	pi, err := paymentintent.Confirm(paymentIntentID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return pi, nil
}

func (s *StripePaymentProvider) CapturePaymentIntent(
	ctx context.Context,
	paymentIntentID string,
	amount *int64) (*stripe.PaymentIntent, error) {

	defer observe("payment_intents.capture", time.Now())

	params := &stripe.PaymentIntentCaptureParams{}
	params.Context = ctx

	if amount != nil {
		params.AmountToCapture = stripe.Int64(*amount)
	}

	pi, err := paymentintent.Capture(paymentIntentID, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return pi, nil
}

func (s *StripePaymentProvider) CreateRefund(ctx context.Context, paymentIntentID string, amount *int64) (*stripe.Refund, error) {
	defer observe("refunds.create", time.Now())

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	params.Context = ctx
	params.AddExpand("charge")

	if amount != nil {
		params.Amount = stripe.Int64(*amount)
	}

	r, err := refund.New(params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return r, nil
}

func (s *StripePaymentProvider) ListCustomerPaymentIntents(ctx context.Context, customerID string) ([]*stripe.PaymentIntent, error) {
	defer observe("payment_intents.list", time.Now())

	params := &stripe.PaymentIntentListParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(listPageSize)

	return collectPaymentIntents(paymentintent.List(params))
}

// ListPaymentIntentsSince walks every page of intents created at or after
// since. Pages are fetched one after another since each cursor is the last id
// of the previous page.
func (s *StripePaymentProvider) ListPaymentIntentsSince(
	ctx context.Context,
	since time.Time,
	expand ...string) ([]*stripe.PaymentIntent, error) {

	defer observe("payment_intents.list", time.Now())

	params := &stripe.PaymentIntentListParams{
		CreatedRange: &stripe.RangeQueryParams{
			GreaterThanOrEqual: since.Unix(),
		},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(listPageSize)

	for _, e := range expand {
		params.AddExpand(e)
	}

	return collectPaymentIntents(paymentintent.List(params))
}

func collectPaymentIntents(i *paymentintent.Iter) ([]*stripe.PaymentIntent, error) {
	var intents []*stripe.PaymentIntent

	for i.Next() {
		intents = append(intents, i.PaymentIntent())
	}

	if err := i.Err(); err != nil {
		return nil, wrapStripeError(err)
	}

	return intents, nil
}

func (s *StripePaymentProvider) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, errors.Join(domain.ErrInvalidWebhookEvent, err)
	}

	return event, nil
}
