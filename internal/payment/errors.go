package payment

import (
	"errors"

	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// wrapStripeError converts errors reported by the Stripe API into
// domain.ProviderError. Transport errors are returned as they are.
func wrapStripeError(err error) error {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return err
	}

	code := string(stripeErr.Code)
	if code == "" {
		code = string(stripeErr.Type)
	}

	return &domain.ProviderError{
		Code:       code,
		Message:    stripeErr.Msg,
		Type:       string(stripeErr.Type),
		HTTPStatus: stripeErr.HTTPStatusCode,
		Err:        err,
	}
}
