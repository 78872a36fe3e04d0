package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrCustomerEmailExists = errors.New("customer email already exists")
	ErrNoPaymentMethods    = errors.New("no payment methods found")
	ErrInvalidWebhookEvent = errors.New("invalid webhook event")
	ErrLessonPaymentExists = errors.New("lesson payment already recorded")
)

const (
	ErrCodeResourceMissing = "resource_missing"
	ErrCodeNoPaymentMethod = "no_payment_method"

	// CustomerEmailExistsMessage is sent back with a 304 status when an email
	// is already taken by a customer.
	CustomerEmailExistsMessage = "Customer email already exists!"
)

// ProviderError is an error returned by the payments provider, reduced to the
// code and message the API hands back to clients.
type ProviderError struct {
	Code       string
	Message    string
	Type       string
	HTTPStatus int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment provider error [%s]: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("payment provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsResourceMissing reports whether err is a provider error for an object that
// does not exist.
func IsResourceMissing(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Code == ErrCodeResourceMissing
	}

	return false
}

// NoPaymentMethodsError builds the error returned when a customer has no card
// on file.
func NoPaymentMethodsError(customerID string) *ProviderError {
	return &ProviderError{
		Code:    ErrCodeNoPaymentMethod,
		Message: fmt.Sprintf("no payment methods found for %s", customerID),
		Err:     ErrNoPaymentMethods,
	}
}
