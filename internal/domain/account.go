package domain

import "github.com/stripe/stripe-go/v82"

// UncapturedPaymentIntentIDs returns the ids of the intents that hold
// authorized funds not captured yet. A customer with any of them must not be
// deleted.
func UncapturedPaymentIntentIDs(intents []*stripe.PaymentIntent) []string {
	var ids []string

	for _, pi := range intents {
		if pi.Status == stripe.PaymentIntentStatusRequiresCapture {
			ids = append(ids, pi.ID)
		}
	}

	return ids
}
