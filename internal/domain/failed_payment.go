package domain

import (
	"sort"

	"github.com/stripe/stripe-go/v82"
)

type FailedPayment struct {
	CustomerID    string
	CustomerEmail string
	CustomerName  string

	Created     int64
	Description string
	Status      string
	Error       string

	CardBrand string
	CardLast4 string
}

// LatestFailedIntents keeps the most recent intent of every customer and
// returns those whose last attempt failed, newest first.
func LatestFailedIntents(intents []*stripe.PaymentIntent) []*stripe.PaymentIntent {
	latest := make(map[string]*stripe.PaymentIntent)

	for _, pi := range intents {
		if pi.Customer == nil || pi.Customer.ID == "" {
			continue
		}

		current, ok := latest[pi.Customer.ID]
		if !ok || pi.Created > current.Created {
			latest[pi.Customer.ID] = pi
		}
	}

	var failed []*stripe.PaymentIntent
	for _, pi := range latest {
		if pi.Status == stripe.PaymentIntentStatusRequiresPaymentMethod {
			failed = append(failed, pi)
		}
	}

	sort.Slice(failed, func(i, j int) bool {
		if failed[i].Created == failed[j].Created {
			return failed[i].ID < failed[j].ID
		}
		return failed[i].Created > failed[j].Created
	})

	return failed
}

// FailedPaymentsWithCardOnFile builds the report entries for the failed intents
// whose card is still the one the customer has on file. cardOnFile maps a
// customer id to the id of its current card.
func FailedPaymentsWithCardOnFile(failed []*stripe.PaymentIntent, cardOnFile map[string]string) []FailedPayment {
	payments := make([]FailedPayment, 0, len(failed))

	for _, pi := range failed {
		if pi.Customer == nil {
			continue
		}

		used := UsedPaymentMethodID(pi)
		if used == "" || cardOnFile[pi.Customer.ID] != used {
			continue
		}

		payments = append(payments, NewFailedPayment(pi))
	}

	return payments
}

// UsedPaymentMethodID returns the id of the payment method the last attempt of
// pi was made with.
func UsedPaymentMethodID(pi *stripe.PaymentIntent) string {
	switch {
	case pi.LastPaymentError != nil && pi.LastPaymentError.PaymentMethod != nil:
		return pi.LastPaymentError.PaymentMethod.ID
	case pi.LatestCharge != nil && pi.LatestCharge.PaymentMethod != "":
		return pi.LatestCharge.PaymentMethod
	case pi.PaymentMethod != nil:
		return pi.PaymentMethod.ID
	default:
		return ""
	}
}

func NewFailedPayment(pi *stripe.PaymentIntent) FailedPayment {
	payment := FailedPayment{
		Created:     pi.Created,
		Description: pi.Description,
		Status:      string(pi.Status),
	}

	if pi.Customer != nil {
		payment.CustomerID = pi.Customer.ID
		payment.CustomerEmail = pi.Customer.Email
		payment.CustomerName = pi.Customer.Name
	}

	if pi.LastPaymentError != nil {
		payment.Error = string(pi.LastPaymentError.Code)
	}

	if charge := pi.LatestCharge; charge != nil {
		payment.Status = string(charge.Status)

		if charge.Outcome != nil && charge.Outcome.Type != "" {
			payment.Error = string(charge.Outcome.Type)
		}

		if details := charge.PaymentMethodDetails; details != nil && details.Card != nil {
			payment.CardBrand = string(details.Card.Brand)
			payment.CardLast4 = details.Card.Last4
		}
	}

	if payment.CardLast4 == "" {
		if card := paymentMethodCard(pi); card != nil {
			payment.CardBrand = string(card.Brand)
			payment.CardLast4 = card.Last4
		}
	}

	return payment
}

func paymentMethodCard(pi *stripe.PaymentIntent) *stripe.PaymentMethodCard {
	if pi.LastPaymentError != nil && pi.LastPaymentError.PaymentMethod != nil {
		return pi.LastPaymentError.PaymentMethod.Card
	}

	if pi.PaymentMethod != nil {
		return pi.PaymentMethod.Card
	}

	return nil
}
