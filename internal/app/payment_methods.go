package app

import (
	"net/http"

	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// GetCustomerCard returns the first card saved for the customer, or null when
// there is none.
func (app *application) GetCustomerCard(w http.ResponseWriter, r *http.Request, customerID string) {
	paymentMethods, err := app.paymentProvider.ListCardPaymentMethods(r.Context(), customerID)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("customer", customerID))
		return
	}

	var card *stripe.PaymentMethod
	if len(paymentMethods) > 0 {
		card = paymentMethods[0]
	}

	err = app.writeJSON(w, http.StatusOK, card, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetPaymentMethod(w http.ResponseWriter, r *http.Request, paymentMethodID string) {
	paymentMethod, err := app.paymentProvider.GetPaymentMethod(r.Context(), paymentMethodID)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("payment_method", paymentMethodID))
		return
	}

	err = app.writeJSON(w, http.StatusOK, paymentMethod, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// ReplacePaymentMethods keeps the designated card and detaches every other card
// of the customer, one at a time. The first failing detach ends the request.
func (app *application) ReplacePaymentMethods(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.UpdatePaymentMethodRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	paymentMethods, err := app.paymentProvider.ListCardPaymentMethods(r.Context(), input.CustomerId)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("customer", input.CustomerId))
		return
	}

	for _, pm := range paymentMethods {
		if pm.ID == input.NewPaymentMethod {
			continue
		}

		err = app.paymentProvider.DetachPaymentMethod(r.Context(), pm.ID)
		if err != nil {
			app.providerErrorResponse(w, r, err)
			return
		}

		logger.Info("detached payment method", "customer_id", input.CustomerId, "payment_method_id", pm.ID)
	}

	paymentMethod, err := app.paymentProvider.GetPaymentMethod(r.Context(), input.NewPaymentMethod)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("payment_method", input.NewPaymentMethod))
		return
	}

	err = app.writeJSON(w, http.StatusOK, paymentMethod, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// UpdatePaymentDetails copies the new name and email onto the card's billing
// details and the customer, and makes the card the customer's default.
func (app *application) UpdatePaymentDetails(w http.ResponseWriter, r *http.Request, customerID string) {
	var input api.UpdatePaymentDetailsRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	if input.Email != "" {
		taken, err := app.emailTakenByOtherCustomer(r, string(input.Email), customerID)
		if err != nil {
			app.providerErrorResponse(w, r, err)
			return
		}

		if taken {
			app.emailConflictResponse(w, r)
			return
		}
	}

	paymentMethodID := input.PaymentMethod

	billing := domain.BillingDetails{
		Name:  input.Name,
		Email: string(input.Email),
	}

	if !billing.IsEmpty() {
		paymentMethod, err := app.paymentProvider.UpdatePaymentMethodBilling(r.Context(), paymentMethodID, billing)
		if err != nil {
			app.providerErrorResponse(w, r, err, withMissingResource("payment_method", paymentMethodID))
			return
		}

		paymentMethodID = paymentMethod.ID
	}

	customer, err := app.paymentProvider.UpdateCustomer(r.Context(), customerID, domain.CustomerUpdate{
		Name:                 input.Name,
		Email:                string(input.Email),
		Metadata:             input.Metadata,
		DefaultPaymentMethod: paymentMethodID,
	})
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("customer", customerID))
		return
	}

	app.rememberCustomer(r, customer)

	err = app.writeJSON(w, http.StatusOK, customer, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
