package app

import (
	"net/http"

	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
)

func (app *application) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var input api.AccountUpdateRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	if input.Email != "" {
		taken, err := app.emailTakenByOtherCustomer(r, string(input.Email), input.CustomerId)
		if err != nil {
			app.providerErrorResponse(w, r, err)
			return
		}

		if taken {
			app.emailConflictResponse(w, r)
			return
		}
	}

	customer, err := app.paymentProvider.UpdateCustomer(r.Context(), input.CustomerId, domain.CustomerUpdate{
		Name:  input.Name,
		Email: string(input.Email),
	})
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("customer", input.CustomerId))
		return
	}

	app.rememberCustomer(r, customer)

	err = app.writeJSON(w, http.StatusOK, customer, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteAccount deletes the customer unless one of its payments is still
// waiting to be captured. Those payments are returned instead.
func (app *application) DeleteAccount(w http.ResponseWriter, r *http.Request, customerID string) {
	logger := app.contextGetLogger(r)

	intents, err := app.paymentProvider.ListCustomerPaymentIntents(r.Context(), customerID)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("customer", customerID))
		return
	}

	uncaptured := domain.UncapturedPaymentIntentIDs(intents)
	if len(uncaptured) > 0 {
		logger.Info("refusing to delete customer with uncaptured payments",
			"customer_id", customerID,
			"uncaptured", len(uncaptured),
		)

		err = app.writeJSON(w, http.StatusOK, api.UncapturedPaymentsResponse{UncapturedPayments: uncaptured}, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	deleted, err := app.paymentProvider.DeleteCustomer(r.Context(), customerID)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("customer", customerID))
		return
	}

	logger.Info("deleted customer", "customer_id", customerID)
	app.forgetCustomer(r, customerID)

	err = app.writeJSON(w, http.StatusOK, api.DeleteAccountResponse{Deleted: deleted.Deleted}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// emailTakenByOtherCustomer reports whether email belongs to a customer other
// than customerID.
func (app *application) emailTakenByOtherCustomer(r *http.Request, email, customerID string) (bool, error) {
	customers, err := app.paymentProvider.FindCustomersByEmail(r.Context(), email)
	if err != nil {
		return false, err
	}

	for _, c := range customers {
		if c.ID != customerID {
			return true, nil
		}
	}

	return false, nil
}
