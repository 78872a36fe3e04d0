package app

import (
	"net/http"
	"time"

	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
)

var (
	revenueExpand       = []string{"data.latest_charge.balance_transaction"}
	failedPaymentExpand = []string{"data.latest_charge", "data.customer", "data.payment_method"}
)

// CalculateLessonTotal sums the captured lesson payments of the last 36 hours
// and the fees paid for them.
func (app *application) CalculateLessonTotal(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-domain.RevenueWindow)

	intents, err := app.paymentProvider.ListPaymentIntentsSince(r.Context(), since, revenueExpand...)
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	summary := domain.SummarizeLessonRevenue(intents)

	resp := api.LessonTotalResponse{
		PaymentTotal: summary.PaymentTotal,
		FeeTotal:     summary.FeeTotal,
		NetTotal:     summary.NetTotal,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// FindCustomersWithFailedPayments reports the customers whose last payment of
// the last 36 hours failed and who still have the same card on file.
func (app *application) FindCustomersWithFailedPayments(w http.ResponseWriter, r *http.Request) {
	since := time.Now().Add(-domain.RevenueWindow)

	intents, err := app.paymentProvider.ListPaymentIntentsSince(r.Context(), since, failedPaymentExpand...)
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	logger := app.contextGetLogger(r)
	failed := domain.LatestFailedIntents(intents)

	cardOnFile := make(map[string]string, len(failed))
	for _, pi := range failed {
		if pi.Customer.Deleted {
			continue
		}

		customerID := pi.Customer.ID

		paymentMethods, err := app.paymentProvider.ListCardPaymentMethods(r.Context(), customerID)
		if domain.IsResourceMissing(err) {
			logger.Info("skipping failed payment of missing customer", "customer_id", customerID)
			continue
		}
		if err != nil {
			app.providerErrorResponse(w, r, err, withMissingResource("customer", customerID))
			return
		}

		if len(paymentMethods) > 0 {
			cardOnFile[customerID] = paymentMethods[0].ID
		}
	}

	payments := domain.FailedPaymentsWithCardOnFile(failed, cardOnFile)

	resp := make([]api.FailedPayment, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, api.FailedPayment{
			Customer: api.FailedPaymentCustomer{
				Id:    p.CustomerID,
				Email: p.CustomerEmail,
				Name:  p.CustomerName,
			},
			PaymentIntent: api.FailedPaymentIntent{
				Created:     p.Created,
				Description: p.Description,
				Status:      p.Status,
				Error:       p.Error,
			},
			PaymentMethod: api.FailedPaymentMethod{
				Last4: p.CardLast4,
				Brand: p.CardBrand,
			},
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
