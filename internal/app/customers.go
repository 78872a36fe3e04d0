package app

import (
	"context"
	"net/http"

	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/metinatakli/lesson-booking/internal/mailer"
	"github.com/stripe/stripe-go/v82"
)

func (app *application) GetConfig(w http.ResponseWriter, r *http.Request) {
	resp := api.ConfigResponse{
		Key: app.config.stripe.publishableKey,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) SearchCustomersByEmail(
	w http.ResponseWriter,
	r *http.Request,
	params api.SearchCustomersByEmailParams) {

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	customers, err := app.paymentProvider.FindCustomersByEmail(r.Context(), string(params.Email))
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	if customers == nil {
		customers = []*stripe.Customer{}
	}

	err = app.writeJSON(w, http.StatusOK, api.CustomerListResponse{Data: customers}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CreateSetupIntent looks the customer up by email, creating it when the email
// is new, and starts saving a card for it. An existing customer is reused and
// the conflict is reported next to the setup intent.
func (app *application) CreateSetupIntent(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateSetupIntentRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	existing, err := app.paymentProvider.FindCustomersByEmail(r.Context(), string(input.Email))
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	var (
		customer *stripe.Customer
		conflict *api.StatusMessage
	)

	if len(existing) > 0 {
		customer = existing[0]
		conflict = &api.StatusMessage{
			Status:  http.StatusNotModified,
			Message: domain.CustomerEmailExistsMessage,
		}

		logger.Info("reusing existing customer for email", "customer_id", customer.ID)
	} else {
		customer, err = app.paymentProvider.CreateCustomer(r.Context(), domain.NewCustomer{
			Name:        input.Name,
			Email:       string(input.Email),
			FirstLesson: input.Lesson,
		})
		if err != nil {
			app.providerErrorResponse(w, r, err)
			return
		}

		logger.Info("created customer", "customer_id", customer.ID)
		app.sendWelcomeMail(r, customer, input.Lesson)
	}

	ephemeralKey, err := app.paymentProvider.CreateEphemeralKey(r.Context(), customer.ID)
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	setupIntent, err := app.paymentProvider.CreateSetupIntent(r.Context(), customer.ID)
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	app.rememberCustomer(r, customer)

	resp := api.SetupIntentResponse{
		Error:          conflict,
		SetupIntent:    setupIntent,
		ClientSecret:   setupIntent.ClientSecret,
		EphemeralKey:   ephemeralKey.Secret,
		Customer:       customer,
		PublishableKey: app.config.stripe.publishableKey,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) sendWelcomeMail(r *http.Request, customer *stripe.Customer, firstLesson string) {
	app.wg.Add(1)

	go func(ctx context.Context) {
		defer app.wg.Done()

		// new logger for this goroutine, inheriting context from the request
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending welcome mail", "panic", err)
			}
		}()

		data := map[string]any{
			"name":        customer.Name,
			"customerID":  customer.ID,
			"firstLesson": firstLesson,
		}

		err := app.mailer.Send(customer.Email, mailer.WelcomeTemplate, data)
		if err != nil {
			gLogger.Error("failed to send welcome email", "error", err, "customer_id", customer.ID)
		} else {
			gLogger.Info("welcome email sent successfully", "customer_id", customer.ID)
		}
	}(context.WithoutCancel(r.Context()))
}
