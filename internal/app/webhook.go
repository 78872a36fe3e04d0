package app

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

const maxWebhookBodyBytes = 65536

// StripeWebhookHandler verifies the event signature and mirrors the event into
// the lesson payment ledger. An event is claimed before it is handled and the
// claim is released when handling fails, so that the redelivery is handled
// again.
func (app *application) StripeWebhookHandler(
	w http.ResponseWriter,
	r *http.Request,
	params api.StripeWebhookHandlerParams) {

	logger := app.contextGetLogger(r)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	event, err := app.paymentProvider.ConstructWebhookEvent(payload, params.StripeSignature)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWebhookEvent) {
			logger.Warn("rejected webhook event", "error", err)
			webhookEvents.WithLabelValues("unknown", "rejected").Inc()
			app.errorResponse(w, r, http.StatusBadRequest, errCodeBadRequest, ErrInvalidWebhook)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	logger = logger.With("event_id", event.ID, "event_type", event.Type)

	first, err := app.eventStore.MarkProcessed(r.Context(), event.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !first {
		logger.Info("skipping already processed webhook event")
		webhookEvents.WithLabelValues(string(event.Type), "duplicate").Inc()
	} else {
		err = app.handleWebhookEvent(app.contextSetLogger(r, logger), event)
		if err != nil {
			webhookEvents.WithLabelValues(string(event.Type), "failed").Inc()

			releaseErr := app.eventStore.Release(r.Context(), event.ID)
			if releaseErr != nil {
				logger.Error("failed to release webhook event", "error", releaseErr)
			}

			app.serverErrorResponse(w, r, err)
			return
		}
	}

	err = app.writeJSON(w, http.StatusOK, api.WebhookResponse{Received: true}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// handleWebhookEvent mirrors payment intent and refund events into the lesson
// payment ledger. Only ledger write failures are returned; undecodable or
// unrelated events are dropped.
func (app *application) handleWebhookEvent(r *http.Request, event stripe.Event) error {
	logger := app.contextGetLogger(r)

	switch event.Type {
	case stripe.EventTypePaymentIntentCreated,
		stripe.EventTypePaymentIntentAmountCapturableUpdated,
		stripe.EventTypePaymentIntentSucceeded,
		stripe.EventTypePaymentIntentPaymentFailed,
		stripe.EventTypePaymentIntentCanceled:

		var pi stripe.PaymentIntent
		err := json.Unmarshal(event.Data.Raw, &pi)
		if err != nil {
			logger.Error("failed to decode payment intent of webhook event", "error", err)
			webhookEvents.WithLabelValues(string(event.Type), "invalid").Inc()
			return nil
		}

		if !domain.IsLessonPayment(&pi) {
			webhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
			return nil
		}

		if event.Type == stripe.EventTypePaymentIntentCreated {
			err = app.recordLessonPayment(r, &pi, "")
		} else {
			err = app.updateLessonStatus(r, pi.ID, domain.LessonPaymentStatus(pi.Status))
		}
		if err != nil {
			return err
		}

	case stripe.EventTypeChargeRefunded:
		var charge stripe.Charge
		err := json.Unmarshal(event.Data.Raw, &charge)
		if err != nil {
			logger.Error("failed to decode charge of webhook event", "error", err)
			webhookEvents.WithLabelValues(string(event.Type), "invalid").Inc()
			return nil
		}

		// charge.refunded is sent for partial refunds as well
		if charge.PaymentIntent == nil || !domain.IsFullyRefunded(&charge) {
			webhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
			return nil
		}

		err = app.updateLessonStatus(r, charge.PaymentIntent.ID, domain.LessonStatusRefunded)
		if err != nil {
			return err
		}

	default:
		logger.Info("unhandled webhook event type")
		webhookEvents.WithLabelValues(string(event.Type), "ignored").Inc()
		return nil
	}

	webhookEvents.WithLabelValues(string(event.Type), "processed").Inc()
	return nil
}
