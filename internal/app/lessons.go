package app

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

const idempotencyKeyHeader = "Idempotency-Key"

// ScheduleLesson authorizes the lesson amount on the first card the customer
// has saved. The funds are captured once the lesson is completed.
func (app *application) ScheduleLesson(w http.ResponseWriter, r *http.Request) {
	var input api.ScheduleLessonRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	missingCustomer := withMissingResource("customer", input.CustomerId)

	paymentMethods, err := app.paymentProvider.ListCardPaymentMethods(r.Context(), input.CustomerId)
	if err != nil {
		app.providerErrorResponse(w, r, err, missingCustomer)
		return
	}

	if len(paymentMethods) == 0 {
		app.providerErrorResponse(w, r, domain.NoPaymentMethodsError(input.CustomerId))
		return
	}

	idempotencyKey := r.Header.Get(idempotencyKeyHeader)
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	paymentIntent, err := app.paymentProvider.CreateLessonPaymentIntent(r.Context(), domain.NewLessonPayment{
		CustomerID:     input.CustomerId,
		AmountCents:    input.Amount,
		Description:    input.Description,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		app.providerErrorResponse(w, r, err, missingCustomer)
		return
	}

	app.recordLessonPayment(r, paymentIntent, input.CustomerId)

	confirmed, err := app.paymentProvider.ConfirmPaymentIntent(r.Context(), paymentIntent.ID, paymentMethods[0].ID)
	if err != nil {
		app.providerErrorResponse(w, r, err, missingCustomer, withPaymentIntent(paymentIntent.ID))
		return
	}

	app.updateLessonStatus(r, confirmed.ID, domain.LessonPaymentStatus(confirmed.Status))

	err = app.writeJSON(w, http.StatusOK, api.PaymentResponse{Payment: confirmed}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CompleteLessonPayment captures an authorized lesson payment, optionally for
// less than the authorized amount.
func (app *application) CompleteLessonPayment(w http.ResponseWriter, r *http.Request) {
	var input api.CapturePaymentRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	captured, err := app.paymentProvider.CapturePaymentIntent(r.Context(), input.PaymentIntentId, input.Amount)
	if err != nil {
		app.providerErrorResponse(w, r, err, withMissingResource("payment_intent", input.PaymentIntentId))
		return
	}

	app.updateLessonStatus(r, captured.ID, domain.LessonPaymentStatus(captured.Status))

	err = app.writeJSON(w, http.StatusOK, api.PaymentResponse{Payment: captured}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// RefundLesson refunds a lesson payment, or releases the authorization when the
// payment was not captured yet. The ledger row moves to refunded only once the
// whole charge is refunded.
func (app *application) RefundLesson(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RefundRequest

	if !app.readAndValidateJSON(w, r, &input) {
		return
	}

	refund, err := app.paymentProvider.CreateRefund(r.Context(), input.PaymentIntentId, input.Amount)
	if err != nil {
		app.providerErrorResponse(w, r, err)
		return
	}

	if domain.IsFullyRefunded(refund.Charge) {
		app.updateLessonStatus(r, input.PaymentIntentId, domain.LessonStatusRefunded)
	} else {
		logger.Info("partial refund, keeping lesson payment status",
			"payment_intent_id", input.PaymentIntentId,
			"refund_id", refund.ID,
			"amount", refund.Amount,
		)
	}

	resp := api.RefundResponse{
		Refund: refund.ID,
		Amount: refund.Amount,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetCustomerLessons(w http.ResponseWriter, r *http.Request, customerID string) {
	payments, err := app.lessonPaymentRepo.GetByCustomerID(r.Context(), customerID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LessonPaymentsResponse{
		Lessons: make([]api.LessonPayment, 0, len(payments)),
	}

	for _, p := range payments {
		resp.Lessons = append(resp.Lessons, api.LessonPayment{
			Id:              p.ID,
			PaymentIntentId: p.PaymentIntentID,
			CustomerId:      p.CustomerID,
			Amount:          p.Amount,
			Currency:        p.Currency,
			Description:     p.Description,
			Status:          string(p.Status),
			CreatedAt:       p.CreatedAt,
			UpdatedAt:       p.UpdatedAt,
		})
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// recordLessonPayment adds a lesson payment to the ledger. The ledger only
// mirrors the provider: request handlers log the failure and go on, while the
// webhook returns it so the event is redelivered.
func (app *application) recordLessonPayment(r *http.Request, pi *stripe.PaymentIntent, customerID string) error {
	logger := app.contextGetLogger(r)

	payment := domain.NewLessonPaymentFromIntent(pi)
	if payment.CustomerID == "" {
		payment.CustomerID = customerID
	}

	err := app.lessonPaymentRepo.Create(r.Context(), &payment)
	switch {
	case err == nil:
		logger.Info("recorded lesson payment", "payment_intent_id", pi.ID, "ledger_id", payment.ID)
	case errors.Is(err, domain.ErrLessonPaymentExists):
		logger.Debug("lesson payment already recorded", "payment_intent_id", pi.ID)
	default:
		ledgerWriteFailures.WithLabelValues("create").Inc()
		logger.Error("failed to record lesson payment", "payment_intent_id", pi.ID, "error", err)
		return err
	}

	return nil
}

func (app *application) updateLessonStatus(r *http.Request, paymentIntentID string, status domain.LessonPaymentStatus) error {
	logger := app.contextGetLogger(r)

	err := app.lessonPaymentRepo.UpdateStatus(r.Context(), paymentIntentID, status)
	switch {
	case err == nil:
		logger.Info("updated lesson payment status", "payment_intent_id", paymentIntentID, "status", status)
	case errors.Is(err, domain.ErrRecordNotFound):
		logger.Debug("payment intent is not a recorded lesson payment", "payment_intent_id", paymentIntentID)
	default:
		ledgerWriteFailures.WithLabelValues("update_status").Inc()
		logger.Error("failed to update lesson payment status", "payment_intent_id", paymentIntentID, "error", err)
		return err
	}

	return nil
}
