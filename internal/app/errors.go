package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
	appvalidator "github.com/metinatakli/lesson-booking/internal/validator"
)

const (
	ErrInternalServer    = "The server encountered a problem and could not process your request"
	ErrNotFound          = "The requested resource not found"
	ErrMethodNotAllowed  = "The %s method is not supported for this resource"
	ErrValidationFailed  = "One or more fields are invalid"
	ErrInvalidWebhook    = "Webhook signature verification failed"
	ErrNoSessionCustomer = "There is no customer bound to the current session"

	errCodeBadRequest       = "bad_request"
	errCodeNotFound         = "not_found"
	errCodeMethodNotAllowed = "method_not_allowed"
	errCodeValidationFailed = "validation_failed"
	errCodeInternal         = "internal_error"
)

func (app *application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *application) errorResponse(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	resp := api.ErrorResponse{
		Error: api.ErrorDetail{
			Code:    code,
			Message: message,
		},
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)
	captureError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, errCodeInternal, ErrInternalServer)
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, errCodeBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, errCodeNotFound, ErrNotFound)
}

func (app *application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	message := fmt.Sprintf(ErrMethodNotAllowed, r.Method)
	app.errorResponse(w, r, http.StatusMethodNotAllowed, errCodeMethodNotAllowed, message)
}

func (app *application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Error: api.ErrorDetail{
			Code:    errCodeValidationFailed,
			Message: ErrValidationFailed,
		},
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// emailConflictResponse reports an email that already belongs to a customer.
// The 304 status travels in the body because a real 304 response cannot
// carry one.
func (app *application) emailConflictResponse(w http.ResponseWriter, r *http.Request) {
	resp := api.StatusMessage{
		Status:  http.StatusNotModified,
		Message: domain.CustomerEmailExistsMessage,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

type providerErrorOption func(resp *api.ErrorResponse, providerErr *domain.ProviderError)

// withMissingResource replaces the message of a resource_missing error with
// one naming the object that could not be found.
func withMissingResource(kind, id string) providerErrorOption {
	return func(resp *api.ErrorResponse, providerErr *domain.ProviderError) {
		if providerErr.Code == domain.ErrCodeResourceMissing {
			resp.Error.Message = fmt.Sprintf("No such %s: '%s'", kind, id)
		}
	}
}

func withPaymentIntent(id string) providerErrorOption {
	return func(resp *api.ErrorResponse, _ *domain.ProviderError) {
		resp.PaymentIntentId = id
	}
}

// providerErrorResponse sends an error reported by the payments provider as a
// 200 response carrying the error envelope, which is what the browser client
// checks for. Any other error is a server error.
func (app *application) providerErrorResponse(
	w http.ResponseWriter,
	r *http.Request,
	err error,
	opts ...providerErrorOption,
) {
	var providerErr *domain.ProviderError
	if !errors.As(err, &providerErr) {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Warn("payment provider rejected request",
		"code", providerErr.Code,
		"type", providerErr.Type,
		"provider_status", providerErr.HTTPStatus,
		"error", providerErr.Message,
	)

	resp := api.ErrorResponse{
		Error: api.ErrorDetail{
			Code:    providerErr.Code,
			Message: providerErr.Message,
		},
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	for _, opt := range opts {
		opt(&resp, providerErr)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func captureError(r *http.Request, err error) {
	hub := sentry.GetHubFromContext(r.Context())
	if hub == nil {
		hub = sentry.CurrentHub().Clone()
		hub.Scope().SetRequest(r)
	}

	hub.Scope().SetTag("request_id", middleware.GetReqID(r.Context()))
	hub.CaptureException(err)
}
