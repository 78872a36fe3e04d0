package app

import (
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v82"
)

type sessionKey string

const (
	SessionKeyCustomer = sessionKey("customer")
)

func (s sessionKey) String() string {
	return string(s)
}

// rememberCustomer keeps the last customer returned to the browser in its
// session.
func (app *application) rememberCustomer(r *http.Request, customer *stripe.Customer) {
	if customer == nil {
		return
	}

	data, err := json.Marshal(customer)
	if err != nil {
		app.contextGetLogger(r).Warn("failed to encode session customer", "error", err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyCustomer.String(), data)
}

func (app *application) GetSessionCustomer(w http.ResponseWriter, r *http.Request) {
	data := app.sessionManager.GetBytes(r.Context(), SessionKeyCustomer.String())
	if len(data) == 0 {
		app.errorResponse(w, r, http.StatusNotFound, errCodeNotFound, ErrNoSessionCustomer)
		return
	}

	err := app.writeJSON(w, http.StatusOK, json.RawMessage(data), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// forgetCustomer drops the session customer when it is the deleted one.
func (app *application) forgetCustomer(r *http.Request, customerID string) {
	data := app.sessionManager.GetBytes(r.Context(), SessionKeyCustomer.String())
	if len(data) == 0 {
		return
	}

	var stored struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(data, &stored); err == nil && stored.ID != customerID {
		return
	}

	app.sessionManager.Remove(r.Context(), SessionKeyCustomer.String())
}
