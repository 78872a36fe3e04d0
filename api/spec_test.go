package api

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	paths := []string{
		"/config",
		"/email-search",
		"/create-setup-intent",
		"/schedule-lesson",
		"/complete-lesson-payment",
		"/refund-lesson",
		"/account-update/{customer_id}",
		"/payment-method/{payment_method_id}",
		"/payment-method",
		"/update-payment-details/{customer_id}",
		"/account-update",
		"/delete-account/{customer_id}",
		"/calculate-lesson-total",
		"/find-customers-with-failed-payments",
		"/customers/{customer_id}/lessons",
		"/session/customer",
		"/webhook",
		"/healthcheck",
	}

	for _, path := range paths {
		assert.NotNil(t, doc.Paths.Value(path), "missing path %s", path)
	}
}

func TestRequiredRequestFields(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	tests := []struct {
		schema string
		want   []string
	}{
		{schema: "CreateSetupIntentRequest", want: []string{"name", "email"}},
		{schema: "ScheduleLessonRequest", want: []string{"customer_id", "amount", "description"}},
		{schema: "CapturePaymentRequest", want: []string{"payment_intent_id"}},
		{schema: "UpdatePaymentMethodRequest", want: []string{"customer_id", "new_payment_method"}},
		{schema: "RefundRequest", want: []string{"payment_intent_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.schema, func(t *testing.T) {
			ref, ok := doc.Components.Schemas[tt.schema]
			require.True(t, ok)
			assert.ElementsMatch(t, tt.want, ref.Value.Required)
		})
	}
}

func TestEmbeddedSpecMatchesSource(t *testing.T) {
	embedded, err := GetSwagger()
	require.NoError(t, err)
	require.NoError(t, embedded.Validate(context.Background()))

	source, err := openapi3.NewLoader().LoadFromFile("api.yaml")
	require.NoError(t, err)

	want, err := source.MarshalJSON()
	require.NoError(t, err)

	got, err := embedded.MarshalJSON()
	require.NoError(t, err)

	assert.JSONEq(t, string(want), string(got), "spec.gen.go is stale, run go generate ./api")
}
