package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
)

func lessonIntent(id string, status stripe.PaymentIntentStatus, received, fee int64) *stripe.PaymentIntent {
	pi := &stripe.PaymentIntent{
		ID:             id,
		Status:         status,
		AmountReceived: received,
		Metadata:       map[string]string{MetadataKeyPaymentType: LessonPaymentType},
	}

	if fee > 0 {
		pi.LatestCharge = &stripe.Charge{
			BalanceTransaction: &stripe.BalanceTransaction{Fee: fee},
		}
	}

	return pi
}

func TestSummarizeLessonRevenue(t *testing.T) {
	concertTicket := lessonIntent("pi_concert", stripe.PaymentIntentStatusSucceeded, 9000, 291)
	concertTicket.Metadata = map[string]string{MetadataKeyPaymentType: "concert-ticket"}

	tests := []struct {
		name    string
		intents []*stripe.PaymentIntent
		want    RevenueSummary
	}{
		{
			name: "no payments",
			want: RevenueSummary{},
		},
		{
			name: "sums captured lessons and their fees",
			intents: []*stripe.PaymentIntent{
				lessonIntent("pi_1", stripe.PaymentIntentStatusSucceeded, 4500, 161),
				lessonIntent("pi_2", stripe.PaymentIntentStatusSucceeded, 2500, 103),
				lessonIntent("pi_3", stripe.PaymentIntentStatusSucceeded, 12000, 378),
			},
			want: RevenueSummary{PaymentTotal: 19000, FeeTotal: 642, NetTotal: 18358},
		},
		{
			name: "skips uncaptured lessons and other payment types",
			intents: []*stripe.PaymentIntent{
				lessonIntent("pi_1", stripe.PaymentIntentStatusSucceeded, 4500, 161),
				lessonIntent("pi_2", stripe.PaymentIntentStatusRequiresCapture, 0, 0),
				concertTicket,
			},
			want: RevenueSummary{PaymentTotal: 4500, FeeTotal: 161, NetTotal: 4339},
		},
		{
			name: "canceled lessons without charges add nothing",
			intents: []*stripe.PaymentIntent{
				lessonIntent("pi_1", stripe.PaymentIntentStatusCanceled, 0, 0),
				lessonIntent("pi_2", stripe.PaymentIntentStatusSucceeded, 3000, 117),
			},
			want: RevenueSummary{PaymentTotal: 3000, FeeTotal: 117, NetTotal: 2883},
		},
		{
			name: "charge without balance transaction has no fee",
			intents: []*stripe.PaymentIntent{
				{
					ID:             "pi_1",
					Status:         stripe.PaymentIntentStatusSucceeded,
					AmountReceived: 1000,
					Metadata:       map[string]string{MetadataKeyPaymentType: LessonPaymentType},
					LatestCharge:   &stripe.Charge{ID: "ch_1"},
				},
			},
			want: RevenueSummary{PaymentTotal: 1000, FeeTotal: 0, NetTotal: 1000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummarizeLessonRevenue(tt.intents))
		})
	}
}

func TestUncapturedPaymentIntentIDs(t *testing.T) {
	intents := []*stripe.PaymentIntent{
		{ID: "pi_1", Status: stripe.PaymentIntentStatusSucceeded},
		{ID: "pi_2", Status: stripe.PaymentIntentStatusRequiresCapture},
		{ID: "pi_3", Status: stripe.PaymentIntentStatusCanceled},
		{ID: "pi_4", Status: stripe.PaymentIntentStatusRequiresCapture},
	}

	assert.Equal(t, []string{"pi_2", "pi_4"}, UncapturedPaymentIntentIDs(intents))
	assert.Empty(t, UncapturedPaymentIntentIDs(intents[:1]))
	assert.Empty(t, UncapturedPaymentIntentIDs(nil))
}

func TestCentsToDecimal(t *testing.T) {
	assert.Equal(t, "45.00", CentsToDecimal(4500).StringFixed(2))
	assert.Equal(t, "0.99", CentsToDecimal(99).StringFixed(2))
}

func TestIsFullyRefunded(t *testing.T) {
	tests := []struct {
		name   string
		charge *stripe.Charge
		want   bool
	}{
		{name: "no charge", charge: nil, want: false},
		{name: "partial refund", charge: &stripe.Charge{AmountCaptured: 4500, AmountRefunded: 1000}, want: false},
		{name: "full refund", charge: &stripe.Charge{AmountCaptured: 4500, AmountRefunded: 4500, Refunded: true}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFullyRefunded(tt.charge))
		})
	}
}
