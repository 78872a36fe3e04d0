package domain

import (
	"time"

	"github.com/stripe/stripe-go/v82"
)

// RevenueWindow is how far back the lesson totals and the failed payment
// report look.
const RevenueWindow = 36 * time.Hour

// RevenueSummary holds lesson totals in the smallest currency unit.
type RevenueSummary struct {
	PaymentTotal int64
	FeeTotal     int64
	NetTotal     int64
}

// SummarizeLessonRevenue adds up the received amounts and provider fees of the
// lesson payments in intents. Intents still waiting for capture and payments
// for anything other than lessons are ignored.
func SummarizeLessonRevenue(intents []*stripe.PaymentIntent) RevenueSummary {
	var summary RevenueSummary

	for _, pi := range intents {
		if !IsLessonPayment(pi) || pi.Status == stripe.PaymentIntentStatusRequiresCapture {
			continue
		}

		summary.PaymentTotal += pi.AmountReceived
		summary.FeeTotal += chargeFee(pi.LatestCharge)
	}

	summary.NetTotal = summary.PaymentTotal - summary.FeeTotal

	return summary
}

func chargeFee(charge *stripe.Charge) int64 {
	if charge == nil || charge.BalanceTransaction == nil {
		return 0
	}

	return charge.BalanceTransaction.Fee
}
