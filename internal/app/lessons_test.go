package app

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/metinatakli/lesson-booking/api"
	"github.com/metinatakli/lesson-booking/internal/domain"
	"github.com/metinatakli/lesson-booking/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v82"
)

type LessonsTestSuite struct {
	suite.Suite
	app               *application
	paymentProvider   *mocks.MockPaymentProvider
	lessonPaymentRepo *mocks.MockLessonPaymentRepo
}

func (s *LessonsTestSuite) SetupTest() {
	s.paymentProvider = new(mocks.MockPaymentProvider)
	s.lessonPaymentRepo = new(mocks.MockLessonPaymentRepo)

	s.app = newTestApplication(func(a *application) {
		a.paymentProvider = s.paymentProvider
		a.lessonPaymentRepo = s.lessonPaymentRepo
	})
}

func TestLessonsSuite(t *testing.T) {
	suite.Run(t, new(LessonsTestSuite))
}

func lessonPaymentIntent(id string, status stripe.PaymentIntentStatus) *stripe.PaymentIntent {
	return &stripe.PaymentIntent{
		ID:          id,
		Amount:      4500,
		Currency:    stripe.CurrencyUSD,
		Description: "Lesson on Feb 25th",
		Status:      status,
		Customer:    &stripe.Customer{ID: "cus_1"},
		Metadata:    map[string]string{domain.MetadataKeyPaymentType: domain.LessonPaymentType},
	}
}

func (s *LessonsTestSuite) TestScheduleLesson() {
	validInput := api.ScheduleLessonRequest{
		CustomerId:  "cus_1",
		Amount:      4500,
		Description: "Lesson on Feb 25th",
	}

	tests := []struct {
		name              string
		input             any
		setupMocks        func()
		wantStatus        int
		wantErrCode       string
		wantErrMessage    string
		wantPaymentIntent string
		wantPaymentStatus stripe.PaymentIntentStatus
	}{
		{
			name:           "should fail when amount is negative",
			input:          api.ScheduleLessonRequest{CustomerId: "cus_1", Amount: -5, Description: "Lesson"},
			setupMocks:     func() {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be greater than 0",
		},
		{
			name:           "should fail when customer id is not a customer",
			input:          api.ScheduleLessonRequest{CustomerId: "pi_1", Amount: 4500, Description: "Lesson"},
			setupMocks:     func() {},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: `must be an id starting with "cus_"`,
		},
		{
			name:  "should name the customer when it does not exist",
			input: api.ScheduleLessonRequest{CustomerId: "cus_missing", Amount: 4500, Description: "Lesson"},
			setupMocks: func() {
				s.paymentProvider.On("ListCardPaymentMethods", mock.Anything, "cus_missing").
					Return(nil, &domain.ProviderError{
						Code:    domain.ErrCodeResourceMissing,
						Message: "No such customer: 'cus_missing'; a similar object exists in live mode",
					}).Once()
			},
			wantStatus:     http.StatusOK,
			wantErrCode:    domain.ErrCodeResourceMissing,
			wantErrMessage: "No such customer: 'cus_missing'",
		},
		{
			name:  "should fail when customer has no card",
			input: validInput,
			setupMocks: func() {
				s.paymentProvider.On("ListCardPaymentMethods", mock.Anything, "cus_1").
					Return([]*stripe.PaymentMethod{}, nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantErrCode:    domain.ErrCodeNoPaymentMethod,
			wantErrMessage: "no payment methods found for cus_1",
		},
		{
			name:  "should return the payment intent when confirmation fails",
			input: validInput,
			setupMocks: func() {
				s.paymentProvider.On("ListCardPaymentMethods", mock.Anything, "cus_1").
					Return([]*stripe.PaymentMethod{{ID: "pm_1"}}, nil).Once()
				s.paymentProvider.On("CreateLessonPaymentIntent", mock.Anything, mock.Anything).
					Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresPaymentMethod), nil).Once()
				s.lessonPaymentRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
				s.paymentProvider.On("ConfirmPaymentIntent", mock.Anything, "pi_1", "pm_1").
					Return(nil, &domain.ProviderError{Code: "card_declined", Message: "Your card was declined."}).Once()
			},
			wantStatus:        http.StatusOK,
			wantErrCode:       "card_declined",
			wantErrMessage:    "Your card was declined.",
			wantPaymentIntent: "pi_1",
		},
		{
			name:  "should authorize the lesson on the first card",
			input: validInput,
			setupMocks: func() {
				s.paymentProvider.On("ListCardPaymentMethods", mock.Anything, "cus_1").
					Return([]*stripe.PaymentMethod{{ID: "pm_1"}, {ID: "pm_2"}}, nil).Once()
				s.paymentProvider.On("CreateLessonPaymentIntent", mock.Anything, mock.MatchedBy(func(l domain.NewLessonPayment) bool {
					return l.CustomerID == "cus_1" &&
						l.AmountCents == 4500 &&
						l.Description == "Lesson on Feb 25th" &&
						l.IdempotencyKey != ""
				})).Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresPaymentMethod), nil).Once()
				s.lessonPaymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.LessonPayment) bool {
					return p.PaymentIntentID == "pi_1" &&
						p.CustomerID == "cus_1" &&
						p.Amount.Equal(decimal.NewFromInt(45))
				})).Return(nil).Once()
				s.paymentProvider.On("ConfirmPaymentIntent", mock.Anything, "pi_1", "pm_1").
					Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresCapture), nil).Once()
				s.lessonPaymentRepo.On("UpdateStatus", mock.Anything, "pi_1", domain.LessonStatusRequiresCapture).
					Return(nil).Once()
			},
			wantStatus:        http.StatusOK,
			wantPaymentIntent: "pi_1",
			wantPaymentStatus: stripe.PaymentIntentStatusRequiresCapture,
		},
		{
			name:  "should succeed when the ledger is unavailable",
			input: validInput,
			setupMocks: func() {
				s.paymentProvider.On("ListCardPaymentMethods", mock.Anything, "cus_1").
					Return([]*stripe.PaymentMethod{{ID: "pm_1"}}, nil).Once()
				s.paymentProvider.On("CreateLessonPaymentIntent", mock.Anything, mock.Anything).
					Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresPaymentMethod), nil).Once()
				s.lessonPaymentRepo.On("Create", mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).Once()
				s.paymentProvider.On("ConfirmPaymentIntent", mock.Anything, "pi_1", "pm_1").
					Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresCapture), nil).Once()
				s.lessonPaymentRepo.On("UpdateStatus", mock.Anything, "pi_1", domain.LessonStatusRequiresCapture).
					Return(domain.ErrRecordNotFound).Once()
			},
			wantStatus:        http.StatusOK,
			wantPaymentIntent: "pi_1",
			wantPaymentStatus: stripe.PaymentIntentStatusRequiresCapture,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			w, r := executeRequest(s.T(), http.MethodPost, "/schedule-lesson", tt.input)

			s.app.ScheduleLesson(w, r)

			s.Equal(tt.wantStatus, w.Code)

			switch {
			case tt.wantStatus == http.StatusUnprocessableEntity:
				checkErrorResponse(s.T(), w, struct {
					wantStatus     int
					wantErrMessage string
				}{tt.wantStatus, tt.wantErrMessage})

			case tt.wantErrCode != "":
				resp := decodeResponse[api.ErrorResponse](s.T(), w)
				s.Equal(tt.wantErrCode, resp.Error.Code)
				s.Equal(tt.wantErrMessage, resp.Error.Message)
				s.Equal(tt.wantPaymentIntent, resp.PaymentIntentId)

			default:
				resp := decodeResponse[api.PaymentResponse](s.T(), w)
				s.Require().NotNil(resp.Payment)
				s.Equal(tt.wantPaymentIntent, resp.Payment.ID)
				s.Equal(tt.wantPaymentStatus, resp.Payment.Status)
			}

			s.paymentProvider.AssertExpectations(s.T())
			s.lessonPaymentRepo.AssertExpectations(s.T())
		})
	}
}

func (s *LessonsTestSuite) TestScheduleLessonUsesClientIdempotencyKey() {
	s.paymentProvider.On("ListCardPaymentMethods", mock.Anything, "cus_1").
		Return([]*stripe.PaymentMethod{{ID: "pm_1"}}, nil).Once()
	s.paymentProvider.On("CreateLessonPaymentIntent", mock.Anything, mock.MatchedBy(func(l domain.NewLessonPayment) bool {
		return l.IdempotencyKey == "lesson-42"
	})).Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresPaymentMethod), nil).Once()
	s.lessonPaymentRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrLessonPaymentExists).Once()
	s.paymentProvider.On("ConfirmPaymentIntent", mock.Anything, "pi_1", "pm_1").
		Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusRequiresCapture), nil).Once()
	s.lessonPaymentRepo.On("UpdateStatus", mock.Anything, "pi_1", domain.LessonStatusRequiresCapture).Return(nil).Once()

	w, r := executeRequest(s.T(), http.MethodPost, "/schedule-lesson", api.ScheduleLessonRequest{
		CustomerId:  "cus_1",
		Amount:      4500,
		Description: "Lesson",
	})
	r.Header.Set(idempotencyKeyHeader, "lesson-42")

	s.app.ScheduleLesson(w, r)

	s.Equal(http.StatusOK, w.Code)
	s.paymentProvider.AssertExpectations(s.T())
}

func (s *LessonsTestSuite) TestCompleteLessonPayment() {
	tests := []struct {
		name           string
		input          api.CapturePaymentRequest
		setupMocks     func()
		wantErrCode    string
		wantErrMessage string
	}{
		{
			name:  "should name the payment intent when it does not exist",
			input: api.CapturePaymentRequest{PaymentIntentId: "pi_missing"},
			setupMocks: func() {
				s.paymentProvider.On("CapturePaymentIntent", mock.Anything, "pi_missing", (*int64)(nil)).
					Return(nil, &domain.ProviderError{Code: domain.ErrCodeResourceMissing, Message: "No such payment_intent"}).Once()
			},
			wantErrCode:    domain.ErrCodeResourceMissing,
			wantErrMessage: "No such payment_intent: 'pi_missing'",
		},
		{
			name:  "should pass other provider errors through",
			input: api.CapturePaymentRequest{PaymentIntentId: "pi_1"},
			setupMocks: func() {
				s.paymentProvider.On("CapturePaymentIntent", mock.Anything, "pi_1", (*int64)(nil)).
					Return(nil, &domain.ProviderError{
						Code:    "payment_intent_unexpected_state",
						Message: "This PaymentIntent could not be captured because it has a status of succeeded.",
					}).Once()
			},
			wantErrCode:    "payment_intent_unexpected_state",
			wantErrMessage: "This PaymentIntent could not be captured because it has a status of succeeded.",
		},
		{
			name:  "should capture a partial amount",
			input: api.CapturePaymentRequest{PaymentIntentId: "pi_1", Amount: ptr(int64(2000))},
			setupMocks: func() {
				s.paymentProvider.On("CapturePaymentIntent", mock.Anything, "pi_1", ptr(int64(2000))).
					Return(lessonPaymentIntent("pi_1", stripe.PaymentIntentStatusSucceeded), nil).Once()
				s.lessonPaymentRepo.On("UpdateStatus", mock.Anything, "pi_1", domain.LessonStatusSucceeded).
					Return(nil).Once()
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			tt.setupMocks()

			w, r := executeRequest(s.T(), http.MethodPost, "/complete-lesson-payment", tt.input)

			s.app.CompleteLessonPayment(w, r)

			s.Equal(http.StatusOK, w.Code)

			if tt.wantErrCode != "" {
				resp := decodeResponse[api.ErrorResponse](s.T(), w)
				s.Equal(tt.wantErrCode, resp.Error.Code)
				s.Equal(tt.wantErrMessage, resp.Error.Message)
				s.lessonPaymentRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			} else {
				resp := decodeResponse[api.PaymentResponse](s.T(), w)
				s.Equal(stripe.PaymentIntentStatusSucceeded, resp.Payment.Status)
			}

			s.paymentProvider.AssertExpectations(s.T())
			s.lessonPaymentRepo.AssertExpectations(s.T())
		})
	}
}

func (s *LessonsTestSuite) TestRefundLesson() {
	tests := []struct {
		name         string
		amount       *int64
		refund       *stripe.Refund
		wantRefunded bool
	}{
		{
			name: "should mark the lesson refunded on a full refund",
			refund: &stripe.Refund{
				ID:     "re_1",
				Amount: 4500,
				Charge: &stripe.Charge{ID: "ch_1", AmountCaptured: 4500, AmountRefunded: 4500, Refunded: true},
			},
			wantRefunded: true,
		},
		{
			name:   "should keep the lesson status on a partial refund",
			amount: ptr(int64(1000)),
			refund: &stripe.Refund{
				ID:     "re_1",
				Amount: 1000,
				Charge: &stripe.Charge{ID: "ch_1", AmountCaptured: 4500, AmountRefunded: 1000},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			s.paymentProvider.On("CreateRefund", mock.Anything, "pi_1", tt.amount).Return(tt.refund, nil).Once()
			if tt.wantRefunded {
				s.lessonPaymentRepo.On("UpdateStatus", mock.Anything, "pi_1", domain.LessonStatusRefunded).Return(nil).Once()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/refund-lesson", api.RefundRequest{
				PaymentIntentId: "pi_1",
				Amount:          tt.amount,
			})

			s.app.RefundLesson(w, r)

			s.Equal(http.StatusOK, w.Code)
			resp := decodeResponse[api.RefundResponse](s.T(), w)
			s.Equal(api.RefundResponse{Refund: "re_1", Amount: tt.refund.Amount}, resp)

			s.lessonPaymentRepo.AssertExpectations(s.T())
			if !tt.wantRefunded {
				s.lessonPaymentRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func (s *LessonsTestSuite) TestRefundLessonProviderError() {
	s.paymentProvider.On("CreateRefund", mock.Anything, "pi_1", ptr(int64(100000))).
		Return(nil, &domain.ProviderError{
			Code:    "amount_too_large",
			Message: "Refund amount ($1,000.00) is greater than charge amount ($45.00)",
		}).Once()

	w, r := executeRequest(s.T(), http.MethodPost, "/refund-lesson", api.RefundRequest{
		PaymentIntentId: "pi_1",
		Amount:          ptr(int64(100000)),
	})

	s.app.RefundLesson(w, r)

	s.Equal(http.StatusOK, w.Code)
	resp := decodeResponse[api.ErrorResponse](s.T(), w)
	s.Equal("amount_too_large", resp.Error.Code)
	s.lessonPaymentRepo.AssertNotCalled(s.T(), "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LessonsTestSuite) TestGetCustomerLessons() {
	createdAt := time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC)

	s.lessonPaymentRepo.On("GetByCustomerID", mock.Anything, "cus_1").Return([]domain.LessonPayment{
		{
			ID:              1,
			PaymentIntentID: "pi_1",
			CustomerID:      "cus_1",
			Amount:          decimal.RequireFromString("45.00"),
			Currency:        "usd",
			Status:          domain.LessonStatusSucceeded,
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt,
		},
	}, nil).Once()

	w, r := executeRequest(s.T(), http.MethodGet, "/customers/cus_1/lessons", nil)

	s.app.GetCustomerLessons(w, r, "cus_1")

	s.Equal(http.StatusOK, w.Code)
	resp := decodeResponse[api.LessonPaymentsResponse](s.T(), w)
	s.Require().Len(resp.Lessons, 1)
	s.Equal("pi_1", resp.Lessons[0].PaymentIntentId)
	s.True(resp.Lessons[0].Amount.Equal(decimal.NewFromInt(45)))
	s.Equal(string(domain.LessonStatusSucceeded), resp.Lessons[0].Status)
}

func (s *LessonsTestSuite) TestGetCustomerLessonsRepositoryError() {
	s.lessonPaymentRepo.On("GetByCustomerID", mock.Anything, "cus_1").Return(nil, errors.New("db down")).Once()

	w, r := executeRequest(s.T(), http.MethodGet, "/customers/cus_1/lessons", nil)

	s.app.GetCustomerLessons(w, r, "cus_1")

	checkErrorResponse(s.T(), w, struct {
		wantStatus     int
		wantErrMessage string
	}{http.StatusInternalServerError, ErrInternalServer})
}
