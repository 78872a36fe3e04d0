package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/lesson-booking/internal/domain"
)

type PostgresLessonPaymentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLessonPaymentRepository(db *pgxpool.Pool) *PostgresLessonPaymentRepository {
	return &PostgresLessonPaymentRepository{
		db: db,
	}
}

func (p *PostgresLessonPaymentRepository) Create(ctx context.Context, payment *domain.LessonPayment) error {
	query := `
		INSERT INTO lesson_payments (
			payment_intent_id,
			customer_id,
			amount,
			currency,
			description,
			status
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		payment.PaymentIntentID,
		payment.CustomerID,
		payment.Amount,
		payment.Currency,
		payment.Description,
		payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrLessonPaymentExists
		}

		return err
	}

	return nil
}

func (p *PostgresLessonPaymentRepository) UpdateStatus(
	ctx context.Context,
	paymentIntentID string,
	status domain.LessonPaymentStatus) error {

	query := `UPDATE lesson_payments
		SET status = $1, updated_at = NOW()
		WHERE payment_intent_id = $2
	`

	result, err := p.db.Exec(ctx, query, status, paymentIntentID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresLessonPaymentRepository) GetByCustomerID(ctx context.Context, customerID string) ([]domain.LessonPayment, error) {
	query := `
		SELECT id, payment_intent_id, customer_id, amount, currency, description, status, created_at, updated_at
		FROM lesson_payments
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := p.db.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LessonPayment, error) {
		var lp domain.LessonPayment

		err := row.Scan(
			&lp.ID,
			&lp.PaymentIntentID,
			&lp.CustomerID,
			&lp.Amount,
			&lp.Currency,
			&lp.Description,
			&lp.Status,
			&lp.CreatedAt,
			&lp.UpdatedAt,
		)

		return lp, err
	})
	if err != nil {
		return nil, err
	}

	return payments, nil
}
