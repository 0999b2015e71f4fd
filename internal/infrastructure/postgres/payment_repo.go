package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tiendafacil/lending-service/internal/domain/port"
)

// PaymentRepo implements port.PaymentRepository.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a PostgreSQL-backed payment repository.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Save records a received payment. Payments are append-only.
func (r *PaymentRepo) Save(ctx context.Context, payment port.PaymentRecord) error {
	query := `
		INSERT INTO loan_payments (
			id, loan_id, amount, applied_amount, unapplied_amount,
			payment_method, payment_date, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	_, err := r.pool.Exec(ctx, query,
		payment.ID, payment.LoanID, payment.Amount, payment.AppliedAmount,
		payment.UnappliedAmount, payment.PaymentMethod, payment.PaymentDate, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

// FindByLoanID retrieves the payment history of one loan, oldest first.
func (r *PaymentRepo) FindByLoanID(ctx context.Context, loanID string) ([]port.PaymentRecord, error) {
	query := `
		SELECT id, loan_id, amount, applied_amount, unapplied_amount,
		       payment_method, payment_date, created_at
		FROM loan_payments
		WHERE loan_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []port.PaymentRecord
	for rows.Next() {
		var p port.PaymentRecord
		err := rows.Scan(
			&p.ID, &p.LoanID, &p.Amount, &p.AppliedAmount, &p.UnappliedAmount,
			&p.PaymentMethod, &p.PaymentDate, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
