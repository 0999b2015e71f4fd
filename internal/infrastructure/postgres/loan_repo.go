package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tiendafacil/lending-service/internal/domain/model"
	"github.com/tiendafacil/lending-service/internal/domain/valueobject"
	pkgpostgres "github.com/tiendafacil/lending-service/pkg/postgres"
)

// LoanRepo implements port.LoanRepository.
type LoanRepo struct {
	pool *pgxpool.Pool
}

// NewLoanRepo creates a PostgreSQL-backed loan repository.
func NewLoanRepo(pool *pgxpool.Pool) *LoanRepo {
	return &LoanRepo{pool: pool}
}

// Save persists a loan and its installments in one transaction. The row
// version guards against concurrent writers losing an update.
func (r *LoanRepo) Save(ctx context.Context, loan model.Loan) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return saveLoanTx(ctx, tx, loan)
	})
}

func saveLoanTx(ctx context.Context, tx pgx.Tx, loan model.Loan) error {
	loanQuery := `
		INSERT INTO loans (
			id, client_id, principal, annual_rate, term,
			frequency, loan_type, start_date, status,
			amount_to_pay, amount_applied, overdue_amount,
			accumulated_late_fee, total_pending,
			version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			status               = EXCLUDED.status,
			amount_applied       = EXCLUDED.amount_applied,
			overdue_amount       = EXCLUDED.overdue_amount,
			accumulated_late_fee = EXCLUDED.accumulated_late_fee,
			total_pending        = EXCLUDED.total_pending,
			version              = loans.version + 1,
			updated_at           = EXCLUDED.updated_at
		WHERE loans.version = $15
	`
	tag, err := tx.Exec(ctx, loanQuery,
		loan.ID(), loan.ClientID(), loan.Principal(), loan.AnnualRate(), loan.Term(),
		loan.Frequency().String(), loan.LoanType().String(), loan.StartDate(), loan.Status().String(),
		loan.AmountToPay(), loan.AmountApplied(), loan.OverdueAmount(),
		loan.AccumulatedLateFee(), loan.TotalPending(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on loan")
	}

	instQuery := `
		INSERT INTO loan_installments (
			loan_id, installment_number, due_date,
			principal_amount, interest_amount, paid_amount,
			late_fee, status, payment_date
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (loan_id, installment_number) DO UPDATE SET
			paid_amount  = EXCLUDED.paid_amount,
			late_fee     = EXCLUDED.late_fee,
			status       = EXCLUDED.status,
			payment_date = EXCLUDED.payment_date
	`
	for _, inst := range loan.Installments() {
		_, err := tx.Exec(ctx, instQuery,
			loan.ID(), inst.Number, inst.DueDate,
			inst.Principal, inst.Interest, inst.PaidAmount,
			inst.LateFee, inst.Status.String(), inst.PaymentDate,
		)
		if err != nil {
			return fmt.Errorf("save installment %d: %w", inst.Number, err)
		}
	}

	return nil
}

const loanColumns = `
	id, client_id, principal, annual_rate, term,
	frequency, loan_type, start_date, status,
	amount_to_pay, amount_applied, overdue_amount,
	accumulated_late_fee, total_pending,
	version, created_at, updated_at
`

// FindByID retrieves a loan and its installments.
func (r *LoanRepo) FindByID(ctx context.Context, id string) (model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`

	loan, err := scanLoanRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Loan{}, fmt.Errorf("loan %s: %w", id, ErrNotFound)
		}
		return model.Loan{}, err
	}

	installments, err := r.loadInstallments(ctx, id)
	if err != nil {
		return model.Loan{}, err
	}

	return withInstallments(loan, installments), nil
}

// FindByClientID retrieves all loans for one client, newest first.
func (r *LoanRepo) FindByClientID(ctx context.Context, clientID string) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE client_id = $1 ORDER BY created_at DESC`
	return r.queryLoans(ctx, query, clientID)
}

// List retrieves a page of loans, newest first.
func (r *LoanRepo) List(ctx context.Context, limit, offset int) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.queryLoans(ctx, query, limit, offset)
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

func (r *LoanRepo) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoanRow(rows)
		if err != nil {
			return nil, err
		}
		installments, err := r.loadInstallments(ctx, loan.ID())
		if err != nil {
			return nil, err
		}
		loans = append(loans, withInstallments(loan, installments))
	}
	return loans, rows.Err()
}

func scanLoanRow(s scannable) (model.Loan, error) {
	var (
		id, clientID                      string
		principal, annualRate             decimal.Decimal
		term                              int
		frequencyStr, loanTypeStr         string
		startDate                         time.Time
		statusStr                         string
		amountToPay, amountApplied        decimal.Decimal
		overdueAmount, accumulatedLateFee decimal.Decimal
		totalPending                      decimal.Decimal
		version                           int
		createdAt, updatedAt              time.Time
	)

	err := s.Scan(
		&id, &clientID, &principal, &annualRate, &term,
		&frequencyStr, &loanTypeStr, &startDate, &statusStr,
		&amountToPay, &amountApplied, &overdueAmount,
		&accumulatedLateFee, &totalPending,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Loan{}, fmt.Errorf("scan loan: %w", err)
	}

	frequency, err := valueobject.NewPaymentFrequency(frequencyStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse frequency: %w", err)
	}
	loanType, err := valueobject.NewLoanType(loanTypeStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan type: %w", err)
	}
	status, err := valueobject.NewLoanStatus(statusStr)
	if err != nil {
		return model.Loan{}, fmt.Errorf("parse loan status: %w", err)
	}

	return model.ReconstructLoan(
		id, clientID, principal, annualRate, term,
		frequency, loanType, startDate, status, nil,
		amountToPay, amountApplied, overdueAmount, accumulatedLateFee, totalPending,
		version, createdAt, updatedAt,
	), nil
}

func withInstallments(loan model.Loan, installments []model.Installment) model.Loan {
	return model.ReconstructLoan(
		loan.ID(), loan.ClientID(), loan.Principal(), loan.AnnualRate(), loan.Term(),
		loan.Frequency(), loan.LoanType(), loan.StartDate(), loan.Status(), installments,
		loan.AmountToPay(), loan.AmountApplied(), loan.OverdueAmount(),
		loan.AccumulatedLateFee(), loan.TotalPending(),
		loan.Version(), loan.CreatedAt(), loan.UpdatedAt(),
	)
}

func (r *LoanRepo) loadInstallments(ctx context.Context, loanID string) ([]model.Installment, error) {
	query := `
		SELECT installment_number, due_date, principal_amount, interest_amount,
		       paid_amount, late_fee, status, payment_date
		FROM loan_installments
		WHERE loan_id = $1
		ORDER BY installment_number
	`
	rows, err := r.pool.Query(ctx, query, loanID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var installments []model.Installment
	for rows.Next() {
		var (
			inst      model.Installment
			statusStr string
		)
		err := rows.Scan(
			&inst.Number, &inst.DueDate, &inst.Principal, &inst.Interest,
			&inst.PaidAmount, &inst.LateFee, &statusStr, &inst.PaymentDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		inst.Status, err = valueobject.NewInstallmentStatus(statusStr)
		if err != nil {
			return nil, fmt.Errorf("parse installment status: %w", err)
		}
		installments = append(installments, inst)
	}
	return installments, rows.Err()
}
