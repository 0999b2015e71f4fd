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
)

// TreasuryRepo implements port.TreasuryRepository over the single-row
// treasury table.
type TreasuryRepo struct {
	pool *pgxpool.Pool
}

// NewTreasuryRepo creates a PostgreSQL-backed treasury repository.
func NewTreasuryRepo(pool *pgxpool.Pool) *TreasuryRepo {
	return &TreasuryRepo{pool: pool}
}

// Save upserts the treasury row with a version guard.
func (r *TreasuryRepo) Save(ctx context.Context, treasury model.Treasury) error {
	query := `
		INSERT INTO treasury (id, total_capital, capital_lent, version, updated_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (id) DO UPDATE SET
			total_capital = EXCLUDED.total_capital,
			capital_lent  = EXCLUDED.capital_lent,
			version       = treasury.version + 1,
			updated_at    = EXCLUDED.updated_at
		WHERE treasury.version = $4
	`
	tag, err := r.pool.Exec(ctx, query,
		treasury.ID(), treasury.TotalCapital(), treasury.CapitalLent(),
		treasury.Version(), treasury.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save treasury: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on treasury")
	}
	return nil
}

// Get retrieves the treasury row.
func (r *TreasuryRepo) Get(ctx context.Context) (model.Treasury, error) {
	query := `SELECT total_capital, capital_lent, version, updated_at FROM treasury WHERE id = $1`

	var (
		totalCapital, capitalLent decimal.Decimal
		version                   int
		updatedAt                 time.Time
	)
	err := r.pool.QueryRow(ctx, query, model.TreasuryID).Scan(&totalCapital, &capitalLent, &version, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Treasury{}, fmt.Errorf("treasury: %w", ErrNotFound)
		}
		return model.Treasury{}, fmt.Errorf("scan treasury: %w", err)
	}

	return model.ReconstructTreasury(totalCapital, capitalLent, version, updatedAt), nil
}

// EnsureExists seeds the treasury row on first boot.
func (r *TreasuryRepo) EnsureExists(ctx context.Context, initialCapital decimal.Decimal, now time.Time) error {
	query := `
		INSERT INTO treasury (id, total_capital, capital_lent, version, updated_at)
		VALUES ($1,$2,0,1,$3)
		ON CONFLICT (id) DO NOTHING
	`
	if _, err := r.pool.Exec(ctx, query, model.TreasuryID, initialCapital, now); err != nil {
		return fmt.Errorf("seed treasury: %w", err)
	}
	return nil
}
