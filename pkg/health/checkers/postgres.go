package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresChecker is ready once the pool answers and the session table
// is readable.
type PostgresChecker struct {
	pool  *pgxpool.Pool
	probe string
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool, probe: `SELECT 1 FROM kv_entries LIMIT 1`}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	if err := c.pool.Ping(ctx); err != nil {
		return err
	}
	rows, err := c.pool.Query(ctx, c.probe)
	if err != nil {
		return err
	}
	rows.Close()
	return rows.Err()
}
