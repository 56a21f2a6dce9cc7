package infra_pg_init

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/adithyagarapati/movie-analyzer/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// The service only touches one small table, a handful of conns is plenty.
const (
	maxOpenConns    = 4
	maxIdleConns    = 2
	connMaxLifetime = 30 * time.Minute
)

func DSN(cfg config.Postgres) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}

// Connect opens the remote url store and pings it within ctx.
func Connect(ctx context.Context, cfg config.Postgres) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("postgres %s:%s/%s: %w", cfg.Host, cfg.Port, cfg.DBName, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	return db, nil
}

func MustEstablishConn(ctx context.Context, cfg config.Postgres) *sqlx.DB {
	db, err := Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("[postgres] %v", err)
	}
	return db
}
