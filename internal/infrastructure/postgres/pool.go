package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/jhoicas/carwash-api/pkg/config"
)

// NewPool abre el pool de PostgreSQL con el tamaño y los tiempos de config.DBConfig
// y comprueba la conexión con un ping acotado por ConnectTimeout.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// poolConfig traduce DBConfig a pgxpool.Config sin abrir conexiones.
func poolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	if cfg.MaxConns > 0 {
		pc.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		pc.MinConns = int32(cfg.MinConns)
	}
	if pc.MinConns > pc.MaxConns {
		return nil, fmt.Errorf("pool: DB_MIN_CONNS (%d) mayor que DB_MAX_CONNS (%d)", pc.MinConns, pc.MaxConns)
	}
	if cfg.MaxConnLifetimeMinutes > 0 {
		pc.MaxConnLifetime = time.Duration(cfg.MaxConnLifetimeMinutes) * time.Minute
	}
	pc.MaxConnIdleTime = pc.MaxConnLifetime / 2
	pc.HealthCheckPeriod = time.Minute
	pc.ConnConfig.ConnectTimeout = connectTimeout(cfg)

	if cfg.ApplicationName != "" {
		pc.ConnConfig.RuntimeParams["application_name"] = cfg.ApplicationName
	}

	// NUMERIC -> shopspring/decimal en cada conexión (precios, GST, totales).
	pc.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return pc, nil
}

func connectTimeout(cfg config.DBConfig) time.Duration {
	if cfg.ConnectTimeoutSeconds > 0 {
		return time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	}
	return 5 * time.Second
}
