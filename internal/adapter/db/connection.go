package db

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/sabique2003/Tasklite/internal/config"
)

const (
	defaultParams  = "parseTime=true&multiStatements=true"
	connectTimeout = 5 * time.Second
)

// BuildDSN assembles the driver DSN from config. parseTime is always on
// because due dates are scanned into time.Time.
func BuildDSN(conf *config.Config) (string, error) {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}

	raw := fmt.Sprintf(
		"%s:%s@tcp(%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		net.JoinHostPort(conf.DbHost, conf.DbPort),
		conf.DbName,
		params,
	)
	mc, err := mysql.ParseDSN(raw)
	if err != nil {
		return "", fmt.Errorf("invalid mysql settings: %w", err)
	}
	mc.ParseTime = true
	if mc.Loc == nil {
		mc.Loc = time.UTC
	}
	return mc.FormatDSN(), nil
}

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	dsn, err := BuildDSN(conf)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(3 * time.Minute)

	return db, nil
}
