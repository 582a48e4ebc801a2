package userstream

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"

	"github.com/go-sql-driver/mysql"

	"github.com/prodev-io/userstream/internal/env"
)

// Config holds the connection parameters of the database that hosts user_data.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// LoadConfig builds a Config from the process environment.
//
//	DB_HOST     (default: localhost)
//	DB_USER     (default: root)
//	DB_PASSWORD (default: empty)
//	DB_PORT     (default: 3306)
//	DB_NAME     (default: prodev)
func LoadConfig() (Config, error) {
	var (
		c   Config
		err error
	)
	if c.Host, err = env.Lookup("DB_HOST", "localhost"); err != nil {
		return Config{}, err
	}
	if c.User, err = env.Lookup("DB_USER", "root"); err != nil {
		return Config{}, err
	}
	if c.Password, err = env.Lookup("DB_PASSWORD", ""); err != nil {
		return Config{}, err
	}
	if c.Port, err = env.Lookup("DB_PORT", 3306); err != nil {
		return Config{}, err
	}
	if c.Database, err = env.Lookup("DB_NAME", "prodev"); err != nil {
		return Config{}, err
	}
	return c, nil
}

// DSN formats the config as a go-sql-driver/mysql data source name.
func (c Config) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.DBName = c.Database
	return cfg.FormatDSN()
}

// Open connects to the configured database and verifies the connection.
// Failures are reported as ErrConnection.
func (c Config) Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("mysql", c.DSN())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConnection, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %s", ErrConnection, err)
	}
	return db, nil
}
