package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/mystic-bots/gadalka-bot/cfg"
	"github.com/mystic-bots/gadalka-bot/db/local"
)

// OpenPostgres connects to the configured database and brings the
// schema up to date with the embedded migrations.
func OpenPostgres(config cfg.DBConfig) (*sql.DB, error) {
	dataBase, err := sql.Open("postgres", fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DataBase, config.SSLMode))
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	dataBase.SetMaxOpenConns(10)
	dataBase.SetConnMaxIdleTime(30 * time.Second)

	if err := dataBase.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping database")
	}

	goose.SetBaseFS(local.EmbedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return nil, errors.Wrap(err, "set goose dialect")
	}

	if err := goose.Up(dataBase, "migrations"); err != nil {
		return nil, errors.Wrap(err, "apply migrations")
	}

	return dataBase, nil
}
