package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"taskdesk/internal/config"
)

// ConnectDB opens the SQL database selected by conf.StorageDriver
// ("mysql" or "postgres").
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.StorageDriver {
	case config.StoragePostgres:
		return sqlx.Connect("postgres", postgresDSN(conf))
	case config.StorageMySQL:
		return sqlx.Connect("mysql", mysqlDSN(conf))
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", conf.StorageDriver)
	}
}

func mysqlDSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true"
	}

	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}

func postgresDSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = "sslmode=disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}
