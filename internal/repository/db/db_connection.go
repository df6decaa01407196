package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

const mysqlDriverName = "mysql"

// Config holds the connection parameters for the backing MySQL database.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func (c Config) dsn() string {
	// parseTime so put_time scans into time.Time.
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// Connect opens a pooled MySQL connection and ensures tables exist.
func Connect(cfg Config) (*sql.DB, error) {
	db, err := sql.Open(mysqlDriverName, cfg.dsn())
	if err != nil {
		return nil, fmt.Errorf("open mysql at %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(3 * time.Minute)

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INT AUTO_INCREMENT PRIMARY KEY,
    username VARCHAR(64) NOT NULL UNIQUE,
    password VARCHAR(128) NOT NULL
);
`

const schemaWordInfo = `
CREATE TABLE IF NOT EXISTS word_info (
    id INT AUTO_INCREMENT PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    introduction TEXT NOT NULL,
    link VARCHAR(255) NOT NULL,
    word LONGTEXT,
    text_pinyin TEXT,
    put_time DATETIME NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaWordInfo,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
