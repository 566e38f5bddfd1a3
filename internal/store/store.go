package store

import (
	"database/sql"
	"fmt"

	"githubWebhookMonitor/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
)

// Store owns the process-wide SQLite handle and Redis client. Opened
// once at startup, closed at shutdown; everything downstream receives
// the handles by parameter.
type Store struct {
	Db  *sql.DB
	Rdb *redis.Client
}

func Open(cfg config.Config) (*Store, error) {
	db, err := sql.Open("sqlite3", cfg.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	if _, err := CreateTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	return &Store{Db: db, Rdb: rdb}, nil
}

func (s *Store) Close() error {
	if err := s.Rdb.Close(); err != nil {
		return err
	}
	return s.Db.Close()
}

func CreateTable(db *sql.DB) (sql.Result, error) {
	sqlstmt := `CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT,
		author TEXT,
		action TEXT,
		from_branch TEXT,
		to_branch TEXT,
		timestamp TEXT
);`
	return db.Exec(sqlstmt)
}
