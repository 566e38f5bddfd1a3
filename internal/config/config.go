package config

import "os"

type Config struct {
	SQLitePath string
	RedisAddr  string
	ListenAddr string
}

func Load() Config {
	return Config{
		SQLitePath: getenv("SQLITE_PATH", "./events.db"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		ListenAddr: getenv("LISTEN_ADDR", ":3000"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
