package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// GetDSN builds the SQLite connection string. The store is a single file;
// WAL and a busy timeout let concurrent requests share the one writer.
func GetDSN() string {
	DATABASE_PATH := os.Getenv("DATABASE_PATH")
	if DATABASE_PATH == "" {
		DATABASE_PATH = "escape.db"
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_fk=1", DATABASE_PATH)
	return dsn
}

func GetAdminSecret() string {
	return os.Getenv("ADMIN_SECRET")
}

// StorageTimeout bounds every storage operation issued by a request.
func StorageTimeout() time.Duration {
	raw := os.Getenv("STORAGE_TIMEOUT_SECONDS")
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 1 {
		return 5 * time.Second
	}
	return time.Duration(secs) * time.Second
}

const DATE_PARSE_FORMAT = "2006-01-02"
const TIME_OF_DAY_PARSE_FORMAT = "15:04"
