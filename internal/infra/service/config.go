package service

import (
	"time"

	"github.com/swaggest/todomvc/internal/infra/log"
)

// Data sources.
const (
	DataSourceLocal  = "local"
	DataSourceRemote = "remote"
)

// Storage backends.
const (
	StorageNone     = "none"
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

// Config defines application settings.
type Config struct {
	log.Config

	HTTPPort           int           `envconfig:"HTTP_PORT" default:"8010"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	// DataSource is local for in-process store or remote for another instance at RemoteURL.
	DataSource string `envconfig:"DATA_SOURCE" default:"local"`
	RemoteURL  string `envconfig:"REMOTE_URL"`

	Storage         string        `envconfig:"STORAGE" default:"none"`
	StorageKey      string        `envconfig:"STORAGE_KEY" default:"todomvc-cache"`
	StoragePurge    bool          `envconfig:"STORAGE_PURGE"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"todomvc.sqlite3"`
	PostgresURL     string        `envconfig:"POSTGRES_URL"`
	PersistDebounce time.Duration `envconfig:"PERSIST_DEBOUNCE" default:"1s"`
}
