package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	coreport "github.com/amirhossein-jamali/smores-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/smores-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/smores-api/internal/domain/search"
	"github.com/amirhossein-jamali/smores-api/internal/infrastructure/config"
)

// Manager owns the database handle and everything built on top of it
type Manager struct {
	config       *config.DatabaseConfig
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	monitor      *PoolMonitor
}

// NewManager creates a new database manager
func NewManager(cfg *config.DatabaseConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{
		config:       cfg,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// NewManagerWithDB wraps an already opened handle, mainly for tests
func NewManagerWithDB(db *gorm.DB, cfg *config.DatabaseConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	m := NewManager(cfg, logger, timeProvider)
	m.db = db
	return m
}

// Connect opens the connection pool, retrying transient failures
func (m *Manager) Connect(ctx context.Context) (*gorm.DB, error) {
	m.logger.Info("Connecting to database", map[string]any{
		"driver": m.config.Driver,
		"host":   m.config.Host,
		"port":   m.config.Port,
		"name":   m.config.Database,
	})

	if m.config.Driver != "postgres" {
		return nil, fmt.Errorf("unsupported database driver: %s", m.config.Driver)
	}

	retry := DefaultRetryConfig()
	if m.config.RetryAttempts > 0 {
		retry.MaxRetries = m.config.RetryAttempts
	}
	if m.config.RetryDelay > 0 {
		retry.RetryInterval = m.config.RetryDelay
		retry.MaxInterval = 4 * m.config.RetryDelay
	}

	var gormDB *gorm.DB
	err := RetryOnTransientError(ctx, retry, func() error {
		db, err := gorm.Open(postgres.Open(m.config.DSN()), &gorm.Config{
			Logger:                 NewGormLogger(m.logger, m.config.LogLevel, m.config.SlowThreshold),
			NowFunc:                func() time.Time { return m.timeProvider.Now().UTC() },
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			_ = sqlDB.Close()
			return err
		}
		gormDB = db
		return nil
	}, m.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retry.MaxRetries, err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(m.config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(m.config.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(m.config.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(m.config.ConnMaxIdleTime)

	m.logger.Info("Successfully connected to database", map[string]any{
		"host":           m.config.Host,
		"name":           m.config.Database,
		"max_open_conns": m.config.MaxOpenConns,
		"max_idle_conns": m.config.MaxIdleConns,
	})

	m.db = gormDB
	return m.db, nil
}

// DB returns the GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Ping checks that the database answers within the query timeout
func (m *Manager) Ping(ctx context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database is not connected")
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := m.WithTimeout(ctx)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

// Stats returns the connection pool statistics
func (m *Manager) Stats() sql.DBStats {
	if m.db == nil {
		return sql.DBStats{}
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return sql.DBStats{}
	}
	return sqlDB.Stats()
}

// StartPoolMonitor publishes pool statistics to observer every interval
func (m *Manager) StartPoolMonitor(observer PoolObserver, interval time.Duration) {
	if m.monitor != nil {
		return
	}
	m.monitor = NewPoolMonitor(m.Stats, observer, m.logger)
	m.monitor.Start(interval)
}

// WithTimeout returns a context bounded by the configured query timeout
func (m *Manager) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.config.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.config.QueryTimeout)
}

// CreateUnitOfWork creates a new UnitOfWork instance
func (m *Manager) CreateUnitOfWork(catalog *search.Catalog) persistence.UnitOfWork {
	return NewUnitOfWork(m.db, catalog, m.logger, m.timeProvider)
}

// Close stops the pool monitor and closes the connection
func (m *Manager) Close() error {
	m.logger.Info("Closing database connection", nil)

	if m.monitor != nil {
		m.monitor.Stop()
		m.monitor = nil
	}
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}
	return sqlDB.Close()
}
