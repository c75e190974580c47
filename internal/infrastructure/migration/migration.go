package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"marketplace/internal/shared/constants"
	"marketplace/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks goose for MySQL test/production and AutoMigrate otherwise.
func NewManager(environment string, db *gorm.DB, log logger.Interface) *Manager {
	log = log.Named("migration")

	var strategy Strategy
	switch {
	case db.Dialector.Name() != "mysql":
		strategy = NewGormAutoMigrateStrategy(log)
	case strings.EqualFold(environment, constants.EnvDevelopment):
		strategy = NewGormAutoMigrateStrategy(log)
	default:
		strategy = NewGooseStrategy(log)
	}

	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log,
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
