// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"gymtrack/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

// Execute commits when fn returns nil. gorm rolls back on error or panic.
func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		// domain errors pass through untouched
		return fnErr
	default:
		return errors.Wrap(err, "failed to run transaction")
	}
}

// txRepositories hands out repositories sharing one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(r.tx)
}

func (r txRepositories) NewMealRepository() repository.MealRepository {
	return NewMealRepository(r.tx)
}

func (r txRepositories) NewPreferenceRepository() repository.PreferenceRepository {
	return NewPreferenceRepository(r.tx)
}
