// Package adapters provides the repository implementations for the symbols feature.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finance_backend/internal/feature/symbols/domain/entity"
	"finance_backend/internal/feature/symbols/usecase"
)

// symbolMySQL is the MySQL implementation of the SymbolRepository interface.
type symbolMySQL struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolMySQL)(nil)

// NewSymbolRepository creates a symbolMySQL repository with the given DB connection.
func NewSymbolRepository(db *gorm.DB) *symbolMySQL {
	return &symbolMySQL{db: db}
}

// ListActive returns all active symbols ordered by sort_key.
func (r *symbolMySQL) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var symbols []entity.Symbol
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&symbols).Error; err != nil {
		return nil, err
	}
	return symbols, nil
}

// ListActiveCodes returns only the codes of active symbols ordered by sort_key.
func (r *symbolMySQL) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&entity.Symbol{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// Count returns the total number of symbols, active or not.
func (r *symbolMySQL) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entity.Symbol{}).Count(&n).Error
	return n, err
}

// UpsertBatch inserts symbols, updating name, sector and ordering for codes
// that already exist.
func (r *symbolMySQL) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if len(symbols) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "sector", "market", "sort_key"}),
	}).Create(&symbols).Error
}
