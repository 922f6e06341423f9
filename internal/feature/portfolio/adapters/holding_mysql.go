// Package adapters provides the repository implementations for the portfolio feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finance_backend/internal/feature/portfolio/domain/entity"
	"finance_backend/internal/feature/portfolio/usecase"
)

// holdingMySQL is the MySQL implementation of the HoldingRepository interface.
type holdingMySQL struct {
	db *gorm.DB
}

var _ usecase.HoldingRepository = (*holdingMySQL)(nil)

// NewHoldingRepository creates a holdingMySQL repository with the given DB connection.
func NewHoldingRepository(db *gorm.DB) *holdingMySQL {
	return &holdingMySQL{db: db}
}

// HoldingModel is the persistence model for a portfolio position.
type HoldingModel struct {
	ID              uint      `gorm:"primaryKey"`
	Ticker          string    `gorm:"size:20;not null;uniqueIndex"`
	Name            string    `gorm:"size:100;not null;default:''"`
	Sector          string    `gorm:"size:100;not null;default:''"`
	InvestmentDate  time.Time `gorm:"not null"`
	InvPriceTRY     float64   `gorm:"not null"`
	InvPriceUSD     float64   `gorm:"not null"`
	ShareholdingPct float64   `gorm:"not null;default:0"`
	InvestmentUSD   float64   `gorm:"not null"`
	DividendsUSD    float64   `gorm:"not null;default:0"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (HoldingModel) TableName() string {
	return "holdings"
}

func toEntity(m HoldingModel) entity.Holding {
	return entity.Holding{
		Ticker:          m.Ticker,
		Name:            m.Name,
		Sector:          m.Sector,
		InvestmentDate:  m.InvestmentDate,
		InvPriceTRY:     m.InvPriceTRY,
		InvPriceUSD:     m.InvPriceUSD,
		ShareholdingPct: m.ShareholdingPct,
		InvestmentUSD:   m.InvestmentUSD,
		DividendsUSD:    m.DividendsUSD,
	}
}

func toModel(e entity.Holding) HoldingModel {
	return HoldingModel{
		Ticker:          e.Ticker,
		Name:            e.Name,
		Sector:          e.Sector,
		InvestmentDate:  e.InvestmentDate,
		InvPriceTRY:     e.InvPriceTRY,
		InvPriceUSD:     e.InvPriceUSD,
		ShareholdingPct: e.ShareholdingPct,
		InvestmentUSD:   e.InvestmentUSD,
		DividendsUSD:    e.DividendsUSD,
	}
}

// ListAll returns every holding ordered by ticker.
func (r *holdingMySQL) ListAll(ctx context.Context) ([]entity.Holding, error) {
	var rows []HoldingModel
	if err := r.db.WithContext(ctx).Order("ticker ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Holding, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// Count returns the number of holdings.
func (r *holdingMySQL) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&HoldingModel{}).Count(&n).Error
	return n, err
}

// UpsertBatch inserts holdings, updating positions that already exist.
func (r *holdingMySQL) UpsertBatch(ctx context.Context, holdings []entity.Holding) error {
	if len(holdings) == 0 {
		return nil
	}
	ms := make([]HoldingModel, 0, len(holdings))
	for _, e := range holdings {
		ms = append(ms, toModel(e))
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "sector", "investment_date", "inv_price_try", "inv_price_usd",
			"shareholding_pct", "investment_usd", "dividends_usd",
		}),
	}).Create(&ms).Error
}
