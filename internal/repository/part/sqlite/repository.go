// Package sqlite is the offline parts store used by the plant laptop build.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/you-humble/cimco-parts/internal/model"
)

type repository struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the parts table.
// Use "file::memory:?cache=shared" for a throwaway store.
func Open(ctx context.Context, path string) (*gorm.DB, error) {
	const op = "sqlite.Open"

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)

	if err := db.WithContext(ctx).AutoMigrate(&partRow{}); err != nil {
		return nil, fmt.Errorf("%s: migrate: %w", op, err)
	}

	return db, nil
}

func NewPartRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*model.Part, error) {
	var rows []partRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}

	parts := make([]*model.Part, 0, len(rows))
	for _, row := range rows {
		parts = append(parts, rowToModel(row))
	}

	return parts, nil
}

func (r *repository) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	var row partRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return rowToModel(row), nil
}

func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) ([]int64, error) {
	if len(parts) == 0 {
		return nil, nil
	}

	rows := make([]partRow, 0, len(parts))
	for _, p := range parts {
		rows = append(rows, modelToRow(p))
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids, nil
}

func (r *repository) ApplyRiskUpdates(ctx context.Context, updates []model.RiskUpdate) (int, error) {
	var updated int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			set := map[string]any{
				"risk_score":  u.Score,
				"wear_rating": u.WearRating,
			}
			if u.Description != nil {
				set["description"] = *u.Description
			}

			res := tx.Model(&partRow{}).Where("id = ?", u.PartID).Updates(set)
			if res.Error != nil {
				return res.Error
			}
			updated += int(res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("apply risk updates: %w", err)
	}

	return updated, nil
}

func (r *repository) ApplyStockPlan(ctx context.Context, plan model.StockPlan) (model.StockPlanResult, error) {
	var res model.StockPlanResult

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res = model.StockPlanResult{}

		for _, u := range plan.MinUpdates {
			q := tx.Model(&partRow{}).Where("id = ?", u.PartID).Update("min_quantity", u.To)
			if q.Error != nil {
				return q.Error
			}
			res.MinUpdated += int(q.RowsAffected)
		}

		for _, s := range plan.Spares {
			var n int64
			err := tx.Model(&partRow{}).
				Where("upper(trim(category)) = upper(trim(?))", s.Part.Category).
				Where("stock_key = ? OR (stock_key IS NULL AND upper(trim(name)) = upper(trim(?)))", s.StockKey, s.Part.Name).
				Count(&n).Error
			if err != nil {
				return err
			}
			if n > 0 {
				continue
			}

			row := modelToRow(&s.Part)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			res.SparesCreated++
		}

		return nil
	})
	if err != nil {
		return model.StockPlanResult{}, fmt.Errorf("apply stock plan: %w", err)
	}

	return res, nil
}
