package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/you-humble/cimco-parts/internal/model"
)

const partsTable = "parts"

type repository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

func NewPartRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) List(ctx context.Context) ([]*model.Part, error) {
	sqlStr, args, err := r.sb.
		Select(partColumns...).
		From(partsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []*model.Part
	for rows.Next() {
		var rec partRecord
		if err := rows.Scan(rec.scanTargets()...); err != nil {
			return nil, err
		}

		p, err := recordToModel(rec)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}

	return parts, rows.Err()
}

func (r *repository) PartByID(ctx context.Context, id int64) (*model.Part, error) {
	sqlStr, args, err := r.sb.
		Select(partColumns...).
		From(partsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rec partRecord
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(rec.scanTargets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPartNotFound
		}
		return nil, err
	}

	return recordToModel(rec)
}

// CreateBatch inserts parts in one transaction and returns their ids in input order.
func (r *repository) CreateBatch(ctx context.Context, parts []*model.Part) ([]int64, error) {
	ids := make([]int64, 0, len(parts))

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		for _, p := range parts {
			id, err := r.insert(ctx, tx, p)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ids, nil
}

// ApplyRiskUpdates writes all risk scores in one transaction.
func (r *repository) ApplyRiskUpdates(ctx context.Context, updates []model.RiskUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		set := sq.Eq{
			"risk_score":  u.Score,
			"wear_rating": u.WearRating,
			"updated_at":  sq.Expr("now()"),
		}
		if u.Description != nil {
			set["description"] = *u.Description
		}

		sqlStr, args, err := r.sb.
			Update(partsTable).
			SetMap(set).
			Where(sq.Eq{"id": u.PartID}).
			ToSql()
		if err != nil {
			return 0, err
		}
		batch.Queue(sqlStr, args...)
	}

	var updated int
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		defer br.Close()

		for range updates {
			tag, err := br.Exec()
			if err != nil {
				return err
			}
			updated += int(tag.RowsAffected())
		}
		return br.Close()
	})
	if err != nil {
		return 0, fmt.Errorf("apply risk updates: %w", err)
	}

	return updated, nil
}

// ApplyStockPlan applies min-quantity updates and inserts missing spares in
// one transaction. Each spare is re-checked inside the transaction so a row
// created since the plan was computed is never duplicated.
func (r *repository) ApplyStockPlan(ctx context.Context, plan model.StockPlan) (model.StockPlanResult, error) {
	var res model.StockPlanResult

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		res = model.StockPlanResult{}

		for _, u := range plan.MinUpdates {
			sqlStr, args, err := r.sb.
				Update(partsTable).
				Set("min_quantity", u.To).
				Set("updated_at", sq.Expr("now()")).
				Where(sq.Eq{"id": u.PartID}).
				ToSql()
			if err != nil {
				return err
			}

			tag, err := tx.Exec(ctx, sqlStr, args...)
			if err != nil {
				return err
			}
			res.MinUpdated += int(tag.RowsAffected())
		}

		for _, s := range plan.Spares {
			exists, err := r.spareExists(ctx, tx, s)
			if err != nil {
				return err
			}
			if exists {
				continue
			}

			part := s.Part
			if _, err := r.insert(ctx, tx, &part); err != nil {
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

func (r *repository) spareExists(ctx context.Context, tx pgx.Tx, s model.SpareSlot) (bool, error) {
	sqlStr, args, err := r.sb.
		Select("1").
		From(partsTable).
		Where(sq.Expr("upper(btrim(category)) = upper(btrim(?))", s.Part.Category)).
		Where(sq.Or{
			sq.Eq{"stock_key": s.StockKey},
			sq.And{
				sq.Eq{"stock_key": nil},
				sq.Expr("upper(btrim(name)) = upper(btrim(?))", s.Part.Name),
			},
		}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) insert(ctx context.Context, tx pgx.Tx, p *model.Part) (int64, error) {
	sqlStr, args, err := r.sb.
		Insert(partsTable).
		Columns(insertColumns...).
		Values(insertValues(p)...).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}
