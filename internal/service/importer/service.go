package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/cimco-parts/internal/model"
	"github.com/you-humble/cimco-parts/internal/normalizer"
	"github.com/you-humble/cimco-parts/platform/logger"
)

type PartCreator interface {
	CreateBatch(ctx context.Context, parts []*model.Part) ([]int64, error)
}

type PartsImportedSender interface {
	SendPartsImported(ctx context.Context, event model.PartsImported) error
}

type service struct {
	repo           PartCreator
	sender         PartsImportedSender
	writeDBTimeout time.Duration
}

// NewImporterService returns the batch importer. sender may be nil.
func NewImporterService(repo PartCreator, sender PartsImportedSender, writeDBTimeout time.Duration) *service {
	return &service{repo: repo, sender: sender, writeDBTimeout: writeDBTimeout}
}

// Import stores every valid tuple in one batch. Invalid tuples are logged
// and counted, never fatal.
func (svc *service) Import(ctx context.Context, source string, rows []model.RawPart) (model.ImportResult, error) {
	const op = "importer.service.Import"

	res := model.ImportResult{ImportID: uuid.NewString(), Read: len(rows)}
	log := logger.With(logger.String("import_id", res.ImportID), logger.String("source", source))

	parts := make([]*model.Part, 0, len(rows))
	for i, raw := range rows {
		p, err := normalizer.FromRaw(raw)
		if err != nil {
			if !errors.Is(err, model.ErrSkippableRecord) {
				return res, fmt.Errorf("%s: %w", op, err)
			}
			res.Skipped++
			log.Warn(ctx, "import row skipped",
				logger.Int("row", i+1),
				logger.String("name", raw.Name),
				logger.ErrorF(err),
			)
			continue
		}
		parts = append(parts, p)
	}

	if len(parts) == 0 {
		log.Info(ctx, "nothing to import", logger.Int("skipped", res.Skipped))
		return res, nil
	}

	wdbCtx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	ids, err := svc.repo.CreateBatch(wdbCtx, parts)
	if err != nil {
		log.Error(ctx, "create parts", logger.ErrorF(err))
		return res, fmt.Errorf("%s: %w: %w", op, model.ErrStoreUnavailable, err)
	}
	res.Created = len(ids)

	log.Info(ctx, "parts imported",
		logger.Int("created", res.Created),
		logger.Int("skipped", res.Skipped),
	)

	if svc.sender != nil {
		event := model.PartsImported{ImportID: res.ImportID, Source: source, RecordCount: res.Created}
		if err := svc.sender.SendPartsImported(ctx, event); err != nil {
			log.Warn(ctx, "send parts imported", logger.ErrorF(err))
		}
	}

	return res, nil
}
