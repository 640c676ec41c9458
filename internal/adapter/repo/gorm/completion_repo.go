package gormrepo

import (
	"context"

	"emberwild/internal/adapter/repo/gorm/model"
	"emberwild/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepo struct {
	db *gorm.DB
}

func NewCompletionRepo(db *gorm.DB) CompletionRepo {
	return CompletionRepo{db: db}
}

// MarkCompleted is append-only and idempotent; a second row for the same
// template id is silently dropped.
func (r CompletionRepo) MarkCompleted(ctx context.Context, row ports.CompletionRow) error {
	m := model.DiscoveryCompletion{
		TemplateID:   row.TemplateID,
		CompletedDay: row.CompletedDay,
		DiscoveredBy: row.DiscoveredBy,
		Reason:       row.Reason,
		CompletedAt:  row.CompletedAt,
	}
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error
}

func (r CompletionRepo) ListCompleted(ctx context.Context) ([]ports.CompletionRow, error) {
	var rows []model.DiscoveryCompletion
	if err := getDBFromCtx(ctx, r.db).Order("completed_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.CompletionRow, 0, len(rows))
	for _, m := range rows {
		out = append(out, ports.CompletionRow{
			TemplateID:   m.TemplateID,
			CompletedDay: m.CompletedDay,
			DiscoveredBy: m.DiscoveredBy,
			Reason:       m.Reason,
			CompletedAt:  m.CompletedAt,
		})
	}
	return out, nil
}

func (r CompletionRepo) Clear(ctx context.Context) error {
	return getDBFromCtx(ctx, r.db).Where("1 = 1").Delete(&model.DiscoveryCompletion{}).Error
}
