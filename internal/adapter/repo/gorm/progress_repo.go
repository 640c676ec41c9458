package gormrepo

import (
	"context"
	"errors"

	"emberwild/internal/adapter/repo/gorm/model"
	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepo struct {
	db *gorm.DB
}

func NewProgressRepo(db *gorm.DB) ProgressRepo {
	return ProgressRepo{db: db}
}

func (r ProgressRepo) GetByTemplateID(ctx context.Context, templateID string) (discovery.Progress, error) {
	var m model.DiscoveryProgress
	if err := getDBFromCtx(ctx, r.db).Where("template_id = ?", templateID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return discovery.Progress{}, ports.ErrNotFound
		}
		return discovery.Progress{}, err
	}
	return toDomain(m), nil
}

func (r ProgressRepo) Save(ctx context.Context, p discovery.Progress) error {
	m := model.DiscoveryProgress{
		TemplateID:          p.TemplateID,
		Phase:               string(p.Phase),
		Observation:         p.Observation,
		InspiredAgentID:     p.InspiredAgentID,
		ExperimentProgress:  p.ExperimentProgress,
		ExperimentRemaining: p.ExperimentRemaining,
		FailureCount:        p.FailureCount,
		CompletedDay:        p.CompletedDay,
		DiscoveredBy:        p.DiscoveredBy,
		Version:             p.Version,
	}
	// The update-where keeps a replayed stale snapshot from clobbering a
	// newer row, mirroring the memory repo.
	return getDBFromCtx(ctx, r.db).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "template_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"phase", "observation", "inspired_agent_id", "experiment_progress",
			"experiment_remaining", "failure_count", "completed_day",
			"discovered_by", "version", "updated_at",
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "discovery_progress.version <= excluded.version"},
		}},
	}).Create(&m).Error
}

func (r ProgressRepo) ListAll(ctx context.Context) ([]discovery.Progress, error) {
	var rows []model.DiscoveryProgress
	if err := getDBFromCtx(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]discovery.Progress, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomain(m))
	}
	return out, nil
}

func (r ProgressRepo) DeleteAll(ctx context.Context) error {
	return getDBFromCtx(ctx, r.db).Where("1 = 1").Delete(&model.DiscoveryProgress{}).Error
}

func toDomain(m model.DiscoveryProgress) discovery.Progress {
	return discovery.Progress{
		TemplateID:          m.TemplateID,
		Phase:               discovery.Phase(m.Phase),
		Observation:         m.Observation,
		InspiredAgentID:     m.InspiredAgentID,
		ExperimentProgress:  m.ExperimentProgress,
		ExperimentRemaining: m.ExperimentRemaining,
		FailureCount:        m.FailureCount,
		CompletedDay:        m.CompletedDay,
		DiscoveredBy:        m.DiscoveredBy,
		Version:             m.Version,
	}
}
