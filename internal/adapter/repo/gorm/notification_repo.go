package gormrepo

import (
	"context"
	"encoding/json"

	"emberwild/internal/adapter/repo/gorm/model"
	"emberwild/internal/app/ports"
	"emberwild/internal/domain/discovery"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationRepo struct {
	db *gorm.DB
}

func NewNotificationRepo(db *gorm.DB) NotificationRepo {
	return NotificationRepo{db: db}
}

func (r NotificationRepo) Append(ctx context.Context, records []ports.NotificationRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([]model.DiscoveryNotification, 0, len(records))
	for _, rec := range records {
		payload, _ := json.Marshal(rec.Body)
		rows = append(rows, model.DiscoveryNotification{
			ID:         rec.ID,
			Kind:       string(rec.Kind),
			TemplateID: rec.TemplateID,
			OccurredAt: rec.OccurredAt,
			Payload:    payload,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r NotificationRepo) List(ctx context.Context, limit int, kind discovery.NotificationKind, templateID string) ([]ports.NotificationRecord, error) {
	query := getDBFromCtx(ctx, r.db).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
	})
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}
	if templateID != "" {
		query = query.Where("template_id = ?", templateID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []model.DiscoveryNotification
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]ports.NotificationRecord, 0, len(rows))
	for _, m := range rows {
		var body map[string]any
		_ = json.Unmarshal(m.Payload, &body)
		out = append(out, ports.NotificationRecord{
			ID:         m.ID,
			Kind:       discovery.NotificationKind(m.Kind),
			TemplateID: m.TemplateID,
			OccurredAt: m.OccurredAt,
			Body:       body,
		})
	}
	return out, nil
}

func (r NotificationRepo) Clear(ctx context.Context) error {
	return getDBFromCtx(ctx, r.db).Where("1 = 1").Delete(&model.DiscoveryNotification{}).Error
}
