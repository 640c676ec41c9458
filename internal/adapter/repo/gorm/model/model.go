package model

import "time"

type DiscoveryProgress struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement"`
	TemplateID          string    `gorm:"column:template_id;uniqueIndex"`
	Phase               string    `gorm:"column:phase"`
	Observation         float64   `gorm:"column:observation"`
	InspiredAgentID     string    `gorm:"column:inspired_agent_id"`
	ExperimentProgress  float64   `gorm:"column:experiment_progress"`
	ExperimentRemaining float64   `gorm:"column:experiment_remaining"`
	FailureCount        int       `gorm:"column:failure_count"`
	CompletedDay        int       `gorm:"column:completed_day"`
	DiscoveredBy        string    `gorm:"column:discovered_by"`
	Version             int64     `gorm:"column:version"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (DiscoveryProgress) TableName() string { return "discovery_progress" }

type DiscoveryCompletion struct {
	TemplateID   string    `gorm:"column:template_id;primaryKey"`
	CompletedDay int       `gorm:"column:completed_day"`
	DiscoveredBy string    `gorm:"column:discovered_by"`
	Reason       string    `gorm:"column:reason"`
	CompletedAt  time.Time `gorm:"column:completed_at"`
}

func (DiscoveryCompletion) TableName() string { return "discovery_completions" }

type DiscoveryNotification struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Kind       string    `gorm:"column:kind;index"`
	TemplateID string    `gorm:"column:template_id;index"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload"`
}

func (DiscoveryNotification) TableName() string { return "discovery_notifications" }
