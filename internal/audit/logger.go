package audit

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/devsquadbr/crm-template/internal/models"
)

type Event struct {
	ActorID  string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Sink persists one audit event.
type Sink interface {
	Record(ev Event) error
}

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Record(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ActorID:  ev.ActorID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}
