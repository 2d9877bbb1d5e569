package audit

import (
	"fmt"

	"gorm.io/gorm"

	"agrilink/entities"
)

// Trackable is implemented by entities that opt in to automatic change
// logging on create/update/delete.
type Trackable interface {
	TrackedResource() string
}

// Plugin hooks gorm's lifecycle callbacks and writes an audit row for
// every write to a Trackable model. Same best-effort contract as Logger.
type Plugin struct {
	logger *Logger
}

func NewPlugin(l *Logger) *Plugin { return &Plugin{logger: l} }

func (p *Plugin) Name() string { return "audit" }

func (p *Plugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Create().After("gorm:create").Register("audit:create", p.after(entities.ActionCreate)); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").Register("audit:update", p.after(entities.ActionUpdate)); err != nil {
		return err
	}
	return db.Callback().Delete().After("gorm:delete").Register("audit:delete", p.after(entities.ActionDelete))
}

func (p *Plugin) after(action string) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Error != nil || tx.Statement == nil {
			return
		}
		t, ok := tx.Statement.Model.(Trackable)
		if !ok {
			return
		}
		id := ""
		if field := tx.Statement.Schema.PrioritizedPrimaryField; field != nil {
			if v, zero := field.ValueOf(tx.Statement.Context, tx.Statement.ReflectValue); !zero {
				id = fmt.Sprintf("%v", v)
			}
		}
		p.logger.Log(tx.Statement.Context, Entry{
			Actor:        actorFrom(tx.Statement.Context),
			Action:       action,
			ResourceType: t.TrackedResource(),
			ResourceID:   id,
			Metadata:     map[string]any{"table": tx.Statement.Table, "rows": tx.RowsAffected},
		})
	}
}
