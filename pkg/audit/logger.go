package audit

import (
	"context"
	"log"

	"gorm.io/gorm"

	"agrilink/entities"
)

// ClientInfo carries request metadata into log calls. Controllers fill
// it from the request; nothing in this package reads headers itself.
type ClientInfo struct {
	IP        string
	UserAgent string
}

type Actor struct {
	UserID string
	Name   string
	Role   string
}

type Entry struct {
	Actor        Actor
	Action       string
	ResourceType string
	ResourceID   string
	ResourceName string
	Changes      map[string]entities.FieldChange
	Metadata     map[string]any
	Client       ClientInfo
	Status       string // defaults to success
	ErrorMessage string
}

// Logger appends who-did-what records. Writes are best-effort: a failed
// audit insert is logged and dropped, it never fails the caller.
type Logger struct {
	db *gorm.DB
}

func NewLogger(db *gorm.DB) *Logger { return &Logger{db: db} }

func (l *Logger) Log(ctx context.Context, e Entry) {
	if l == nil || l.db == nil {
		return
	}
	status := e.Status
	if status == "" {
		status = entities.AuditSuccess
	}
	rec := entities.AuditLog{
		UserID:       e.Actor.UserID,
		UserName:     e.Actor.Name,
		UserRole:     e.Actor.Role,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		ResourceName: e.ResourceName,
		Changes:      e.Changes,
		Metadata:     e.Metadata,
		IPAddress:    e.Client.IP,
		UserAgent:    e.Client.UserAgent,
		Status:       status,
		ErrorMessage: e.ErrorMessage,
	}
	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		log.Printf("[audit] write failed: %v", err)
	}
}

type actorKey struct{}

// WithActor stashes the acting user in a context so the gorm plugin can
// attribute auto-logged model changes.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func actorFrom(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok {
		return a
	}
	return Actor{}
}
