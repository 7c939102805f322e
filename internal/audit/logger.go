package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/logger"
	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Logger persists events to audit_logs and reads them back per user.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	entry := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: encodeMetadata(ev),
	}

	return httperr.Storage(l.db.Create(&entry).Error)
}

func encodeMetadata(ev Event) string {
	if ev.Metadata == nil {
		return ""
	}
	b, err := json.Marshal(ev.Metadata)
	if err != nil {
		logger.Log.Warn("audit metadata dropped",
			zap.String("action", ev.Action),
			zap.Error(err),
		)
		return ""
	}
	return string(b)
}

// Query selects one page of a user's trail. Zero-valued filters match
// everything; From and To bound created_at as [From, To).
type Query struct {
	UserID uint
	Action string
	Entity string
	From   time.Time
	To     time.Time
	Page   int
	Limit  int
}

// Normalize clamps paging to page >= 1 and 1..MaxPageSize rows.
func (q Query) Normalize() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > MaxPageSize {
		q.Limit = DefaultPageSize
	}
	return q
}

// List returns the requested page, newest first, and the total match count.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q = q.Normalize()

	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", q.UserID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From.UTC())
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To.UTC())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, httperr.Storage(err)
	}

	var logs []models.AuditLog
	if err := tx.
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, httperr.Storage(err)
	}

	return logs, total, nil
}
