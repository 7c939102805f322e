package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/appointment-manager/internal/audit"
	"github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/httpresp"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
)

type AuditLogsHandler struct {
	logs     *audit.Logger
	fallback *time.Location
}

func NewAuditLogsHandler(logs *audit.Logger, fallback *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, fallback: fallback}
}

// List pages through the caller's own audit trail, newest first.
// from and to are whole days in the request zone, both inclusive.
func (h *AuditLogsHandler) List(c *gin.Context) {
	loc := requestLocation(c, h.fallback)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))

	q := audit.Query{
		UserID: c.MustGet(middleware.ContextUserID).(uint),
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Page:   page,
		Limit:  limit,
	}.Normalize()

	var err error
	if q.From, err = parseDay(c.Query("from"), loc); err != nil {
		badRequest(c, appointment.CodeInvalidDate)
		return
	}
	if q.To, err = parseDay(c.Query("to"), loc); err != nil {
		badRequest(c, appointment.CodeInvalidDate)
		return
	}
	if !q.To.IsZero() {
		q.To = q.To.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Page(c, logs, total, q.Page, q.Limit)
}

// parseDay reads an optional YYYY-MM-DD; empty yields the zero time.
func parseDay(s string, loc *time.Location) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(appointment.DateLayout, s, loc)
}
