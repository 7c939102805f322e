package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/report"
	"github.com/BruksfildServices01/appointment-manager/internal/httpresp"
	ucreport "github.com/BruksfildServices01/appointment-manager/internal/usecase/report"
)

type ReportHandler struct {
	types       *ucreport.TypesByMonth
	consultants *ucreport.ConsultantSchedule
	contacts    *ucreport.ContactSchedule
	export      *ucreport.ExportReport
	fallback    *time.Location
}

func NewReportHandler(
	types *ucreport.TypesByMonth,
	consultants *ucreport.ConsultantSchedule,
	contacts *ucreport.ContactSchedule,
	export *ucreport.ExportReport,
	fallback *time.Location,
) *ReportHandler {
	return &ReportHandler{
		types:       types,
		consultants: consultants,
		contacts:    contacts,
		export:      export,
		fallback:    fallback,
	}
}

// ======================================================
// TYPES BY MONTH
// ======================================================

func (h *ReportHandler) Types(c *gin.Context) {
	loc := requestLocation(c, h.fallback)

	year, month, ok := yearMonth(c, loc)
	if !ok {
		return
	}

	res, err := h.types.Execute(c.Request.Context(), year, month, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// CONSULTANT
// ======================================================

func (h *ReportHandler) Consultants(c *gin.Context) {
	names, err := h.consultants.Usernames(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, names)
}

func (h *ReportHandler) ConsultantSchedule(c *gin.Context) {
	apps, err := h.consultants.Execute(
		c.Request.Context(),
		c.Param("username"),
		requestLocation(c, h.fallback),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, apps)
}

// ======================================================
// CONTACT
// ======================================================

func (h *ReportHandler) Contacts(c *gin.Context) {
	contacts, err := h.contacts.Contacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, contacts)
}

func (h *ReportHandler) ContactSchedule(c *gin.Context) {
	apps, err := h.contacts.Execute(
		c.Request.Context(),
		c.Param("contact"),
		requestLocation(c, h.fallback),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	httpresp.List(c, apps)
}

// ======================================================
// EXPORT
// ======================================================

func (h *ReportHandler) Export(c *gin.Context) {
	kind, ok := domain.ParseKind(c.Param("kind"))
	if !ok {
		badRequest(c, ucreport.CodeInvalidReport)
		return
	}

	loc := requestLocation(c, h.fallback)

	year, month, ok := yearMonth(c, loc)
	if !ok {
		return
	}

	res, err := h.export.Execute(c.Request.Context(), ucreport.ExportInput{
		Kind:     kind,
		Year:     year,
		Month:    month,
		Username: c.Query("username"),
		Contact:  c.Query("contact"),
		Location: loc,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if res.Uploaded() {
		c.JSON(http.StatusCreated, res)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Filename))
	c.Data(http.StatusOK, ucreport.XLSXContentType, res.Body)
}

// yearMonth reads ?year=&month=, defaulting to the current month in loc.
func yearMonth(c *gin.Context, loc *time.Location) (int, int, bool) {
	now := time.Now().In(loc)
	year, month := now.Year(), int(now.Month())

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, ucreport.CodeInvalidMonth)
			return 0, 0, false
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			badRequest(c, ucreport.CodeInvalidMonth)
			return 0, 0, false
		}
		month = m
	}
	return year, month, true
}
