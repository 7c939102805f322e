package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
	"github.com/BruksfildServices01/appointment-manager/internal/middleware"
	ucappointment "github.com/BruksfildServices01/appointment-manager/internal/usecase/appointment"
)

const codeInvalidView = "invalid_view"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	save     *ucappointment.SaveAppointment
	delete   *ucappointment.DeleteAppointment
	list     *ucappointment.ListAppointmentsInRange
	upcoming *ucappointment.FindUpcoming
	hours    domain.BusinessHours
}

func NewAppointmentHandler(
	save *ucappointment.SaveAppointment,
	del *ucappointment.DeleteAppointment,
	list *ucappointment.ListAppointmentsInRange,
	upcoming *ucappointment.FindUpcoming,
	hours domain.BusinessHours,
) *AppointmentHandler {
	return &AppointmentHandler{
		save:     save,
		delete:   del,
		list:     list,
		upcoming: upcoming,
		hours:    hours,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SaveAppointmentRequest struct {
	CustomerID  uint   `json:"customer_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Type        string `json:"type"`
	URL         string `json:"url"`

	// Dates as YYYY-MM-DD, times as "9:00 AM".
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`

	Timezone string `json:"timezone"`
}

func (r SaveAppointmentRequest) input(c *gin.Context) ucappointment.SaveAppointmentInput {
	return ucappointment.SaveAppointmentInput{
		OwnerID:    c.MustGet(middleware.ContextUserID).(uint),
		Actor:      c.GetString(middleware.ContextUsername),
		CustomerID: r.CustomerID,
		Fields: domain.Fields{
			Title:       r.Title,
			Description: r.Description,
			Location:    r.Location,
			Contact:     r.Contact,
			Type:        r.Type,
			URL:         r.URL,
		},
		Schedule: domain.Schedule{
			StartDate: r.StartDate,
			StartTime: r.StartTime,
			EndDate:   r.EndDate,
			EndTime:   r.EndTime,
		},
		Timezone: requestZoneName(c, r.Timezone),
	}
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	in := req.input(c)
	loc := h.displayLocation(in.Timezone)

	ap, err := h.save.Execute(c.Request.Context(), in)
	if err != nil {
		respondErrorIn(c, err, loc)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointment(*ap, loc))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req SaveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, codeInvalidRequest)
		return
	}

	in := req.input(c)
	in.AppointmentID = id
	loc := h.displayLocation(in.Timezone)

	ap, err := h.save.Execute(c.Request.Context(), in)
	if err != nil {
		respondErrorIn(c, err, loc)
		return
	}

	c.JSON(http.StatusOK, dto.NewAppointment(*ap, loc))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)

	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// LIST (month / week)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	loc := requestLocation(c, h.hours.Location)

	view, err := domain.ParseView(c.Query("view"))
	if err != nil {
		badRequest(c, codeInvalidView)
		return
	}

	anchor, err := parseAnchor(c.Query("date"), loc)
	if err != nil {
		badRequest(c, domain.CodeInvalidDate)
		return
	}

	res, err := h.list.Execute(
		c.Request.Context(),
		ownerID,
		domain.Period{View: view, Anchor: anchor},
		loc,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// UPCOMING
// ======================================================

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	ownerID := c.MustGet(middleware.ContextUserID).(uint)
	loc := requestLocation(c, h.hours.Location)

	ap, err := h.upcoming.Execute(c.Request.Context(), ownerID, loc)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointment": ap})
}

// ======================================================
// BUSINESS HOURS
// ======================================================

func (h *AppointmentHandler) BusinessHours(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"open":          h.hours.Open.String(),
		"close":         h.hours.Close.String(),
		"open_display":  h.hours.Open.Format(),
		"close_display": h.hours.Close.Format(),
		"timezone":      h.hours.Location.String(),
	})
}

// --------- helpers ---------

func (h *AppointmentHandler) displayLocation(tz string) *time.Location {
	if tz == "" {
		if h.hours.Location != nil {
			return h.hours.Location
		}
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, codeInvalidRequest)
		return 0, false
	}
	return uint(id), true
}
