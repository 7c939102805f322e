package dto

import (
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/models"
)

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	UserID       uint      `json:"user_id"`
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Contact      string    `json:"contact"`
	Type         string    `json:"type"`
	URL          string    `json:"url"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
}

// NewAppointmentList converts stored appointments for display in loc.
func NewAppointmentList(apps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, NewAppointment(ap, loc))
	}
	return out
}

func NewAppointment(ap models.Appointment, loc *time.Location) AppointmentListDTO {
	return AppointmentListDTO{
		ID:           ap.ID,
		UserID:       ap.UserID,
		CustomerID:   ap.CustomerID,
		CustomerName: ap.Customer.Name,
		Title:        ap.Title,
		Description:  ap.Description,
		Location:     ap.Location,
		Contact:      ap.Contact,
		Type:         ap.Type,
		URL:          ap.URL,
		StartTime:    ap.StartTime.In(loc),
		EndTime:      ap.EndTime.In(loc),
	}
}

// ConflictDTO is what a rejected save reports about the colliding appointment.
type ConflictDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func NewConflict(ap models.Appointment, loc *time.Location) ConflictDTO {
	return ConflictDTO{
		ID:        ap.ID,
		Title:     ap.Title,
		StartTime: ap.StartTime.In(loc),
		EndTime:   ap.EndTime.In(loc),
	}
}
