package appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
)

const (
	CodeRequiredFields        = "required_fields"
	CodeStartDateAfterEndDate = "start_date_after_end_date"
	CodeInvalidTimeFormat     = "invalid_time_format"
	CodeInvalidDate           = "invalid_date"
	CodeCustomerNotFound      = "customer_not_found"
	CodeAppointmentNotFound   = "appointment_not_found"
)

const (
	DateLayout     = "2006-01-02"
	TimeTextLayout = "3:04 PM"
	DisplayLayout  = "01/2/2006 3:04 PM"
)

var timeTextPattern = regexp.MustCompile(`^\d{1,2}:\d{1,2} (AM|PM)$`)

// Fields carries the free-text columns every appointment must fill.
type Fields struct {
	Title       string
	Description string
	Location    string
	Contact     string
	Type        string
	URL         string
}

func (f Fields) Trimmed() Fields {
	return Fields{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Location:    strings.TrimSpace(f.Location),
		Contact:     strings.TrimSpace(f.Contact),
		Type:        strings.TrimSpace(f.Type),
		URL:         strings.TrimSpace(f.URL),
	}
}

func (f Fields) Complete() bool {
	for _, v := range []string{f.Title, f.Description, f.Location, f.Contact, f.Type, f.URL} {
		if v == "" {
			return false
		}
	}
	return true
}

// Schedule is the date/time text a user enters for an appointment.
type Schedule struct {
	StartDate string
	StartTime string
	EndDate   string
	EndTime   string
}

func (s Schedule) Complete() bool {
	return strings.TrimSpace(s.StartDate) != "" &&
		strings.TrimSpace(s.StartTime) != "" &&
		strings.TrimSpace(s.EndDate) != "" &&
		strings.TrimSpace(s.EndTime) != ""
}

// Resolve turns the entered text into an interval in loc. Checks follow the
// order users see them: dates first, then the time text format.
func (s Schedule) Resolve(loc *time.Location) (Interval, error) {
	startDate, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s.StartDate), loc)
	if err != nil {
		return Interval{}, httperr.ErrBusiness(CodeInvalidDate)
	}
	endDate, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s.EndDate), loc)
	if err != nil {
		return Interval{}, httperr.ErrBusiness(CodeInvalidDate)
	}
	if startDate.After(endDate) {
		return Interval{}, httperr.ErrBusiness(CodeStartDateAfterEndDate)
	}

	start, err := parseTimeText(startDate, s.StartTime, loc)
	if err != nil {
		return Interval{}, err
	}
	end, err := parseTimeText(endDate, s.EndTime, loc)
	if err != nil {
		return Interval{}, err
	}

	return Interval{Start: start, End: end}, nil
}

func parseTimeText(day time.Time, text string, loc *time.Location) (time.Time, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if !timeTextPattern.MatchString(text) {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidTimeFormat)
	}

	t, err := time.ParseInLocation(
		DateLayout+" "+TimeTextLayout,
		day.Format(DateLayout)+" "+text,
		loc,
	)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(CodeInvalidTimeFormat)
	}
	return t, nil
}
