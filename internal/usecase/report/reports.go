package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/appointment-manager/internal/cache"
	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/report"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/objectstore"
)

const (
	CodeInvalidMonth   = "invalid_month"
	CodeRequiredFields = "required_fields"
)

// ======================================================
// TYPES BY MONTH
// ======================================================

type TypesByMonth struct {
	repo  domain.Repository
	cache *cache.ReportCache
}

func NewTypesByMonth(repo domain.Repository, cache *cache.ReportCache) *TypesByMonth {
	return &TypesByMonth{repo: repo, cache: cache}
}

// Execute counts appointments per type starting within the calendar month,
// the month boundaries taken in loc.
func (uc *TypesByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
	loc *time.Location,
) (*domain.TypesByMonth, error) {

	if month < 1 || month > 12 || year < 1 {
		return nil, httperr.ErrBusiness(CodeInvalidMonth)
	}

	key := uc.cache.Key(ctx, fmt.Sprintf("types:%04d-%02d:%s", year, month, loc.String()))

	var cached domain.TypesByMonth
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	counts, err := uc.repo.CountTypesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := &domain.TypesByMonth{
		Year:   year,
		Month:  month,
		Counts: counts,
	}
	uc.cache.Set(ctx, key, out)
	return out, nil
}

// ======================================================
// CONSULTANT
// ======================================================

type ConsultantSchedule struct {
	repo domain.Repository
}

func NewConsultantSchedule(repo domain.Repository) *ConsultantSchedule {
	return &ConsultantSchedule{repo: repo}
}

func (uc *ConsultantSchedule) Usernames(ctx context.Context) ([]string, error) {
	return uc.repo.ListUsernames(ctx)
}

func (uc *ConsultantSchedule) Execute(
	ctx context.Context,
	username string,
	loc *time.Location,
) ([]dto.AppointmentListDTO, error) {

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, httperr.ErrBusiness(CodeRequiredFields)
	}

	apps, err := uc.repo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(apps, loc), nil
}

// ======================================================
// CONTACT
// ======================================================

type ContactSchedule struct {
	repo domain.Repository
}

func NewContactSchedule(repo domain.Repository) *ContactSchedule {
	return &ContactSchedule{repo: repo}
}

func (uc *ContactSchedule) Contacts(ctx context.Context) ([]string, error) {
	return uc.repo.ListContacts(ctx)
}

func (uc *ContactSchedule) Execute(
	ctx context.Context,
	contact string,
	loc *time.Location,
) ([]dto.AppointmentListDTO, error) {

	contact = strings.TrimSpace(contact)
	if contact == "" {
		return nil, httperr.ErrBusiness(CodeRequiredFields)
	}

	apps, err := uc.repo.ListByContact(ctx, contact)
	if err != nil {
		return nil, err
	}
	return dto.NewAppointmentList(apps, loc), nil
}

// ======================================================
// SUITE
// ======================================================

// Suite groups the report use cases sharing one repository.
type Suite struct {
	Types       *TypesByMonth
	Consultants *ConsultantSchedule
	Contacts    *ContactSchedule
	Export      *ExportReport
}

func NewSuite(
	repo domain.Repository,
	cache *cache.ReportCache,
	uploader objectstore.Uploader,
) *Suite {
	s := &Suite{
		Types:       NewTypesByMonth(repo, cache),
		Consultants: NewConsultantSchedule(repo),
		Contacts:    NewContactSchedule(repo),
	}
	s.Export = NewExportReport(s.Types, s.Consultants, s.Contacts, uploader)
	return s
}
