package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/report"
	"github.com/BruksfildServices01/appointment-manager/internal/dto"
	"github.com/BruksfildServices01/appointment-manager/internal/httperr"
	"github.com/BruksfildServices01/appointment-manager/internal/logger"
	"github.com/BruksfildServices01/appointment-manager/internal/objectstore"
)

const (
	CodeInvalidReport = "invalid_report"

	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	sheetName = "Report"
)

type ExportInput struct {
	Kind     domain.Kind
	Year     int
	Month    int
	Username string
	Contact  string
	Location *time.Location
}

// ExportResult carries either the object key (uploaded) or the workbook
// bytes for the caller to stream.
type ExportResult struct {
	Key      string `json:"key,omitempty"`
	Filename string `json:"filename"`
	Body     []byte `json:"-"`
}

func (r *ExportResult) Uploaded() bool {
	return r.Key != ""
}

type ExportReport struct {
	types       *TypesByMonth
	consultants *ConsultantSchedule
	contacts    *ContactSchedule
	uploader    objectstore.Uploader
}

// NewExportReport builds the exporter. A nil uploader makes every export
// return its bytes instead.
func NewExportReport(
	types *TypesByMonth,
	consultants *ConsultantSchedule,
	contacts *ContactSchedule,
	uploader objectstore.Uploader,
) *ExportReport {
	return &ExportReport{
		types:       types,
		consultants: consultants,
		contacts:    contacts,
		uploader:    uploader,
	}
}

func (uc *ExportReport) Execute(ctx context.Context, in ExportInput) (*ExportResult, error) {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logger.Log.Warn("close workbook", zap.Error(err))
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	period := fmt.Sprintf("%04d-%02d", in.Year, in.Month)

	switch in.Kind {
	case domain.KindTypes:
		res, err := uc.types.Execute(ctx, in.Year, in.Month, loc)
		if err != nil {
			return nil, err
		}
		if err := writeTypes(f, res); err != nil {
			return nil, err
		}

	case domain.KindConsultant:
		apps, err := uc.consultants.Execute(ctx, in.Username, loc)
		if err != nil {
			return nil, err
		}
		if err := writeAppointments(f, apps); err != nil {
			return nil, err
		}

	case domain.KindContact:
		apps, err := uc.contacts.Execute(ctx, in.Contact, loc)
		if err != nil {
			return nil, err
		}
		if err := writeAppointments(f, apps); err != nil {
			return nil, err
		}

	default:
		return nil, httperr.ErrBusiness(CodeInvalidReport)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	id := uuid.NewString()
	out := &ExportResult{
		Filename: fmt.Sprintf("%s-%s.xlsx", in.Kind, period),
	}

	if uc.uploader == nil {
		out.Body = buf.Bytes()
		return out, nil
	}

	key := fmt.Sprintf("reports/%s/%s/%s.xlsx", in.Kind, period, id)
	if err := uc.uploader.Upload(ctx, key, XLSXContentType, buf.Bytes()); err != nil {
		return nil, httperr.Storage(err)
	}

	logger.Log.Info("report exported",
		zap.String("kind", string(in.Kind)),
		zap.String("key", key),
	)

	out.Key = key
	return out, nil
}

// --------- sheets ---------

func writeRow(f *excelize.File, row int, values ...any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

func writeTypes(f *excelize.File, res *domain.TypesByMonth) error {
	if err := writeRow(f, 1, "Type", "Count"); err != nil {
		return err
	}
	for i, c := range res.Counts {
		if err := writeRow(f, i+2, c.Type, c.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeAppointments(f *excelize.File, apps []dto.AppointmentListDTO) error {
	if err := writeRow(f, 1,
		"ID", "Title", "Customer", "Type", "Contact", "Location", "Start", "End",
	); err != nil {
		return err
	}
	for i, ap := range apps {
		if err := writeRow(f, i+2,
			ap.ID,
			ap.Title,
			ap.CustomerName,
			ap.Type,
			ap.Contact,
			ap.Location,
			ap.StartTime.Format(time.RFC3339),
			ap.EndTime.Format(time.RFC3339),
		); err != nil {
			return err
		}
	}
	return nil
}
