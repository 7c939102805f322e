package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/appointment-manager/internal/domain/report"
	"github.com/BruksfildServices01/appointment-manager/internal/logger"
	"github.com/BruksfildServices01/appointment-manager/internal/usecase/report"
)

const exportTimeout = 2 * time.Minute

type Exporter interface {
	Execute(ctx context.Context, in report.ExportInput) (*report.ExportResult, error)
}

type Scheduler struct {
	cron     *cron.Cron
	exporter Exporter
	loc      *time.Location
	now      func() time.Time
}

// NewScheduler runs jobs in loc so "the 1st of the month" follows the
// business calendar.
func NewScheduler(exporter Exporter, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(loc)),
		exporter: exporter,
		loc:      loc,
		now:      time.Now,
	}
}

// RegisterMonthlyExport schedules the previous month's types report.
func (s *Scheduler) RegisterMonthlyExport(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.exportPreviousMonth)
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Log.Info("job scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		logger.Log.Warn("job scheduler stop timed out")
	}
}

func (s *Scheduler) exportPreviousMonth() {
	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	year, month := PreviousMonth(s.now().In(s.loc))

	res, err := s.exporter.Execute(ctx, report.ExportInput{
		Kind:     domain.KindTypes,
		Year:     year,
		Month:    int(month),
		Location: s.loc,
	})
	if err != nil {
		logger.Log.Error("monthly export failed",
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Error(err),
		)
		return
	}

	logger.Log.Info("monthly export done",
		zap.String("key", res.Key),
		zap.String("filename", res.Filename),
	)
}

func PreviousMonth(t time.Time) (int, time.Month) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	prev := first.AddDate(0, -1, 0)
	return prev.Year(), prev.Month()
}
