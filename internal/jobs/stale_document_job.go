package jobs

import (
	"context"
	"time"

	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/model/hubdoc"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	DefaultStaleSchedule = "0 */15 * * * *"
	DefaultStaleAge      = 12 * time.Hour
)

// DocumentLister is satisfied by queries.ListDocumentsQueryHandler.
type DocumentLister interface {
	Handle(ctx context.Context, query queries.ListDocumentsQuery) ([]queries.ListDocumentsQueryResponse, error)
}

type StaleDocumentConfig struct {
	Schedule string
	MaxAge   time.Duration
}

// StaleDocumentJob logs OPEN documents older than MaxAge, one entry per
// document with its unresolved member count.
type StaleDocumentJob struct {
	lister DocumentLister
	cfg    StaleDocumentConfig
	cron   *cron.Cron
	clock  func() time.Time
	logger *logrus.Entry
}

func NewStaleDocumentJob(lister DocumentLister, cfg StaleDocumentConfig, logger *logrus.Logger) *StaleDocumentJob {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultStaleSchedule
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = DefaultStaleAge
	}
	return &StaleDocumentJob{
		lister: lister,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
		clock:  time.Now,
		logger: logger.WithField("component", "stale_document_job"),
	}
}

// Start schedules the sweep.
func (j *StaleDocumentJob) Start() error {
	_, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		if _, err := j.Sweep(context.Background()); err != nil {
			j.logger.WithError(err).Error("stale document sweep failed")
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.cfg.Schedule).Info("stale document job started")
	return nil
}

// Stop waits for a running sweep to finish.
func (j *StaleDocumentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("stale document job stopped")
}

// Sweep runs one pass over every document kind and returns how many stale
// documents it reported. A failing kind does not stop the others.
func (j *StaleDocumentJob) Sweep(ctx context.Context) (int, error) {
	cutoff := j.clock().UTC().Add(-j.cfg.MaxAge)
	since := time.Unix(0, 0).UTC()

	var (
		stale   int
		lastErr error
	)
	for _, kind := range []hubdoc.Kind{hubdoc.Arrival, hubdoc.Manifest, hubdoc.Delivery} {
		query, err := queries.NewListDocumentsQuery(kind, since, cutoff, hubdoc.Open)
		if err != nil {
			return stale, err
		}
		documents, err := j.lister.Handle(ctx, query)
		if err != nil {
			j.logger.WithError(err).WithField("kind", kind.String()).Warn("listing open documents failed")
			lastErr = err
			continue
		}
		for _, d := range documents {
			j.logger.WithFields(logrus.Fields{
				"kind":       kind.String(),
				"code":       d.Code,
				"created_at": d.CreatedAt,
				"members":    d.Members,
				"unresolved": d.Unresolved,
			}).Warn("document still open")
		}
		stale += len(documents)
	}
	return stale, lastErr
}
