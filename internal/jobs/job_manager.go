package jobs

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// JobManager starts and stops every scheduled job of the service.
type JobManager struct {
	staleDocumentJob *StaleDocumentJob
}

func NewJobManager(lister DocumentLister, staleCfg StaleDocumentConfig, logger *logrus.Logger) *JobManager {
	return &JobManager{
		staleDocumentJob: NewStaleDocumentJob(lister, staleCfg, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDocumentJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale document job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDocumentJob.Stop()
}
