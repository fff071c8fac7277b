// Package jobs provides scheduled background tasks for the hub operations
// service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// managed through JobManager:
//
//	jobManager := jobs.NewJobManager(listDocumentsHandler, jobs.StaleDocumentConfig{
//		Schedule: "0 */15 * * * *",
//		MaxAge:   12 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		logger.WithError(err).Fatal("failed to start jobs")
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// StaleDocumentJob reports arrival sheets, manifests and delivery sheets that
// are still OPEN after MaxAge. It only reads; supervisors close documents
// through the complete operation.
package jobs
