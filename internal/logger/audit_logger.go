package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogWeightChange logs a change to a single metric weight.
func (al *AuditLogger) LogWeightChange(metric string, oldWeight, newWeight float64, source string) {
	al.WithFields(logrus.Fields{
		"metric":     metric,
		"old_weight": oldWeight,
		"new_weight": newWeight,
		"source":     source,
	}).Info("Metric weight changed")
}

// LogCohortReloaded logs a cohort file that was re-read from disk.
func (al *AuditLogger) LogCohortReloaded(path string, players int) {
	al.WithFields(logrus.Fields{
		"path":    path,
		"players": players,
	}).Info("Cohort reloaded")
}
