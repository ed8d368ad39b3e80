package configs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared logrus instance for the whole service.
var Logger = logrus.New()

// InitLogger configures the shared logger. Production mode switches to
// JSON output so log collectors can parse the fields.
func InitLogger(production bool) {
	Logger.SetOutput(os.Stdout)
	if production {
		Logger.SetFormatter(&logrus.JSONFormatter{})
		Logger.SetLevel(logrus.InfoLevel)
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:          true,
			DisableLevelTruncation: true,
			TimestampFormat:        "2006/01/02 15:04:05",
		})
		Logger.SetLevel(logrus.DebugLevel)
	}
}

// LogWithContext returns an entry tagged with the service and operation,
// so every line from one code path carries the same fields.
func LogWithContext(service, operation string) *logrus.Entry {
	return Logger.WithFields(logrus.Fields{
		"service":   service,
		"operation": operation,
	})
}
