package resourceclient

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// leveledLogger adapts a logrus logger to retryablehttp.LeveledLogger.
// Client.Do owns request tracing and transport errors are returned to the
// caller, so everything retryablehttp reports is demoted to Debug.
type leveledLogger struct {
	log logrus.FieldLogger
}

func (l *leveledLogger) entry(level string, keysAndValues []interface{}) *logrus.Entry {
	return l.log.WithFields(fields(keysAndValues)).WithField("retryablehttp_level", level)
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.entry("error", keysAndValues).Debug(msg)
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.entry("info", keysAndValues).Debug(msg)
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.entry("debug", keysAndValues).Debug(msg)
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.entry("warn", keysAndValues).Debug(msg)
}

// fields pairs up a flat key/value list. A trailing key without a value is
// kept under the "extra" key.
func fields(keysAndValues []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			f["extra"] = keysAndValues[i]
			break
		}
		f[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return f
}
