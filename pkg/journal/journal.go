// Package journal forwards logrus entries to the systemd journal so
// scans run from a unit file keep structured logs. No-op on hosts
// without a journal; callers should check Available first.
package journal

import (
	"fmt"
	"strings"

	sdjournal "github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// Available reports whether the systemd journal socket can be reached.
func Available() bool {
	return sdjournal.Enabled()
}

type Hook struct{}

func (h Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h Hook) Fire(entry *logrus.Entry) error {
	vars := make(map[string]string, len(entry.Data))
	for k, v := range entry.Data {
		vars[fieldName(k)] = fmt.Sprint(v)
	}
	return sdjournal.Send(entry.Message, priority(entry.Level), vars)
}

func priority(level logrus.Level) sdjournal.Priority {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sdjournal.PriCrit
	case logrus.ErrorLevel:
		return sdjournal.PriErr
	case logrus.WarnLevel:
		return sdjournal.PriWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return sdjournal.PriDebug
	}
	return sdjournal.PriInfo
}

// fieldName maps a logrus field key onto the journal's restricted
// variable-name alphabet (uppercase, digits, underscore).
func fieldName(key string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		name = "F_" + name
	}
	return name
}
