// Package log configures the process logger. The engine logs compile and
// registry traces at debug level; the CLI keeps the logger silent unless
// --debug or LEXIS_DEBUG is set, so JSON output stays clean.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Subsys is the field naming the emitting subsystem.
const Subsys = "subsys"

var root = logrus.New()

func init() {
	root.SetOutput(os.Stderr)
	root.SetLevel(logrus.WarnLevel)
	if os.Getenv("LEXIS_DEBUG") != "" {
		root.SetLevel(logrus.DebugLevel)
	}
}

// SetDebug toggles debug-level logging.
func SetDebug(on bool) {
	if on {
		root.SetLevel(logrus.DebugLevel)
	} else {
		root.SetLevel(logrus.WarnLevel)
	}
}

// NewLogger returns an entry tagged with the subsystem name.
func NewLogger(subsys string) *logrus.Entry {
	return root.WithField(Subsys, subsys)
}
