// Package log centralizes logger construction for the md-outline commands.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup builds a logrus logger writing to out at the given level. Unknown
// level strings fall back to info.
func Setup(level string, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	l.SetLevel(logrus.InfoLevel)
	if parsed, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(parsed)
	}
	return l
}
