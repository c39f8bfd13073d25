// Package logger configures the process-wide logrus logger.
package logger

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// Verbose switches the level to debug.
	Verbose bool
	// DisableColor if true will disable outputting colors.
	DisableColor bool
	HideLogTime  bool
	HideLogPath  bool
	// LogDir, when set, also writes every entry to a daily rotated
	// maya2harmony.log in that directory.
	LogDir string
}

func Init(options Options) error {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	logrus.SetReportCaller(!options.HideLogPath)

	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
		HideLogPath:  options.HideLogPath,
	})

	if options.LogDir != "" {
		fh, err := NewFileHook(options.LogDir)
		if err != nil {
			return errors.Wrap(err, "failed to init log file hook")
		}
		logrus.AddHook(fh)
	}

	return nil
}
