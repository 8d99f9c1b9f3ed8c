package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// logLevelFlag is a pflag.Value over logrus levels.  Set applies the level
// immediately, so that it is in effect by the time a RunE starts logging.
type logLevelFlag struct {
	logrus.Level
	logger *logrus.Logger
}

var _ pflag.Value = (*logLevelFlag)(nil)

func (f *logLevelFlag) String() string { return f.Level.String() }

func (f *logLevelFlag) Set(str string) error {
	level, err := logrus.ParseLevel(str)
	if err != nil {
		return err
	}
	f.Level = level
	if f.logger != nil {
		f.logger.SetLevel(level)
	}
	return nil
}

func (f *logLevelFlag) Type() string { return "LEVEL" }
