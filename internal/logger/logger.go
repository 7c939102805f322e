package logger

import (
	"go.uber.org/zap"
)

var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// Init replaces the global loggers. Production emits JSON, anything else
// the colored console encoder.
func Init(production bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}

	Log = l
	SLog = l.Sugar()
	zap.ReplaceGlobals(l)
	return nil
}

func Sync() {
	_ = Log.Sync()
}
