package sdk

import (
	"go.uber.org/zap"
)

// logLevel is the level of the global logger installed by init. A Config with
// Debug set lowers it to debug.
var logLevel = zap.NewAtomicLevelAt(zap.InfoLevel)

// init configures a default global zap logger for the SDK. Applications may
// replace it with zap.ReplaceGlobals(...) if they need custom logging.
func init() {
	c := zap.Config{
		Level:            logLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}

// SetDebug switches the SDK logger between debug and info level.
func SetDebug(debug bool) {
	if debug {
		logLevel.SetLevel(zap.DebugLevel)
		return
	}
	logLevel.SetLevel(zap.InfoLevel)
}
